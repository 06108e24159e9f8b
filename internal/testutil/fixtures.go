package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/babyfiction/storehub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures inserts test data directly into a test database.
type Fixtures struct {
	t  *testing.T
	db *mongo.Database
}

func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	return &Fixtures{t: t, db: db}
}

// UserOpt mutates a fixture user before insertion.
type UserOpt func(*models.User)

func WithRole(role string) UserOpt {
	return func(u *models.User) { u.Role = role }
}

func Inactive() UserOpt {
	return func(u *models.User) { u.IsActive = false }
}

func CreatedAt(t time.Time) UserOpt {
	return func(u *models.User) { u.CreatedAt = t; u.UpdatedAt = t }
}

func LastLogin(t time.Time) UserOpt {
	return func(u *models.User) { u.LastLogin = &t }
}

func WithPhone(phone string) UserOpt {
	return func(u *models.User) { u.Phone = phone }
}

// CreateUser inserts an active customer with the given name and email,
// created now, with sensitive token fields populated so projection tests
// have something to leak.
func (f *Fixtures) CreateUser(ctx context.Context, firstName, lastName, email string, opts ...UserOpt) models.User {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	u := models.User{
		ID:                     primitive.NewObjectID(),
		FirstName:              firstName,
		LastName:               lastName,
		Email:                  email,
		Role:                   models.RoleCustomer,
		IsActive:               true,
		Password:               "$2a$10$fixturehashfixturehashfixturehash",
		EmailVerificationToken: uuid.NewString(),
		PasswordResetToken:     uuid.NewString(),
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	for _, opt := range opts {
		opt(&u)
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("insert fixture user %s: %v", email, err)
	}
	return u
}

// CreateAdmin inserts an active admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, firstName, lastName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, firstName, lastName, email, WithRole(models.RoleAdmin))
}

// CreateEvent inserts an analytics event for the given user at the given time.
func (f *Fixtures) CreateEvent(ctx context.Context, eventType string, userID *primitive.ObjectID, at time.Time) models.AnalyticsEvent {
	f.t.Helper()

	ev := models.AnalyticsEvent{
		ID:        primitive.NewObjectID(),
		Type:      eventType,
		UserID:    userID,
		CreatedAt: at.UTC().Truncate(time.Millisecond),
	}
	if _, err := f.db.Collection("analytics_events").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("insert fixture event %s: %v", eventType, err)
	}
	return ev
}

// UniqueEmail returns an email unlikely to collide within a test run.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString()[:8])
}
