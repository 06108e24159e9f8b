package userstore

import (
	"context"
	"regexp"
	"time"

	"github.com/babyfiction/storehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// listProjection strips credential and token fields at the query level.
// The User model additionally refuses to serialize them; both layers have to
// agree for the "never leave the database layer" guarantee to hold.
var listProjection = bson.M{
	"password":                 0,
	"email_verification_token": 0,
	"password_reset_token":     0,
	"password_reset_expires":   0,
}

// Store reads and (narrowly) writes the users collection.
type Store struct {
	c *mongo.Collection
}

// New creates a user Store over db's users collection.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CountAll returns the total number of user documents.
func (s *Store) CountAll(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountCreatedSince counts users created on or after t.
func (s *Store) CountCreatedSince(ctx context.Context, t time.Time) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": t}})
}

// CountActiveSince counts users whose last login is on or after t. Users who
// have never logged in carry no last_login field and are never counted.
func (s *Store) CountActiveSince(ctx context.Context, t time.Time) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"last_login": bson.M{"$gte": t}})
}

// CountByRole groups all users by role. The result is sparse: roles with no
// members are absent, and unrecognized roles appear as-is.
func (s *Store) CountByRole(ctx context.Context) (map[string]int64, error) {
	cur, err := s.c.Aggregate(ctx, []bson.M{
		{"$group": bson.M{"_id": "$role", "count": bson.M{"$sum": 1}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			Role  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Role] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// ListFilter is the validated filter for the admin user list.
type ListFilter struct {
	Search   string
	Role     string
	IsActive *bool
}

// BuildFilter turns a ListFilter into a Mongo filter document. Search is a
// case-insensitive substring match ORed across name, email and phone; the
// search text is taken literally, not as a user-supplied pattern.
func BuildFilter(f ListFilter) bson.M {
	filter := bson.M{}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"first_name": re},
			{"last_name": re},
			{"email": re},
			{"phone": re},
		}
	}
	if f.Role != "" {
		filter["role"] = f.Role
	}
	if f.IsActive != nil {
		filter["is_active"] = *f.IsActive
	}
	return filter
}

// ListPage returns one page of users matching f, newest accounts first,
// together with the total match count. The count and the page slice are
// fetched concurrently; they are separate point-in-time reads, so under
// concurrent writes they can drift slightly, which is acceptable for an
// admin screen.
func (s *Store) ListPage(ctx context.Context, f ListFilter, page, limit int) ([]models.User, int64, error) {
	filter := BuildFilter(f)

	var (
		users = make([]models.User, 0, limit)
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.c.CountDocuments(gctx, filter)
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	g.Go(func() error {
		opts := options.Find().
			SetProjection(listProjection).
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetSkip(int64(page-1) * int64(limit)).
			SetLimit(int64(limit))
		cur, err := s.c.Find(gctx, filter, opts)
		if err != nil {
			return err
		}
		defer cur.Close(gctx)
		return cur.All(gctx, &users)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// SetActive updates a single user's is_active flag and returns the updated
// document (sans sensitive fields). Returns mongo.ErrNoDocuments when id does
// not resolve to a user.
func (s *Store) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.User, error) {
	update := bson.M{"$set": bson.M{
		"is_active":  active,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(listProjection)

	var u models.User
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
