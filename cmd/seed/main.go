// Command seed populates a development database with users and analytics
// events so the admin dashboard has something to show.
//
// Usage:
//
//	go run ./cmd/seed -uri mongodb://localhost:27017 -db storehub -users 40
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/babyfiction/storehub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

var firstNames = []string{"Amina", "Ben", "Chloe", "Daniel", "Esi", "Farah", "Grace", "Hassan", "Ines", "Jonas", "Kofi", "Lena", "Marco", "Nadia", "Omar", "Priya"}

var lastNames = []string{"Adams", "Badu", "Chen", "Diallo", "Evans", "Fischer", "Garcia", "Haddad", "Iversen", "Jones", "Khan", "Lopez", "Mensah", "Novak", "Okafor", "Patel"}

func main() {
	var (
		uri    = flag.String("uri", "mongodb://localhost:27017", "MongoDB connection URI")
		dbName = flag.String("db", "storehub", "database name")
		users  = flag.Int("users", 40, "number of non-admin users to create")
		drop   = flag.Bool("drop", false, "drop the users and analytics_events collections first")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*uri))
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(*dbName)
	if *drop {
		for _, name := range []string{"users", "analytics_events"} {
			if err := db.Collection(name).Drop(ctx); err != nil {
				log.Fatalf("drop %s: %v", name, err)
			}
		}
		log.Println("dropped users and analytics_events")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	seeded, err := seedUsers(ctx, db, rng, *users)
	if err != nil {
		log.Fatalf("seed users: %v", err)
	}
	log.Printf("inserted %d users (admin login: admin@babyfiction.test / admin123)", len(seeded))

	n, err := seedEvents(ctx, db, rng, seeded)
	if err != nil {
		log.Fatalf("seed events: %v", err)
	}
	log.Printf("inserted %d analytics events", n)
}

func seedUsers(ctx context.Context, db *mongo.Database, rng *rand.Rand, count int) ([]models.User, error) {
	now := time.Now().UTC()

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := []models.User{{
		ID:        primitive.NewObjectID(),
		FirstName: "Ada",
		LastName:  "Admin",
		Email:     "admin@babyfiction.test",
		Role:      models.RoleAdmin,
		IsActive:  true,
		LastLogin: timePtr(now.Add(-2 * time.Hour)),
		Password:  string(adminHash),
		CreatedAt: now.AddDate(0, -6, 0),
		UpdatedAt: now,
	}}

	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		role := models.RoleCustomer
		if rng.Intn(5) == 0 {
			role = models.RoleDriver
		}

		// Spread creation over the last 60 days so the 7-day new-user count
		// has a meaningful subset, and logins over the last 45 days so some
		// users fall outside the 30-day active window.
		created := now.AddDate(0, 0, -rng.Intn(60))
		var lastLogin *time.Time
		if rng.Intn(10) > 0 {
			lastLogin = timePtr(now.AddDate(0, 0, -rng.Intn(45)))
		}

		u := models.User{
			ID:        primitive.NewObjectID(),
			FirstName: first,
			LastName:  last,
			Email:     fmt.Sprintf("%s.%s.%d@babyfiction.test", strings.ToLower(first), strings.ToLower(last), i),
			Phone:     fmt.Sprintf("+1555%07d", rng.Intn(10000000)),
			Role:      role,
			IsActive:  rng.Intn(10) > 0,
			LastLogin: lastLogin,
			Password:  string(userHash),
			CreatedAt: created,
			UpdatedAt: created,
		}
		if rng.Intn(4) == 0 {
			u.EmailVerificationToken = uuid.NewString()
		}
		users = append(users, u)
	}

	docs := make([]any, len(users))
	for i, u := range users {
		docs[i] = u
	}
	if _, err := db.Collection("users").InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return users, nil
}

func seedEvents(ctx context.Context, db *mongo.Database, rng *rand.Rand, users []models.User) (int, error) {
	now := time.Now().UTC()
	types := []string{
		models.EventLogin, models.EventLogin, models.EventLogin,
		models.EventPageView, models.EventPageView, models.EventPageView, models.EventPageView,
		models.EventAddToCart, models.EventAddToCart,
		models.EventPurchase,
	}

	var docs []any
	for _, u := range users {
		docs = append(docs, models.AnalyticsEvent{
			ID:        primitive.NewObjectID(),
			Type:      models.EventUserRegistered,
			UserID:    &u.ID,
			CreatedAt: u.CreatedAt,
		})

		for i := 0; i < 2+rng.Intn(8); i++ {
			ev := models.AnalyticsEvent{
				ID:        primitive.NewObjectID(),
				Type:      types[rng.Intn(len(types))],
				UserID:    &u.ID,
				CreatedAt: now.AddDate(0, 0, -rng.Intn(14)).Add(-time.Duration(rng.Intn(86400)) * time.Second),
			}
			if ev.Type == models.EventPurchase {
				amount := float64(rng.Intn(15000)) / 100
				orderID := primitive.NewObjectID()
				ev.Amount = &amount
				ev.OrderID = &orderID
			}
			if ev.Type == models.EventAddToCart || ev.Type == models.EventPageView {
				productID := primitive.NewObjectID()
				ev.ProductID = &productID
				ev.Metadata = bson.M{"source": "seed"}
			}
			docs = append(docs, ev)
		}
	}

	if _, err := db.Collection("analytics_events").InsertMany(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}

func timePtr(t time.Time) *time.Time { return &t }
