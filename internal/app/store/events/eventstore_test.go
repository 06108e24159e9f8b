package eventstore_test

import (
	"reflect"
	"testing"
	"time"

	eventstore "github.com/babyfiction/storehub/internal/app/store/events"
	"github.com/babyfiction/storehub/internal/domain/models"
	"github.com/babyfiction/storehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreate_FillsDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ev, err := store.Create(ctx, models.AnalyticsEvent{Type: models.EventPageView})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ev.ID.IsZero() {
		t.Error("expected generated ObjectID")
	}
	if ev.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestRecentActivity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	alice := fixtures.CreateUser(ctx, "Alice", "Adams", "alice@example.com")
	bob := fixtures.CreateUser(ctx, "Bob", "Badu", "bob@example.com")

	fixtures.CreateEvent(ctx, models.EventLogin, &alice.ID, now.Add(-3*time.Hour))
	fixtures.CreateEvent(ctx, models.EventPurchase, &bob.ID, now.Add(-1*time.Hour))
	fixtures.CreateEvent(ctx, models.EventUserRegistered, &alice.ID, now.Add(-2*time.Hour))

	// Outside the feed type set: never shows up.
	fixtures.CreateEvent(ctx, models.EventPageView, &alice.ID, now.Add(-time.Minute))
	// Too old.
	fixtures.CreateEvent(ctx, models.EventLogin, &bob.ID, now.AddDate(0, 0, -10))
	// Orphaned user id: inner join drops it.
	ghost := primitive.NewObjectID()
	fixtures.CreateEvent(ctx, models.EventLogin, &ghost, now.Add(-time.Minute))
	// Anonymous: no user to join.
	fixtures.CreateEvent(ctx, models.EventLogin, nil, now.Add(-time.Minute))

	entries, err := store.RecentActivity(ctx, now.AddDate(0, 0, -7), 10)
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(entries), entries)
	}

	// Newest first.
	var types []string
	for _, e := range entries {
		types = append(types, e.Type)
	}
	want := []string{models.EventPurchase, models.EventUserRegistered, models.EventLogin}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("order: got %v, want %v", types, want)
	}

	if entries[0].UserName != "Bob Badu" {
		t.Errorf("user name: got %q, want %q", entries[0].UserName, "Bob Badu")
	}
	if entries[0].UserEmail != "bob@example.com" {
		t.Errorf("user email: got %q", entries[0].UserEmail)
	}
	if !entries[0].Timestamp.After(entries[2].Timestamp) {
		t.Error("timestamps not descending")
	}
}

func TestRecentActivity_Limit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	u := fixtures.CreateUser(ctx, "Busy", "Bee", "bee@example.com")
	for i := 0; i < 15; i++ {
		fixtures.CreateEvent(ctx, models.EventLogin, &u.ID, now.Add(-time.Duration(i)*time.Minute))
	}

	entries, err := store.RecentActivity(ctx, now.AddDate(0, 0, -1), 10)
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("got %d entries, want limit 10", len(entries))
	}
}

func TestCountByTypeSince(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	u := fixtures.CreateUser(ctx, "Count", "Me", "cm@example.com")

	fixtures.CreateEvent(ctx, models.EventLogin, &u.ID, now.Add(-time.Hour))
	fixtures.CreateEvent(ctx, models.EventLogin, &u.ID, now.Add(-2*time.Hour))
	fixtures.CreateEvent(ctx, models.EventPurchase, &u.ID, now.Add(-time.Hour))
	fixtures.CreateEvent(ctx, models.EventLogin, &u.ID, now.AddDate(0, 0, -10))

	counts, err := store.CountByTypeSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("CountByTypeSince: %v", err)
	}
	want := map[string]int64{models.EventLogin: 2, models.EventPurchase: 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("got %v, want %v", counts, want)
	}
}

func TestCountByTypeForUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	mine := fixtures.CreateUser(ctx, "Mine", "User", "mine@example.com")
	other := fixtures.CreateUser(ctx, "Other", "User", "other@example.com")

	fixtures.CreateEvent(ctx, models.EventPageView, &mine.ID, now.Add(-time.Hour))
	fixtures.CreateEvent(ctx, models.EventPageView, &other.ID, now.Add(-time.Hour))

	counts, err := store.CountByTypeForUser(ctx, mine.ID, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("CountByTypeForUser: %v", err)
	}
	if counts[models.EventPageView] != 1 {
		t.Errorf("got %v, want only own events counted", counts)
	}
}

func TestRecentByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	u := fixtures.CreateUser(ctx, "Recent", "User", "ru@example.com")
	for i := 0; i < 5; i++ {
		fixtures.CreateEvent(ctx, models.EventPageView, &u.ID, now.Add(-time.Duration(i)*time.Minute))
	}

	events, err := store.RecentByUser(ctx, u.ID, 3)
	if err != nil {
		t.Fatalf("RecentByUser: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if !events[0].CreatedAt.After(events[2].CreatedAt) {
		t.Error("events not newest first")
	}
}
