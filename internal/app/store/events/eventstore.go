package eventstore

import (
	"context"
	"time"

	"github.com/babyfiction/storehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages the append-only analytics_events collection.
type Store struct {
	c *mongo.Collection
}

// New creates an event Store over db's analytics_events collection.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("analytics_events")}
}

// Create appends an event, filling in ID and CreatedAt when unset.
func (s *Store) Create(ctx context.Context, ev models.AnalyticsEvent) (models.AnalyticsEvent, error) {
	if ev.ID.IsZero() {
		ev.ID = primitive.NewObjectID()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, ev); err != nil {
		return models.AnalyticsEvent{}, err
	}
	return ev, nil
}

// ActivityEntry is one denormalized row of the admin recent-activity feed:
// the event joined with its user, flattened.
type ActivityEntry struct {
	Type      string              `bson:"type" json:"type"`
	UserID    primitive.ObjectID  `bson:"user_id" json:"userId"`
	UserName  string              `bson:"user_name" json:"userName"`
	UserEmail string              `bson:"user_email" json:"userEmail"`
	Timestamp time.Time           `bson:"timestamp" json:"timestamp"`
	ProductID *primitive.ObjectID `bson:"product_id,omitempty" json:"productId,omitempty"`
	OrderID   *primitive.ObjectID `bson:"order_id,omitempty" json:"orderId,omitempty"`
	Amount    *float64            `bson:"amount,omitempty" json:"amount,omitempty"`
}

// RecentActivity returns the newest feed-type events since the given time,
// each joined to its user. Events whose user no longer resolves are dropped
// from the feed entirely (inner-join semantics), as are anonymous events.
func (s *Store) RecentActivity(ctx context.Context, since time.Time, limit int64) ([]ActivityEntry, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"type":       bson.M{"$in": models.FeedEventTypes()},
			"created_at": bson.M{"$gte": since},
		}},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": "$user"},
		{"$project": bson.M{
			"_id":        0,
			"type":       1,
			"user_id":    1,
			"user_name":  bson.M{"$concat": []any{"$user.first_name", " ", "$user.last_name"}},
			"user_email": "$user.email",
			"timestamp":  "$created_at",
			"product_id": 1,
			"order_id":   1,
			"amount":     1,
		}},
		{"$sort": bson.M{"timestamp": -1}},
		{"$limit": limit},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := make([]ActivityEntry, 0, limit)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByTypeSince groups events created on or after t by type. Sparse: only
// types that occurred appear in the map.
func (s *Store) CountByTypeSince(ctx context.Context, t time.Time) (map[string]int64, error) {
	return s.countByType(ctx, bson.M{"created_at": bson.M{"$gte": t}})
}

// CountByTypeForUser groups one user's events since t by type.
func (s *Store) CountByTypeForUser(ctx context.Context, userID primitive.ObjectID, t time.Time) (map[string]int64, error) {
	return s.countByType(ctx, bson.M{"user_id": userID, "created_at": bson.M{"$gte": t}})
}

func (s *Store) countByType(ctx context.Context, match bson.M) (map[string]int64, error) {
	cur, err := s.c.Aggregate(ctx, []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": "$type", "count": bson.M{"$sum": 1}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			Type  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Type] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// RecentByUser returns a user's own newest events, newest first.
func (s *Store) RecentByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.AnalyticsEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := make([]models.AnalyticsEvent, 0, limit)
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
