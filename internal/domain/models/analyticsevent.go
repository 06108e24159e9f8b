package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event types accepted by the ingestion endpoint.
const (
	EventUserRegistered = "user_registered"
	EventLogin          = "login"
	EventPurchase       = "purchase"
	EventAddToCart      = "add_to_cart"
	EventPageView       = "page_view"
)

// AnalyticsEvent is an append-only record in the analytics_events collection.
// Events are written by the ingestion endpoint (and by other parts of the
// platform); nothing in this service ever updates or deletes one.
type AnalyticsEvent struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Type      string              `bson:"type" json:"type"`
	UserID    *primitive.ObjectID `bson:"user_id,omitempty" json:"userId,omitempty"`
	ProductID *primitive.ObjectID `bson:"product_id,omitempty" json:"productId,omitempty"`
	OrderID   *primitive.ObjectID `bson:"order_id,omitempty" json:"orderId,omitempty"`
	Amount    *float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Metadata  map[string]any      `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
}

// KnownEventType reports whether t is one of the event types this service
// accepts for ingestion.
func KnownEventType(t string) bool {
	switch t {
	case EventUserRegistered, EventLogin, EventPurchase, EventAddToCart, EventPageView:
		return true
	}
	return false
}

// FeedEventTypes are the event types that appear in the admin recent-activity
// feed. Deliberately narrower than the ingestion enum.
func FeedEventTypes() []string {
	return []string{EventUserRegistered, EventLogin, EventPurchase}
}
