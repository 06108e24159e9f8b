package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/babyfiction/storehub/internal/app/system/auth"
	"github.com/babyfiction/storehub/internal/app/system/params"
	"github.com/babyfiction/storehub/internal/app/system/respond"
	"github.com/babyfiction/storehub/internal/app/system/timeouts"
	"github.com/babyfiction/storehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ingestRequest struct {
	Type      string         `json:"type"`
	ProductID string         `json:"productId"`
	OrderID   string         `json:"orderId"`
	Amount    *float64       `json:"amount"`
	Metadata  map[string]any `json:"metadata"`
}

// ServeIngest handles POST /analytics/events.
//
// Authentication is optional: a signed-in caller's user id is attached to the
// event, anonymous events are stored without one.
func (h *Handler) ServeIngest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Err.BadRequest(w, "Invalid request body")
		return
	}
	if !models.KnownEventType(req.Type) {
		h.Err.BadRequest(w, "Unknown event type")
		return
	}

	ev := models.AnalyticsEvent{
		Type:     req.Type,
		Amount:   req.Amount,
		Metadata: req.Metadata,
	}
	if req.ProductID != "" {
		oid, err := primitive.ObjectIDFromHex(req.ProductID)
		if err != nil {
			h.Err.BadRequest(w, "Invalid productId")
			return
		}
		ev.ProductID = &oid
	}
	if req.OrderID != "" {
		oid, err := primitive.ObjectIDFromHex(req.OrderID)
		if err != nil {
			h.Err.BadRequest(w, "Invalid orderId")
			return
		}
		ev.OrderID = &oid
	}
	if u, ok := auth.CurrentUser(r); ok {
		if uid, err := primitive.ObjectIDFromHex(u.ID); err == nil {
			ev.UserID = &uid
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Events.Create(ctx, ev)
	if err != nil {
		h.Err.Internal(w, "Error recording event", err)
		return
	}
	respond.JSON(w, http.StatusCreated, respond.Envelope{Success: true, Data: created})
}

type eventSummary struct {
	WindowDays int              `json:"windowDays"`
	Events     map[string]int64 `json:"events"`
}

// ServeEventSummary handles GET /analytics/summary (admin).
// Counts events by type over a requestable window, default 7 days.
func (h *Handler) ServeEventSummary(w http.ResponseWriter, r *http.Request) {
	days := params.ParseWindowDays(r, 7, 90)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	since := time.Now().UTC().AddDate(0, 0, -days)
	counts, err := h.Events.CountByTypeSince(ctx, since)
	if err != nil {
		h.Err.Internal(w, "Error fetching analytics summary", err)
		return
	}

	respond.JSON(w, http.StatusOK, respond.Envelope{
		Success: true,
		Data: eventSummary{
			WindowDays: days,
			Events:     denseCounts(counts),
		},
	})
}

type mySummary struct {
	Events map[string]int64        `json:"events"`
	Recent []models.AnalyticsEvent `json:"recent"`
}

// ServeMySummary handles GET /analytics/me: the caller's own event counts
// over the last 30 days plus their most recent events.
func (h *Handler) ServeMySummary(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		h.Err.BadRequest(w, "Invalid user session")
		return
	}
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		h.Err.BadRequest(w, "Invalid user session")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	since := time.Now().UTC().AddDate(0, 0, -30)
	counts, err := h.Events.CountByTypeForUser(ctx, userID, since)
	if err != nil {
		h.Err.Internal(w, "Error fetching your analytics", err)
		return
	}
	recent, err := h.Events.RecentByUser(ctx, userID, 20)
	if err != nil {
		h.Err.Internal(w, "Error fetching your analytics", err)
		return
	}

	respond.JSON(w, http.StatusOK, respond.Envelope{
		Success: true,
		Data:    mySummary{Events: denseCounts(counts), Recent: recent},
	})
}

// denseCounts seeds every known event type with zero so clients always see
// the full key set, mirroring how the plan buckets are reported.
func denseCounts(sparse map[string]int64) map[string]int64 {
	dense := map[string]int64{
		models.EventUserRegistered: 0,
		models.EventLogin:          0,
		models.EventPurchase:       0,
		models.EventAddToCart:      0,
		models.EventPageView:       0,
	}
	for t, n := range sparse {
		dense[t] = n
	}
	return dense
}
