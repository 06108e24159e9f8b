// Package analytics serves the admin dashboard aggregation and the event
// ingestion/reporting endpoints.
package analytics

import (
	"time"

	eventstore "github.com/babyfiction/storehub/internal/app/store/events"
	userstore "github.com/babyfiction/storehub/internal/app/store/users"
	"github.com/babyfiction/storehub/internal/app/system/cache"
	"github.com/babyfiction/storehub/internal/app/system/httperr"
	"go.uber.org/zap"
)

// feedLimit caps the recent-activity feed; the dashboard widget shows a fixed
// window, not a scrollable list.
const feedLimit = 10

type Handler struct {
	Users    *userstore.Store
	Events   *eventstore.Store
	Cache    *cache.Client
	CacheTTL time.Duration
	Err      *httperr.Responder
	Log      *zap.Logger
}

// NewHandler constructs the analytics handler. cacheClient may be nil when no
// Redis is configured; the summary is then recomputed on every request.
func NewHandler(users *userstore.Store, events *eventstore.Store, cacheClient *cache.Client, cacheTTL time.Duration, errs *httperr.Responder, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    users,
		Events:   events,
		Cache:    cacheClient,
		CacheTTL: cacheTTL,
		Err:      errs,
		Log:      logger,
	}
}
