package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	eventstore "github.com/babyfiction/storehub/internal/app/store/events"
	"github.com/babyfiction/storehub/internal/app/system/plans"
	"github.com/babyfiction/storehub/internal/app/system/respond"
	"github.com/babyfiction/storehub/internal/app/system/timeouts"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const summaryCacheKey = "analytics:users:summary"

// userSummary is the dashboard payload. Unlike the enveloped endpoints, it is
// returned bare; the frontend consumes these fields at the top level.
type userSummary struct {
	TotalUsers        int64                      `json:"totalUsers"`
	NewUsersLast7Days int64                      `json:"newUsersLast7Days"`
	ActiveUsers       int64                      `json:"activeUsers"`
	UsersByPlan       plans.Buckets              `json:"usersByPlan"`
	RecentActivity    []eventstore.ActivityEntry `json:"recentActivity"`
}

// ServeUserAnalytics handles GET /admin/analytics/users.
//
// Four counts run concurrently with a fail-fast join; one failed count fails
// the whole request. The recent-activity feed is computed over the same
// 7-day window, but the public payload has always shipped recentActivity as
// an empty list and clients depend on that, so the computed feed stays out
// of the response for now.
func (h *Handler) ServeUserAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if cached := h.Cache.Get(ctx, summaryCacheKey); cached != nil {
		respond.Raw(w, cached)
		return
	}

	now := time.Now().UTC()
	sevenDaysAgo := now.AddDate(0, 0, -7)
	thirtyDaysAgo := now.AddDate(0, 0, -30)

	var (
		total      int64
		newUsers   int64
		active     int64
		roleCounts map[string]int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = h.Users.CountAll(gctx)
		return
	})
	g.Go(func() (err error) {
		newUsers, err = h.Users.CountCreatedSince(gctx, sevenDaysAgo)
		return
	})
	g.Go(func() (err error) {
		active, err = h.Users.CountActiveSince(gctx, thirtyDaysAgo)
		return
	})
	g.Go(func() (err error) {
		roleCounts, err = h.Users.CountByRole(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		h.Err.Internal(w, "Error fetching user analytics", err)
		return
	}

	feed, err := h.Events.RecentActivity(ctx, sevenDaysAgo, feedLimit)
	if err != nil {
		h.Err.Internal(w, "Error fetching user analytics", err)
		return
	}
	h.Log.Debug("recent activity computed", zap.Int("entries", len(feed)))

	summary := userSummary{
		TotalUsers:        total,
		NewUsersLast7Days: newUsers,
		ActiveUsers:       active,
		UsersByPlan:       plans.FromRoleCounts(roleCounts),
		RecentActivity:    []eventstore.ActivityEntry{},
	}

	body, err := json.Marshal(summary)
	if err != nil {
		h.Err.Internal(w, "Error fetching user analytics", err)
		return
	}
	h.Cache.Set(ctx, summaryCacheKey, body, h.CacheTTL)
	respond.Raw(w, body)
}
