package analytics

import (
	"github.com/babyfiction/storehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// AdminRoutes mounts the dashboard aggregation endpoints (typically under
// "/admin/analytics" from bootstrap). Admin only.
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/users", h.ServeUserAnalytics)
	})

	return r
}

// Routes mounts the event endpoints (typically under "/analytics").
// Ingestion accepts anonymous callers; the summaries are gated.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Post("/events", h.ServeIngest)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("admin"))
		pr.Get("/summary", h.ServeEventSummary)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/me", h.ServeMySummary)
	})

	return r
}
