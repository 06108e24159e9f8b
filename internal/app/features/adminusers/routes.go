package adminusers

import (
	"github.com/babyfiction/storehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the admin user-management endpoints (typically under
// "/admin/users" from bootstrap). Every route requires an admin session.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/", h.ServeList)
		pr.Patch("/{userID}/status", h.ServeStatusUpdate)
	})

	return r
}
