package health

import "github.com/go-chi/chi/v5"

// Routes mounts the health endpoint. Unauthenticated; load balancers and
// uptime probes hit it directly.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeHealth)
	return r
}
