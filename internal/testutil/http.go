package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/babyfiction/storehub/internal/app/system/auth"
	"github.com/babyfiction/storehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// AsUser attaches a signed-in session user derived from u to the request,
// bypassing the cookie round-trip.
func AsUser(r *http.Request, u models.User) *http.Request {
	return auth.WithUser(r, &auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName(),
		Email: u.Email,
		Role:  u.Role,
	})
}

// NewRequest builds an httptest request with an optional body, authenticated
// as u.
func NewRequest(method, target string, body io.Reader, u models.User) *http.Request {
	r := httptest.NewRequest(method, target, body)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return AsUser(r, u)
}

// WithURLParam injects a chi route parameter, for calling handlers directly
// without a router.
func WithURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
