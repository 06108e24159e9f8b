// Package auth validates the platform session cookie and exposes the signed-in
// user to handlers. Session issuance (login, OAuth, registration) lives in the
// main storefront service; this service only reads and verifies the cookie the
// platform sets, so every handler can trust auth.CurrentUser.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/babyfiction/storehub/internal/app/system/respond"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAuthKey   = "is_authenticated"
	userIDKey   = "user_id"
	userNameKey = "user_name"
	userMailKey = "user_email"
	userRoleKey = "user_role"
)

// SessionUser is what the session carries and what gets injected into
// r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the signed-in user and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// SessionManager decodes the platform session cookie and gates routes by role.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a SessionManager for the named cookie.
//
// An empty key is tolerated only for insecure (dev) deployments, where an
// ephemeral random key is generated; sessions then die with the process,
// which is fine locally and unacceptable in production.
func NewSessionManager(key, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if key == "" {
		if secure {
			return nil, fmt.Errorf("session key is empty; provide 32+ random chars")
		}
		key = string(securecookie.GenerateRandomKey(32))
		logger.Warn("session key not configured; generated an ephemeral dev key")
	}
	if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended", zap.Int("length", len(key)))
	}

	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		store.Options.SameSite = http.SameSiteNoneMode
	}

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// LoadSessionUser injects the session's user into the request context when a
// valid, authenticated session cookie is present. It never rejects; gating
// is left to RequireSignedIn / RequireRole.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.store.Get(r, sm.name)
		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:    getString(sess, userIDKey),
				Name:  getString(sess, userNameKey),
				Email: getString(sess, userMailKey),
				Role:  getString(sess, userRoleKey),
			}
			r = WithUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn answers 401 when no user is in context.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			respond.JSON(w, http.StatusUnauthorized, respond.Envelope{Message: "Authentication required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole answers 401 for anonymous callers and 403 for signed-in callers
// whose role is not in the allowed set.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				respond.JSON(w, http.StatusUnauthorized, respond.Envelope{Message: "Authentication required"})
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				respond.JSON(w, http.StatusForbidden, respond.Envelope{Message: "Not authorized to access this resource"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithUser returns a request whose context carries u. Exported for tests that
// bypass the cookie round-trip and inject a user directly.
func WithUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func getString(s *sessions.Session, key string) string {
	v, _ := s.Values[key].(string)
	return v
}
