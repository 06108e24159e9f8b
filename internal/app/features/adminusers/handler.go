// Package adminusers serves the admin user-management endpoints: the
// paginated, filterable user list and the account status toggle.
package adminusers

import (
	userstore "github.com/babyfiction/storehub/internal/app/store/users"
	"github.com/babyfiction/storehub/internal/app/system/httperr"
	"go.uber.org/zap"
)

type Handler struct {
	Users *userstore.Store
	Err   *httperr.Responder
	Log   *zap.Logger
}

// NewHandler constructs the admin users handler.
func NewHandler(users *userstore.Store, errs *httperr.Responder, logger *zap.Logger) *Handler {
	return &Handler{
		Users: users,
		Err:   errs,
		Log:   logger,
	}
}
