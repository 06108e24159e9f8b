package adminusers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/babyfiction/storehub/internal/app/system/auth"
	"github.com/babyfiction/storehub/internal/app/system/respond"
	"github.com/babyfiction/storehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type statusRequest struct {
	IsActive *bool `json:"isActive"`
}

type statusData struct {
	ID       primitive.ObjectID `json:"_id"`
	Email    string             `json:"email"`
	IsActive bool               `json:"isActive"`
}

// ServeStatusUpdate handles PATCH /admin/users/{userID}/status.
//
// The body must carry a literal boolean isActive. Admins cannot change their
// own status; that is a business rule, not a technical limitation, so it is
// rejected before the database is ever consulted.
func (h *Handler) ServeStatusUpdate(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		h.Err.BadRequest(w, "isActive must be a boolean value")
		return
	}

	idHex := chi.URLParam(r, "userID")
	if caller, ok := auth.CurrentUser(r); ok && caller.ID == idHex {
		h.Err.BadRequest(w, "Cannot update your own status")
		return
	}

	userID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.Err.BadRequest(w, "Invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.SetActive(ctx, userID, *req.IsActive)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Err.NotFound(w, "User not found")
		return
	}
	if err != nil {
		h.Err.Internal(w, "Error updating user status", err)
		return
	}

	msg := "User deactivated successfully"
	if user.IsActive {
		msg = "User activated successfully"
	}
	respond.JSON(w, http.StatusOK, respond.Envelope{
		Success: true,
		Message: msg,
		Data: statusData{
			ID:       user.ID,
			Email:    user.Email,
			IsActive: user.IsActive,
		},
	})
}
