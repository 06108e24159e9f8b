package adminusers

import (
	"context"
	"net/http"

	userstore "github.com/babyfiction/storehub/internal/app/store/users"
	"github.com/babyfiction/storehub/internal/app/system/params"
	"github.com/babyfiction/storehub/internal/app/system/respond"
	"github.com/babyfiction/storehub/internal/app/system/timeouts"
	"github.com/babyfiction/storehub/internal/domain/models"
)

type listResponse struct {
	Success    bool              `json:"success"`
	Data       []models.User     `json:"data"`
	Pagination params.Pagination `json:"pagination"`
}

// ServeList handles GET /admin/users.
//
// Query: page, limit, search (substring over first/last name, email, phone),
// role (exact), isActive ("true"/"false"). Results are newest-first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q, err := params.ParseListQuery(r)
	if err != nil {
		h.Err.BadRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, total, err := h.Users.ListPage(ctx, userstore.ListFilter{
		Search:   q.Search,
		Role:     q.Role,
		IsActive: q.IsActive,
	}, q.Page, q.Limit)
	if err != nil {
		h.Err.Internal(w, "Error fetching users", err)
		return
	}

	respond.JSON(w, http.StatusOK, listResponse{
		Success:    true,
		Data:       users,
		Pagination: params.NewPagination(q.Page, q.Limit, total),
	})
}
