package health

import (
	"context"
	"net/http"
	"time"

	"github.com/babyfiction/storehub/internal/app/system/respond"
	"github.com/babyfiction/storehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler reports process liveness and database reachability.
type Handler struct {
	Mongo *mongo.Client
	Log   *zap.Logger
}

func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{Mongo: client, Log: logger}
}

type healthStatus struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// ServeHealth handles GET /health. Returns 200 when Mongo answers a ping
// within the configured window, 503 otherwise.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	body := healthStatus{Status: "ok", Database: "ok", Time: time.Now().UTC()}
	if err := h.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Warn("health check: mongo ping failed", zap.Error(err))
		body.Status = "degraded"
		body.Database = "unreachable"
		respond.JSON(w, http.StatusServiceUnavailable, body)
		return
	}
	respond.JSON(w, http.StatusOK, body)
}
