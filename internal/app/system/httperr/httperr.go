// Package httperr maps failures to the {success:false, message} error
// envelope. Client-caused failures (validation, not-found, business-rule
// rejections) carry their message verbatim; upstream failures are logged and
// answered with a generic message, with the underlying error attached only
// when the responder runs in development mode.
package httperr

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Responder writes error envelopes. Dev controls whether internal error
// detail is surfaced to the client; it is decided once at startup rather
// than read from ambient process state.
type Responder struct {
	Log *zap.Logger
	Dev bool
}

// NewResponder builds a Responder bound to the given logger.
func NewResponder(logger *zap.Logger, dev bool) *Responder {
	return &Responder{Log: logger, Dev: dev}
}

// BadRequest answers 400 with the given user-facing message.
func (rs *Responder) BadRequest(w http.ResponseWriter, msg string) {
	writeBody(w, http.StatusBadRequest, errorBody{Message: msg})
}

// NotFound answers 404 with the given message.
func (rs *Responder) NotFound(w http.ResponseWriter, msg string) {
	writeBody(w, http.StatusNotFound, errorBody{Message: msg})
}

// Internal logs err and answers 500. The public message stays generic; err
// itself is included in the body only in development mode.
func (rs *Responder) Internal(w http.ResponseWriter, msg string, err error) {
	if rs.Log != nil {
		rs.Log.Error(msg, zap.Error(err))
	}
	body := errorBody{Message: msg}
	if rs.Dev && err != nil {
		body.Error = err.Error()
	} else if !rs.Dev {
		body.Error = "Internal server error"
	}
	writeBody(w, http.StatusInternalServerError, body)
}

func writeBody(w http.ResponseWriter, status int, body errorBody) {
	body.Success = false
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
