// Package respond writes JSON responses in the storefront API's envelope
// conventions.
package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform wrapper used by list and mutation endpoints.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Raw writes pre-encoded JSON bytes with a 200 status. Used when a payload
// was marshaled once for caching and can be written back verbatim.
func Raw(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
