// Package response holds the helpers every handler uses to write JSON, so
// the error shape stays identical across endpoints.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the wire shape of every API error. Details is optional;
// validation failures put their per-field messages there.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status. A nil data writes
// the status alone, which is how 204 responses are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes a structured error with the given status.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "Validation failed", verr.Fields)
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
