// Package response writes the JSON envelope used by the shop's small API
// endpoints (product listing, cart badge count).
package response

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 JSON response with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: status, Message: message})
}

// ValidationError sends a 422 with field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, envelope{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}
