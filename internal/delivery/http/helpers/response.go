package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// APIError is the body of every non-2xx response.
// swagger:model APIError
type APIError struct {
	Message string `json:"message"`
	// Field names the rejected input field on validation errors.
	Field string `json:"field,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes data.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError writes an APIError with the given message and optional field.
func WriteJSONError(w http.ResponseWriter, statusCode int, message, field string) {
	WriteJSON(w, statusCode, APIError{Message: message, Field: field})
}

// MethodNotAllowed returns a handler answering 405 with an Allow header listing methods.
func MethodNotAllowed(methods ...string) http.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		WriteJSONError(w, http.StatusMethodNotAllowed, "Method Not Allowed", "")
	}
}

// NotFound answers 404 for paths no route matches.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusNotFound, "Not Found", "")
}
