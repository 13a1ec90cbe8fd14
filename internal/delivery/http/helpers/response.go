// Package helpers provides JSON response and request-validation helpers
// shared by all controllers.
package helpers

import (
	"encoding/json"
	"net/http"
)

// FieldError is one field-level validation failure.
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the error body for all non-2xx API responses.
// Errors is present only for validation failures.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes an ErrorResponse with the given message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Message: message})
}

// WriteValidationError writes a 400 ErrorResponse carrying the
// field-level error list.
func WriteValidationError(w http.ResponseWriter, errs []FieldError) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Message: "validation failed",
		Errors:  errs,
	})
}
