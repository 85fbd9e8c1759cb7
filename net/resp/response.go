// Package resp provides JSON response helpers for HTTP handlers.
package resp

import (
	"encoding/json"
	"net/http"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
	Data    any    `json:"data,omitempty"`    // Response data
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with custom status code.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	var responseData any
	if len(data) > 0 {
		responseData = data[0]
	}
	if responseData == nil {
		responseData = map[string]any{"message": "ok"}
	}
	writeJSON(w, statusCode, responseData)
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	status := http.StatusBadRequest
	message := "request error"
	if r != nil {
		if r.Status != 0 {
			status = r.Status
		}
		if r.Message != "" {
			message = r.Message
		}
	}

	body := &Exception{Message: message}
	if r != nil {
		body.Errors = r.Errors
	}
	writeJSON(w, status, body)
}

// writeJSON writes the response with the specified status code.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
