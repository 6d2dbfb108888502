// Package http provides chi-compatible error handling and the serve loop.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/chainsafe/custody-bridge/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc.
//
// Usage with chi:
//
//	r.Post("/transfers", http.HandleError(h.initiate))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
	Kind  string `json:"kind,omitempty"`
}

// DefaultErrorHandler writes err as an ErrorResponse. Errors that are not a
// ServiceError are reported as a generic internal failure.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	resp := ErrorResponse{
		Error: "Unexpected Service Error",
		Code:  http.StatusInternalServerError,
		Kind:  "Internal",
	}

	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		resp = ErrorResponse{
			Error: svcErr.Message,
			Code:  svcErr.StatusCode(),
			Kind:  svcErr.Code,
		}
	}

	WriteJSON(w, resp.Code, resp)
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
