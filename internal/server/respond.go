package server

import (
	"encoding/json"
	"net/http"

	"github.com/deckforge/deckforge/pkg/errors"
)

// errorBody is the JSON error response shape.
type errorBody struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, statusFor(code), errorBody{Error: err.Error(), Code: code})
}

// statusFor maps structured error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidSlide,
		errors.ErrCodeInvalidLayout,
		errors.ErrCodeInvalidCoordinate,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidTheme,
		errors.ErrCodeInvalidMode,
		errors.ErrCodeInvalidProject:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeProjectNotFound,
		errors.ErrCodeThemeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeProjectExists:
		return http.StatusConflict
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeNetwork, errors.ErrCodeGenerationFailed:
		return http.StatusBadGateway
	case errors.ErrCodeUnsupported:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
