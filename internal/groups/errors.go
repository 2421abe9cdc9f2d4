package groups

import (
	"errors"
	"net/http"
)

// Domain errors for group operations.
var (
	ErrNotFound     = errors.New("group not found")
	ErrNameRequired = errors.New("group name is required")
)

// MapHTTPStatus maps group domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNameRequired) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
