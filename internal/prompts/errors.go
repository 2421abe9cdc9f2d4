package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt operations.
var (
	ErrNotFound        = errors.New("prompt not found")
	ErrVersionNotFound = errors.New("prompt version not found")
	ErrTitleRequired   = errors.New("prompt title is required")
	ErrContentRequired = errors.New("prompt content is required")
	ErrInvalidStatus   = errors.New("unknown status filter")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrVersionNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrContentRequired) ||
		errors.Is(err, ErrInvalidStatus) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
