package workflows

import (
	"errors"
	"net/http"
)

// Domain errors for workflow operations.
var (
	ErrNotFound       = errors.New("workflow not found")
	ErrTitleRequired  = errors.New("workflow title is required")
	ErrPromptNotFound = errors.New("step prompt not found")
	ErrRemoteRejected = errors.New("remote delete rejected")
)

// MapHTTPStatus maps workflow domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrTitleRequired) || errors.Is(err, ErrPromptNotFound) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrRemoteRejected) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
