package collection

import "errors"

var (
	// ErrNotFound indicates the requested key or entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyKey indicates an empty collection key was provided.
	ErrEmptyKey = errors.New("collection key must not be empty")
	// ErrInvalidKey indicates the collection key contains a path traversal segment.
	ErrInvalidKey = errors.New("collection key contains invalid path segment")
)
