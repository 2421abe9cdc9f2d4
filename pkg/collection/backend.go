// Package collection implements the persisted entity store: string-keyed
// JSON blobs holding whole collections, read and written atomically per key.
// Backends provide the raw blob storage; Store adds typed access, seeding,
// and single-owner read-modify-write semantics.
package collection

import (
	"context"
	"strings"

	"github.com/prompthub/prompthub/pkg/lifecycle"
)

// Backend stores whole JSON-encoded payloads by collection key.
type Backend interface {
	// Load returns the payload at the given key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save overwrites the payload at the given key.
	Save(ctx context.Context, key string, data []byte) error
}

// Notifier is implemented by backends that can report external changes to a
// key, such as another process writing the same data directory.
type Notifier interface {
	// Notify registers fn to be called when the key's payload changes
	// outside this process.
	Notify(key string, fn func()) error
}

// Starter is implemented by backends that participate in lifecycle
// coordination, such as remote backends that must provision storage.
type Starter interface {
	Start(lc *lifecycle.Coordinator) error
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") || strings.ContainsAny(key, "/\\") {
		return ErrInvalidKey
	}
	return nil
}
