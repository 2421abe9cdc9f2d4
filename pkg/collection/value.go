package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Value persists a single standalone value under its own key, for state
// that is not a collection (a remembered email address, for example).
type Value[T any] struct {
	backend Backend
	key     string

	mu sync.Mutex
}

func NewValue[T any](backend Backend, key string) *Value[T] {
	return &Value[T]{
		backend: backend,
		key:     key,
	}
}

// Get returns the persisted value. An absent or undecodable payload yields
// the zero value and ok=false.
func (v *Value[T]) Get(ctx context.Context) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero T
	data, err := v.backend.Load(ctx, v.key)
	if err != nil {
		return zero, false
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, false
	}
	return value, true
}

func (v *Value[T]) Set(ctx context.Context, value T) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value %s: %w", v.key, err)
	}
	if err := v.backend.Save(ctx, v.key, data); err != nil {
		return fmt.Errorf("save value %s: %w", v.key, err)
	}
	return nil
}
