package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Store provides typed access to a single persisted collection. Every
// mutation is a complete read-modify-write of the whole collection under a
// store-level mutex, so no partial state is ever observable in-process.
// Writes are last-write-wins across processes.
type Store[T any] struct {
	backend Backend
	key     string
	id      func(T) string
	seed    []T
	logger  *slog.Logger

	mu      sync.Mutex
	subs    []func()
	pending bool
	watched bool
}

// NewStore creates a typed store over the backend for the given key.
// The id function extracts an entity's identifier; seed is persisted and
// returned when the key is absent or its payload cannot be decoded.
func NewStore[T any](backend Backend, key string, id func(T) string, seed []T, logger *slog.Logger) *Store[T] {
	return &Store[T]{
		backend: backend,
		key:     key,
		id:      id,
		seed:    seed,
		logger:  logger.With("collection", key),
	}
}

// Key returns the persisted collection key.
func (s *Store[T]) Key() string {
	return s.key
}

// GetAll returns the collection in persisted order. It never fails: an
// absent key seeds the collection and persists the seed; a corrupt payload
// is logged, discarded, and replaced by the seed set.
func (s *Store[T]) GetAll(ctx context.Context) []T {
	s.mu.Lock()
	defer s.flush()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Find returns the entity with the given id, or ErrNotFound.
func (s *Store[T]) Find(ctx context.Context, id string) (T, error) {
	s.mu.Lock()
	defer s.flush()
	defer s.mu.Unlock()

	for _, item := range s.load(ctx) {
		if s.id(item) == id {
			return item, nil
		}
	}

	var zero T
	return zero, ErrNotFound
}

// Upsert replaces the entity with a matching id, or appends it when no
// match exists. The full collection is rewritten.
func (s *Store[T]) Upsert(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.flush()
	defer s.mu.Unlock()

	items := s.load(ctx)
	replaced := false
	for i := range items {
		if s.id(items[i]) == s.id(item) {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	return s.save(ctx, items)
}

// Update applies fn to the entity with the given id and rewrites the
// collection. Returns ErrNotFound if no entity matches.
func (s *Store[T]) Update(ctx context.Context, id string, fn func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.flush()
	defer s.mu.Unlock()

	var zero T
	items := s.load(ctx)
	for i := range items {
		if s.id(items[i]) != id {
			continue
		}
		if err := fn(&items[i]); err != nil {
			return zero, err
		}
		if err := s.save(ctx, items); err != nil {
			return zero, err
		}
		return items[i], nil
	}

	return zero, ErrNotFound
}

// Remove filters the entity with the given id out of the collection.
// Returns ErrNotFound if no entity matches.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.flush()
	defer s.mu.Unlock()

	items := s.load(ctx)
	kept := items[:0:0]
	for _, item := range items {
		if s.id(item) != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return ErrNotFound
	}

	return s.save(ctx, kept)
}

// Replace overwrites the whole collection with items.
func (s *Store[T]) Replace(ctx context.Context, items []T) error {
	s.mu.Lock()
	defer s.flush()
	defer s.mu.Unlock()
	return s.save(ctx, items)
}

// Subscribe registers fn to run after every successful write through this
// store, and after external changes when the backend supports notification.
// Callbacks run outside the store lock, so fn may call back into the store.
func (s *Store[T]) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)

	if s.watched {
		return
	}
	if n, ok := s.backend.(Notifier); ok {
		if err := n.Notify(s.key, s.notify); err != nil {
			s.logger.Warn("change notification unavailable", "error", err)
		} else {
			s.watched = true
		}
	}
}

// load must be called with the store mutex held.
func (s *Store[T]) load(ctx context.Context) []T {
	data, err := s.backend.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("collection load failed", "error", err)
		}
		return s.reseed(ctx)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("collection payload corrupt, falling back to seed data", "error", err)
		return s.reseed(ctx)
	}

	return items
}

// save must be called with the store mutex held. Subscriber callbacks are
// recorded as pending and fired by flush once the lock is released.
func (s *Store[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", s.key, err)
	}
	if err := s.backend.Save(ctx, s.key, data); err != nil {
		return fmt.Errorf("save collection %s: %w", s.key, err)
	}

	s.pending = true
	return nil
}

// flush runs subscriber callbacks recorded by save. It must be called
// without the store mutex held.
func (s *Store[T]) flush() {
	s.mu.Lock()
	fire := s.pending
	s.pending = false
	subs := s.subs
	s.mu.Unlock()

	if !fire {
		return
	}
	for _, fn := range subs {
		fn()
	}
}

func (s *Store[T]) reseed(ctx context.Context) []T {
	seed := make([]T, len(s.seed))
	copy(seed, s.seed)

	if err := s.save(ctx, seed); err != nil {
		s.logger.Error("persisting seed data failed", "error", err)
	} else if len(seed) > 0 {
		s.logger.Info("collection seeded", "entities", len(seed))
	}

	return seed
}

func (s *Store[T]) notify() {
	s.mu.Lock()
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
