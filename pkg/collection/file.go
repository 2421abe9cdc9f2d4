package collection

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/prompthub/prompthub/pkg/lifecycle"
)

// FileBackend persists each collection as <dir>/<key>.json. Writes go
// through a temp file and rename so readers never observe a partial
// payload. When another process rewrites a file, registered callbacks are
// invoked via fsnotify.
type FileBackend struct {
	dir    string
	logger *slog.Logger

	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	callbacks map[string][]func()
}

func NewFileBackend(dir string, logger *slog.Logger) (*FileBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("file backend requires a data directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	return &FileBackend{
		dir:       dir,
		logger:    logger.With("system", "storage"),
		callbacks: make(map[string][]func()),
	}, nil
}

func (b *FileBackend) Load(_ context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

func (b *FileBackend) Save(_ context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	path := b.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Notify invokes fn whenever the file backing key changes on disk. The
// first registration starts a directory watcher.
func (b *FileBackend) Notify(key string, fn func()) error {
	if err := validateKey(key); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.watcher == nil {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("start file watcher: %w", err)
		}
		if err := watcher.Add(b.dir); err != nil {
			watcher.Close()
			return fmt.Errorf("watch %s: %w", b.dir, err)
		}
		b.watcher = watcher
		go b.dispatch(watcher)
	}

	b.callbacks[key] = append(b.callbacks[key], fn)
	return nil
}

// Start registers watcher teardown with the lifecycle coordinator.
func (b *FileBackend) Start(lc *lifecycle.Coordinator) error {
	lc.OnShutdown(func(context.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.watcher != nil {
			b.watcher.Close()
			b.watcher = nil
		}
	})
	return nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) dispatch(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(event.Name)
			ext := filepath.Ext(name)
			if ext != ".json" {
				continue
			}
			key := name[:len(name)-len(ext)]

			b.mu.Lock()
			fns := b.callbacks[key]
			b.mu.Unlock()

			for _, fn := range fns {
				fn()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			b.logger.Warn("file watcher error", "error", err)
		}
	}
}
