// Package infrastructure provides core service initialization for
// application startup. It assembles logging, lifecycle coordination, and
// the configured persistence backend that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prompthub/prompthub/internal/config"
	"github.com/prompthub/prompthub/pkg/collection"
	"github.com/prompthub/prompthub/pkg/database"
	"github.com/prompthub/prompthub/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// Database is only populated when the postgres backend is selected.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Backend   collection.Backend
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	infra := &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
	}

	switch cfg.Store.Collection.Backend {
	case collection.BackendMemory:
		infra.Backend = collection.NewMemoryBackend()

	case collection.BackendFile:
		backend, err := collection.NewFileBackend(cfg.Store.Collection.Dir, logger)
		if err != nil {
			return nil, fmt.Errorf("file backend init failed: %w", err)
		}
		infra.Backend = backend

	case collection.BackendPostgres:
		db, err := database.New(&cfg.Store.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
		infra.Backend = collection.NewPostgresBackend(db.Connection())

	case collection.BackendAzure:
		backend, err := collection.NewAzureBackend(&cfg.Store.Collection.Azure, logger)
		if err != nil {
			return nil, fmt.Errorf("azure backend init failed: %w", err)
		}
		infra.Backend = backend

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Store.Collection.Backend)
	}

	return infra, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	if starter, ok := i.Backend.(collection.Starter); ok {
		if err := starter.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("backend start failed: %w", err)
		}
	}
	return nil
}
