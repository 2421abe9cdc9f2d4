package api

import (
	"github.com/prompthub/prompthub/internal/config"
	"github.com/prompthub/prompthub/internal/infrastructure"
	"github.com/prompthub/prompthub/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Seed       bool
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Backend:   infra.Backend,
		},
		Pagination: cfg.API.Pagination,
		Seed:       cfg.Store.SeedEnabled(),
	}
}
