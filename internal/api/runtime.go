package api

import (
	"github.com/atelier-studio/atelier/internal/config"
	"github.com/atelier-studio/atelier/internal/infrastructure"
	"github.com/atelier-studio/atelier/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Generation config.GenerationConfig
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
		},
		Generation: cfg.Generation,
		Pagination: cfg.API.Pagination,
	}
}
