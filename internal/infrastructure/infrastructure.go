// Package infrastructure provides core service initialization for application
// startup. It assembles the common dependencies (logging, database,
// lifecycle coordination) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/atelier-studio/atelier/internal/config"
	"github.com/atelier-studio/atelier/pkg/database"
	"github.com/atelier-studio/atelier/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// The database system wraps the single process-wide connection pool; it is
// constructed once here and passed down explicitly, never read from a global.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
