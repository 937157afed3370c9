// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/atelier-studio/atelier/internal/config"
	"github.com/atelier-studio/atelier/internal/infrastructure"
	"github.com/atelier-studio/atelier/pkg/middleware"
	"github.com/atelier-studio/atelier/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
