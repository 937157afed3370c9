package api

import (
	"net/http"

	"github.com/atelier-studio/atelier/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Projects.Handler().Routes(),
		domain.Pipeline.Handler().Routes(),
	)
}
