package api

import (
	"github.com/atelier-studio/atelier/internal/generation"
	"github.com/atelier-studio/atelier/internal/pipeline"
	"github.com/atelier-studio/atelier/internal/projects"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Projects projects.System
	Pipeline *pipeline.Runner
}

// NewDomain creates all domain systems from the API runtime. The project
// store is constructed once and shared by the query handlers and the
// pipeline; the generation client receives its configuration here and
// never reads the environment at call time.
func NewDomain(runtime *Runtime) *Domain {
	projectsSystem := projects.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	client := generation.New(runtime.Generation)

	runner := pipeline.NewRunner(
		client,
		projectsSystem,
		runtime.Logger,
		runtime.Generation.Language,
	)

	return &Domain{
		Projects: projectsSystem,
		Pipeline: runner,
	}
}
