package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/atelier-studio/atelier/pkg/pagination"
)

// System defines the public contract for project domain operations.
// It is the only component that owns persisted project records; callers
// receive copies and never retain mutable references into the store.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Project], error)

	Find(ctx context.Context, id uuid.UUID) (*Project, error)
	Create(ctx context.Context, cmd CreateCommand) (*Project, error)
	Count(ctx context.Context, filters Filters) (int, error)
	Stats(ctx context.Context) (*Stats, error)
	Duplicate(ctx context.Context, id uuid.UUID) (*Project, error)
}
