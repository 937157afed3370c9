package projects

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/atelier-studio/atelier/pkg/pagination"
	"github.com/atelier-studio/atelier/pkg/query"
	"github.com/atelier-studio/atelier/pkg/repository"
)

const projectColumns = `id, type, client_name, client_business_name, niche,
		platform, tone_of_voice, language, brief, inputs_json, output_json,
		created_at, updated_at`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a project repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "projects"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Project], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanProject)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Project, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanProject)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Project, error) {
	q := fmt.Sprintf(`
		INSERT INTO projects(type, client_name, client_business_name, niche,
			platform, tone_of_voice, language, brief, inputs_json, output_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, projectColumns)

	args := []any{
		string(cmd.Type),
		cmd.ClientName,
		cmd.ClientBusinessName,
		cmd.Niche,
		cmd.Platform,
		cmd.ToneOfVoice,
		cmd.Language,
		cmd.Brief,
		[]byte(cmd.InputsJSON),
		[]byte(cmd.OutputJSON),
	}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		return repository.QueryOne(ctx, tx, q, args, scanProject)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project created", "id", p.ID, "type", p.Type, "client", p.ClientName)
	return &p, nil
}

func (r *repo) Count(ctx context.Context, filters Filters) (int, error) {
	qb := query.NewBuilder(projection)
	filters.Apply(qb)

	q, args := qb.BuildCount()

	var total int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return total, nil
}

// Stats computes the dashboard aggregates. The four counts run concurrently
// against independent predicates; a failure of any one fails the whole call.
func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats

	g, gctx := errgroup.WithContext(ctx)

	count := func(dest *int, t *Type) func() error {
		return func() error {
			n, err := r.Count(gctx, Filters{Type: t})
			if err != nil {
				return err
			}
			*dest = n
			return nil
		}
	}

	social := TypeSocialContent
	scripts := TypeTikTokScripts
	branding := TypeBrandingKit

	g.Go(count(&stats.Total, nil))
	g.Go(count(&stats.Social, &social))
	g.Go(count(&stats.Scripts, &scripts))
	g.Go(count(&stats.Branding, &branding))

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}

	return &stats, nil
}

// Duplicate copies an existing project into a new record. Every field is
// carried forward unchanged except the id and timestamps, which are freshly
// assigned, and the client name, which gains a " (Copy)" suffix. The stored
// output travels with the copy; generation is never re-run here.
func (r *repo) Duplicate(ctx context.Context, id uuid.UUID) (*Project, error) {
	q := fmt.Sprintf(`
		INSERT INTO projects(type, client_name, client_business_name, niche,
			platform, tone_of_voice, language, brief, inputs_json, output_json)
		SELECT type, client_name || ' (Copy)', client_business_name, niche,
			platform, tone_of_voice, language, brief, inputs_json, output_json
		FROM projects
		WHERE id = $1
		RETURNING %s`, projectColumns)

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		return repository.QueryOne(ctx, tx, q, []any{id}, scanProject)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project duplicated", "source", id, "id", p.ID, "client", p.ClientName)
	return &p, nil
}
