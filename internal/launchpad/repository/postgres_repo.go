package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/domain"
)

const projectColumns = `id, name, symbol, description, total_supply, target_funding,
	current_funding, creator, token_id, pool_id, is_launched, launched_at,
	created_at, updated_at`

// PostgresProjectRepository provides persistence operations for
// projects backed by Postgres. Project ids come from the table's
// identity column, so they are unique and strictly increasing.
type PostgresProjectRepository struct {
	db *pgxpool.Pool
}

// NewPostgresProjectRepository creates a new Postgres-backed repository.
func NewPostgresProjectRepository(db *pgxpool.Pool) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error) {
	const q = `
INSERT INTO projects (name, symbol, description, total_supply, target_funding, creator)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + projectColumns + `;
`
	row := r.db.QueryRow(ctx, q, req.Name, req.Symbol, req.Description,
		req.TotalSupply, req.TargetFunding, req.Creator)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (r *PostgresProjectRepository) Get(ctx context.Context, id uint64) (*domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1;`

	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects ORDER BY id;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PostgresProjectRepository) AddFunding(ctx context.Context, id, amount uint64) (*domain.Project, error) {
	const q = `
UPDATE projects
SET current_funding = current_funding + $2, updated_at = now()
WHERE id = $1
RETURNING ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) CommitLaunch(ctx context.Context, id uint64, tokenID string, poolID uint64, launchedAt time.Time) (*domain.Project, error) {
	// Conditional write: the is_launched guard in the predicate is the
	// decisive re-check. A launch that raced a concurrent commit
	// matches no row here and must not overwrite the winner's result.
	const q = `
UPDATE projects
SET token_id = $2, pool_id = $3, is_launched = TRUE, launched_at = $4, updated_at = now()
WHERE id = $1 AND is_launched = FALSE
RETURNING ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id, tokenID, poolID, launchedAt))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// No row matched: either the project is gone or it launched first.
	if _, getErr := r.Get(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrAlreadyLaunched
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.Symbol, &p.Description, &p.TotalSupply,
		&p.TargetFunding, &p.CurrentFunding, &p.Creator, &p.TokenID, &p.PoolID,
		&p.IsLaunched, &p.LaunchedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
