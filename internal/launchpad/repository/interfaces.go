package repository

import (
	"context"
	"time"

	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/domain"
)

// ProjectRepository owns persistence of launchpad projects, including
// id allocation. Ids are unique and strictly increasing; projects are
// never deleted.
type ProjectRepository interface {
	// Create stores a new project, assigning its id. Funding starts at
	// zero and the project is unlaunched.
	Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error)

	// Get returns the project with the given id.
	Get(ctx context.Context, id uint64) (*domain.Project, error)

	// List returns all projects in insertion order.
	List(ctx context.Context) ([]domain.Project, error)

	// AddFunding increases a project's current funding by amount.
	AddFunding(ctx context.Context, id, amount uint64) (*domain.Project, error)

	// CommitLaunch marks the project launched and records the token id,
	// pool id and launch time in one atomic write. The write happens
	// only if the project is still unlaunched at commit time; otherwise
	// domain.ErrAlreadyLaunched is returned and nothing is modified.
	// Callers must treat any state read before a blocking exchange call
	// as advisory and rely on this check for the decisive transition.
	CommitLaunch(ctx context.Context, id uint64, tokenID string, poolID uint64, launchedAt time.Time) (*domain.Project, error)
}
