package repository

import (
	"context"
	"sync"
	"time"

	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/domain"
)

// MemoryProjectRepository is an in-memory ProjectRepository used in
// tests and in deployments without a database. It mirrors the Postgres
// implementation's semantics: strictly increasing ids, no deletion,
// and an atomic launch commit guarded by the is_launched flag.
type MemoryProjectRepository struct {
	mu     sync.Mutex
	nextID uint64
	order  []uint64
	items  map[uint64]*domain.Project
}

// NewMemoryProjectRepository creates an empty in-memory repository.
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{
		nextID: 1,
		items:  make(map[uint64]*domain.Project),
	}
}

func (r *MemoryProjectRepository) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p := &domain.Project{
		ID:            r.nextID,
		Name:          req.Name,
		Symbol:        req.Symbol,
		Description:   req.Description,
		TotalSupply:   req.TotalSupply,
		TargetFunding: req.TargetFunding,
		Creator:       req.Creator,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.nextID++
	r.items[p.ID] = p
	r.order = append(r.order, p.ID)

	return clone(p), nil
}

func (r *MemoryProjectRepository) Get(ctx context.Context, id uint64) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return clone(p), nil
}

func (r *MemoryProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Project, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *clone(r.items[id]))
	}
	return out, nil
}

func (r *MemoryProjectRepository) AddFunding(ctx context.Context, id, amount uint64) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	p.CurrentFunding += amount
	p.UpdatedAt = time.Now().UTC()

	return clone(p), nil
}

func (r *MemoryProjectRepository) CommitLaunch(ctx context.Context, id uint64, tokenID string, poolID uint64, launchedAt time.Time) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if p.IsLaunched {
		return nil, domain.ErrAlreadyLaunched
	}

	token := tokenID
	pool := poolID
	at := launchedAt
	p.TokenID = &token
	p.PoolID = &pool
	p.LaunchedAt = &at
	p.IsLaunched = true
	p.UpdatedAt = time.Now().UTC()

	return clone(p), nil
}

// clone copies a project so callers never alias the stored record.
func clone(p *domain.Project) *domain.Project {
	cp := *p
	if p.TokenID != nil {
		v := *p.TokenID
		cp.TokenID = &v
	}
	if p.PoolID != nil {
		v := *p.PoolID
		cp.PoolID = &v
	}
	if p.LaunchedAt != nil {
		v := *p.LaunchedAt
		cp.LaunchedAt = &v
	}
	return &cp
}
