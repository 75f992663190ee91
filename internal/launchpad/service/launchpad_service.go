package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/domain"
	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/repository"
	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/swap"
)

// swapDeadline is how long an exchange swap stays valid once submitted.
const swapDeadline = time.Hour

// LaunchpadService coordinates the project lifecycle: creation,
// funding, the one-time funding → launched transition, and the swap
// pass-through operations.
type LaunchpadService struct {
	repo  repository.ProjectRepository
	swap  swap.Service
	cache *repository.QuoteCache
	now   func() time.Time
}

// NewLaunchpadService creates a new launchpad service. cache may be
// nil, in which case quote and token-list caching is disabled.
func NewLaunchpadService(repo repository.ProjectRepository, swapSvc swap.Service, cache *repository.QuoteCache) *LaunchpadService {
	return &LaunchpadService{
		repo:  repo,
		swap:  swapSvc,
		cache: cache,
		now:   time.Now,
	}
}

// CreateProject registers a new project for the caller. Funding starts
// at zero and the project is unlaunched.
func (s *LaunchpadService) CreateProject(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error) {
	if req.Name == "" || req.Symbol == "" {
		return nil, fmt.Errorf("%w: name and symbol required", domain.ErrInvalidProject)
	}
	if req.Creator == "" {
		return nil, fmt.Errorf("%w: creator required", domain.ErrInvalidProject)
	}
	if req.TotalSupply == 0 || req.TargetFunding == 0 {
		return nil, fmt.Errorf("%w: total supply and target funding must be positive", domain.ErrInvalidProject)
	}
	return s.repo.Create(ctx, req)
}

// Fund increases a project's current funding. Reaching the target
// never launches by itself; launch is an explicit creator action.
func (s *LaunchpadService) Fund(ctx context.Context, projectID, amount uint64) (*domain.Project, error) {
	if amount == 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.repo.AddFunding(ctx, projectID, amount)
}

// GetProject returns a single project.
func (s *LaunchpadService) GetProject(ctx context.Context, projectID uint64) (*domain.Project, error) {
	return s.repo.Get(ctx, projectID)
}

// ListProjects returns all projects.
func (s *LaunchpadService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// Launch performs the one-time funding → launched transition: it
// validates the preconditions, creates the token and liquidity pool on
// the exchange, and commits the outcome.
//
// The exchange call can block for a long time while other requests,
// including a second Launch for the same project, run to completion.
// The snapshot validated below is therefore advisory only; the
// decisive is_launched check is repeated atomically inside
// CommitLaunch after the call returns. A validate-once-then-write
// sequence would let two overlapping launches both commit.
func (s *LaunchpadService) Launch(ctx context.Context, projectID uint64, caller string, initialLiquidity uint64) (*domain.Project, error) {
	project, err := s.repo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if project.Creator != caller {
		return nil, domain.ErrNotCreator
	}
	if project.IsLaunched {
		return nil, domain.ErrAlreadyLaunched
	}
	if !project.Funded() {
		return nil, domain.ErrFundingNotMet
	}

	result, err := s.swap.CreateTokenAndPool(ctx, swap.CreatePoolRequest{
		Symbol:           project.Symbol,
		Name:             project.Name,
		TotalSupply:      project.TotalSupply,
		InitialLiquidity: initialLiquidity,
	})
	if err != nil {
		// Nothing was committed; the project stays in funding and the
		// caller may retry.
		return nil, fmt.Errorf("create token and pool: %w", err)
	}

	launched, err := s.repo.CommitLaunch(ctx, projectID, result.TokenID, result.PoolID, s.now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyLaunched) {
			// A concurrent launch committed while this one was waiting
			// on the exchange. Its result stands; ours is discarded.
			// The pool created by this call is now an orphan on the
			// exchange — there is no cancel API, so it is left for
			// operator reconciliation.
			log.Printf("[launchpad] project %d: concurrent launch won, orphan token=%s pool=%d",
				projectID, result.TokenID, result.PoolID)
		}
		return nil, err
	}

	log.Printf("[launchpad] project %d launched: token=%s pool=%d", projectID, result.TokenID, result.PoolID)
	return launched, nil
}

// SwapTokens executes a swap on the exchange on behalf of the caller.
func (s *LaunchpadService) SwapTokens(ctx context.Context, caller, tokenIn, tokenOut string, amountIn, minAmountOut uint64) (uint64, error) {
	if amountIn == 0 {
		return 0, domain.ErrInvalidAmount
	}
	return s.swap.Swap(ctx, swap.SwapRequest{
		TokenIn:      tokenIn,
		TokenOut:     tokenOut,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		Recipient:    caller,
		Deadline:     s.now().Add(swapDeadline),
	})
}

// GetQuote returns the expected output of a swap, served from the
// cache when a recent quote exists.
func (s *LaunchpadService) GetQuote(ctx context.Context, tokenIn, tokenOut string, amountIn uint64) (uint64, error) {
	if s.cache != nil {
		amountOut, ok, err := s.cache.GetQuote(ctx, tokenIn, tokenOut, amountIn)
		if err != nil {
			log.Printf("[launchpad] quote cache read failed: %v", err)
		} else if ok {
			return amountOut, nil
		}
	}

	amountOut, err := s.swap.Quote(ctx, tokenIn, tokenOut, amountIn)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetQuote(ctx, tokenIn, tokenOut, amountIn, amountOut); err != nil {
			log.Printf("[launchpad] quote cache write failed: %v", err)
		}
	}
	return amountOut, nil
}

// ListTokens returns the exchange's tradable tokens. When the exchange
// is unreachable a cached copy, possibly stale, is served instead.
func (s *LaunchpadService) ListTokens(ctx context.Context) ([]swap.Token, error) {
	tokens, err := s.swap.ListTokens(ctx)
	if err != nil {
		if s.cache != nil {
			cached, ok, cacheErr := s.cache.GetTokens(ctx)
			if cacheErr == nil && ok {
				log.Printf("[launchpad] exchange token list failed, serving cached copy: %v", err)
				return cached, nil
			}
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetTokens(ctx, tokens); err != nil {
			log.Printf("[launchpad] token cache write failed: %v", err)
		}
	}
	return tokens, nil
}

// RefreshTokens re-fetches the exchange token list into the cache. The
// cron scheduler calls this periodically so ListTokens has a warm
// fallback.
func (s *LaunchpadService) RefreshTokens(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	tokens, err := s.swap.ListTokens(ctx)
	if err != nil {
		return fmt.Errorf("refresh tokens: %w", err)
	}
	return s.cache.SetTokens(ctx, tokens)
}
