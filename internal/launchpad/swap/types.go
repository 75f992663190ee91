package swap

import (
	"context"
	"time"
)

// Service is the capability set the launchpad consumes from the
// external exchange. Every call may block for an unbounded time and
// can fail independently of local state; callers must not trust state
// read before a call after it returns.
type Service interface {
	// CreateTokenAndPool creates a tradable token for the project and a
	// liquidity pool seeded with the given initial liquidity.
	CreateTokenAndPool(ctx context.Context, req CreatePoolRequest) (*PoolResult, error)

	// Swap trades amount_in of token_in for token_out on behalf of the
	// recipient. Returns the amount received.
	Swap(ctx context.Context, req SwapRequest) (uint64, error)

	// Quote returns the expected output of a swap. Best effort: the
	// price may move before a matching Swap executes.
	Quote(ctx context.Context, tokenIn, tokenOut string, amountIn uint64) (uint64, error)

	// ListTokens returns the tokens tradable on the exchange.
	ListTokens(ctx context.Context) ([]Token, error)
}

// CreatePoolRequest carries the parameters for token and pool creation.
type CreatePoolRequest struct {
	Symbol           string `json:"symbol"`
	Name             string `json:"name"`
	TotalSupply      uint64 `json:"total_supply"`
	InitialLiquidity uint64 `json:"initial_liquidity"`
}

// PoolResult is the outcome of a successful token and pool creation.
type PoolResult struct {
	TokenID string `json:"token_id"`
	PoolID  uint64 `json:"pool_id"`
}

// SwapRequest describes a token swap.
type SwapRequest struct {
	TokenIn      string    `json:"token_in"`
	TokenOut     string    `json:"token_out"`
	AmountIn     uint64    `json:"amount_in"`
	MinAmountOut uint64    `json:"min_amount_out"`
	Recipient    string    `json:"recipient"`
	Deadline     time.Time `json:"deadline"`
}

// Token describes an asset tradable on the exchange.
type Token struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
}
