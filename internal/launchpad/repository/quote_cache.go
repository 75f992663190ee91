package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/swap"
)

const (
	quoteKeyPrefix = "swap:quote:" // Quote result: swap:quote:{in}:{out}:{amount_in}
	tokensKey      = "swap:tokens" // Cached exchange token list
	quoteTTL       = 30 * time.Second
	tokensTTL      = 10 * time.Minute
)

// QuoteCache handles Redis caching of exchange reads. Quotes are best
// effort and may be stale; the short TTL bounds how stale.
type QuoteCache struct {
	client *redis.Client
}

// NewQuoteCache creates a new QuoteCache.
func NewQuoteCache(client *redis.Client) *QuoteCache {
	return &QuoteCache{client: client}
}

// GetQuote returns a cached quote and whether one was present.
func (c *QuoteCache) GetQuote(ctx context.Context, tokenIn, tokenOut string, amountIn uint64) (uint64, bool, error) {
	val, err := c.client.Get(ctx, c.quoteKey(tokenIn, tokenOut, amountIn)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get quote: %w", err)
	}

	amountOut, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt cached quote: %w", err)
	}
	return amountOut, true, nil
}

// SetQuote stores a quote with the cache TTL.
func (c *QuoteCache) SetQuote(ctx context.Context, tokenIn, tokenOut string, amountIn, amountOut uint64) error {
	key := c.quoteKey(tokenIn, tokenOut, amountIn)
	if err := c.client.Set(ctx, key, strconv.FormatUint(amountOut, 10), quoteTTL).Err(); err != nil {
		return fmt.Errorf("failed to set quote: %w", err)
	}
	return nil
}

// GetTokens returns the cached exchange token list and whether one was
// present.
func (c *QuoteCache) GetTokens(ctx context.Context) ([]swap.Token, bool, error) {
	data, err := c.client.Get(ctx, tokensKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get tokens: %w", err)
	}

	var tokens []swap.Token
	if err := json.Unmarshal([]byte(data), &tokens); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached tokens: %w", err)
	}
	return tokens, true, nil
}

// SetTokens stores the exchange token list with the list TTL.
func (c *QuoteCache) SetTokens(ctx context.Context, tokens []swap.Token) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}
	if err := c.client.Set(ctx, tokensKey, data, tokensTTL).Err(); err != nil {
		return fmt.Errorf("failed to set tokens: %w", err)
	}
	return nil
}

func (c *QuoteCache) quoteKey(tokenIn, tokenOut string, amountIn uint64) string {
	return fmt.Sprintf("%s%s:%s:%d", quoteKeyPrefix, tokenIn, tokenOut, amountIn)
}
