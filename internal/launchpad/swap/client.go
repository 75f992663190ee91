package swap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const slippageCode = "slippage_exceeded"

// Client handles communication with the exchange's REST API. Outbound
// calls pass through a rate limiter so a burst of launches or swaps
// cannot trip the exchange's throttling.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new exchange client. rps bounds outbound
// requests per second; zero or negative selects a default of 10.
func NewClient(baseURL string, rps int) *Client {
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// errorResponse is the exchange's error body.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CreateTokenAndPool creates a token and liquidity pool on the exchange.
func (c *Client) CreateTokenAndPool(ctx context.Context, req CreatePoolRequest) (*PoolResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/v1/pools", req, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var result PoolResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pool response: %w", err)
	}
	return &result, nil
}

// Swap executes a token swap on the exchange.
func (c *Client) Swap(ctx context.Context, req SwapRequest) (uint64, error) {
	body, err := c.do(ctx, http.MethodPost, "/v1/swap", req, http.StatusOK)
	if err != nil {
		return 0, err
	}

	var result struct {
		AmountOut uint64 `json:"amount_out"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("failed to unmarshal swap response: %w", err)
	}
	return result.AmountOut, nil
}

// Quote asks the exchange for the expected output of a swap.
func (c *Client) Quote(ctx context.Context, tokenIn, tokenOut string, amountIn uint64) (uint64, error) {
	q := url.Values{}
	q.Set("token_in", tokenIn)
	q.Set("token_out", tokenOut)
	q.Set("amount_in", strconv.FormatUint(amountIn, 10))

	body, err := c.do(ctx, http.MethodGet, "/v1/quote?"+q.Encode(), nil, http.StatusOK)
	if err != nil {
		return 0, err
	}

	var result struct {
		AmountOut uint64 `json:"amount_out"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("failed to unmarshal quote response: %w", err)
	}
	return result.AmountOut, nil
}

// ListTokens returns the exchange's tradable tokens.
func (c *Client) ListTokens(ctx context.Context) ([]Token, error) {
	body, err := c.do(ctx, http.MethodGet, "/v1/tokens", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var result struct {
		Tokens []Token `json:"tokens"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tokens response: %w", err)
	}
	return result.Tokens, nil
}

// do issues one request and maps failures to the package's error
// kinds: transport failures wrap ErrServiceUnavailable, rejections
// become *ServiceError, and the exchange's slippage code maps to
// ErrSlippageExceeded.
func (c *Client) do(ctx context.Context, method, path string, payload any, wantStatus int) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrServiceUnavailable, err)
	}

	if resp.StatusCode != wantStatus {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Code == slippageCode {
			return nil, fmt.Errorf("%w: %s", ErrSlippageExceeded, errResp.Error)
		}
		msg := errResp.Error
		if msg == "" {
			msg = string(body)
		}
		return nil, &ServiceError{Status: resp.StatusCode, Message: msg}
	}

	return body, nil
}
