package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/repository"
	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/service"
	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/swap"
)

// fakeExchange is a canned swap.Service for handler tests.
type fakeExchange struct {
	createErr error
	swapErr   error
}

func (f *fakeExchange) CreateTokenAndPool(ctx context.Context, req swap.CreatePoolRequest) (*swap.PoolResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &swap.PoolResult{TokenID: "7", PoolID: 42}, nil
}

func (f *fakeExchange) Swap(ctx context.Context, req swap.SwapRequest) (uint64, error) {
	if f.swapErr != nil {
		return 0, f.swapErr
	}
	return req.AmountIn, nil
}

func (f *fakeExchange) Quote(ctx context.Context, tokenIn, tokenOut string, amountIn uint64) (uint64, error) {
	return amountIn, nil
}

func (f *fakeExchange) ListTokens(ctx context.Context) ([]swap.Token, error) {
	return []swap.Token{{ID: "1", Symbol: "ICP", Name: "Internet Computer", Decimals: 8}}, nil
}

func newTestRouter(exchange swap.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewLaunchpadService(repository.NewMemoryProjectRepository(), exchange, nil)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(svc).Register(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, caller string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set("X-Caller-Id", caller)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTestProject(t *testing.T, r *gin.Engine, creator string) uint64 {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", creator, gin.H{
		"name":           "Launch Token",
		"symbol":         "TKN",
		"description":    "a token",
		"total_supply":   1000000,
		"target_funding": 1000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Project struct {
			ID uint64 `json:"id"`
		} `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Project.ID
}

func TestCreateProject_RequiresCaller(t *testing.T) {
	r := newTestRouter(&fakeExchange{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", "", gin.H{
		"name": "Launch Token", "symbol": "TKN", "total_supply": 1, "target_funding": 1,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProject_InvalidBody(t *testing.T) {
	r := newTestRouter(&fakeExchange{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", "alice", gin.H{
		"symbol": "TKN",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProject(t *testing.T) {
	r := newTestRouter(&fakeExchange{})
	id := createTestProject(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d", id), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/notanumber", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProjects(t *testing.T) {
	r := newTestRouter(&fakeExchange{})
	createTestProject(t, r, "alice")
	createTestProject(t, r, "bob")

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []json.RawMessage `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Projects, 2)
}

// TestLaunchProject_Flow drives the launch lifecycle over HTTP and
// checks each rejection maps to the right status code.
func TestLaunchProject_Flow(t *testing.T) {
	r := newTestRouter(&fakeExchange{})
	id := createTestProject(t, r, "alice")
	path := fmt.Sprintf("/api/v1/projects/%d/launch", id)

	// not funded
	w := doJSON(t, r, http.MethodPost, path, "alice", gin.H{"initial_liquidity": 500})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// fund to the target
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/fund", id), "bob", gin.H{"amount": 1000})
	require.Equal(t, http.StatusOK, w.Code)

	// wrong caller
	w = doJSON(t, r, http.MethodPost, path, "mallory", gin.H{"initial_liquidity": 500})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// anonymous
	w = doJSON(t, r, http.MethodPost, path, "", gin.H{"initial_liquidity": 500})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// creator launches
	w = doJSON(t, r, http.MethodPost, path, "alice", gin.H{"initial_liquidity": 500})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		TokenID string `json:"token_id"`
		PoolID  uint64 `json:"pool_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "7", resp.TokenID)
	assert.Equal(t, uint64(42), resp.PoolID)

	// already launched
	w = doJSON(t, r, http.MethodPost, path, "alice", gin.H{"initial_liquidity": 500})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLaunchProject_ExchangeDown(t *testing.T) {
	r := newTestRouter(&fakeExchange{
		createErr: fmt.Errorf("%w: connection refused", swap.ErrServiceUnavailable),
	})
	id := createTestProject(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/fund", id), "bob", gin.H{"amount": 1000})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/launch", id), "alice", gin.H{"initial_liquidity": 500})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLaunchProject_ExchangeRejection(t *testing.T) {
	r := newTestRouter(&fakeExchange{
		createErr: &swap.ServiceError{Status: http.StatusInternalServerError, Message: "pool creation failed"},
	})
	id := createTestProject(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/fund", id), "bob", gin.H{"amount": 1000})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/launch", id), "alice", gin.H{"initial_liquidity": 500})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSwapTokens(t *testing.T) {
	r := newTestRouter(&fakeExchange{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/swap", "alice", gin.H{
		"token_in": "ICP", "token_out": "TKN", "amount_in": 100, "min_amount_out": 90,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AmountOut uint64 `json:"amount_out"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(100), resp.AmountOut)

	// anonymous swaps are rejected: the caller is the recipient
	w = doJSON(t, r, http.MethodPost, "/api/v1/swap", "", gin.H{
		"token_in": "ICP", "token_out": "TKN", "amount_in": 100,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSwapTokens_Slippage(t *testing.T) {
	r := newTestRouter(&fakeExchange{
		swapErr: fmt.Errorf("%w: output 85 below minimum 90", swap.ErrSlippageExceeded),
	})

	w := doJSON(t, r, http.MethodPost, "/api/v1/swap", "alice", gin.H{
		"token_in": "ICP", "token_out": "TKN", "amount_in": 100, "min_amount_out": 90,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetQuote(t *testing.T) {
	r := newTestRouter(&fakeExchange{})

	w := doJSON(t, r, http.MethodGet, "/api/v1/quote?token_in=ICP&token_out=TKN&amount_in=100", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/quote?token_in=ICP", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTokens(t *testing.T) {
	r := newTestRouter(&fakeExchange{})

	w := doJSON(t, r, http.MethodGet, "/api/v1/tokens", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tokens []swap.Token `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tokens, 1)
	assert.Equal(t, "ICP", resp.Tokens[0].Symbol)
}
