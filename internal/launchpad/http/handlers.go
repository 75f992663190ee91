package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/domain"
	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/service"
	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/swap"
)

// Handler exposes the launchpad over HTTP.
type Handler struct {
	svc *service.LaunchpadService
}

// NewHandler creates a new launchpad handler.
func NewHandler(svc *service.LaunchpadService) *Handler {
	return &Handler{svc: svc}
}

// caller returns the caller identity set by the identity middleware,
// falling back to the raw header for unwrapped setups.
func caller(c *gin.Context) string {
	id := c.GetString("caller_id")
	if id == "" {
		id = c.GetHeader("X-Caller-Id")
	}
	return id
}

// CreateProject registers a new project owned by the caller.
func (h *Handler) CreateProject(c *gin.Context) {
	who := caller(c)
	if who == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not identified"})
		return
	}

	var body createProjectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.svc.CreateProject(c.Request.Context(), &domain.CreateProjectRequest{
		Name:          body.Name,
		Symbol:        body.Symbol,
		Description:   body.Description,
		TotalSupply:   body.TotalSupply,
		TargetFunding: body.TargetFunding,
		Creator:       who,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// GetProject returns a single project.
func (h *Handler) GetProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := h.svc.GetProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// ListProjects returns all projects.
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// FundProject increases a project's current funding.
func (h *Handler) FundProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var body fundProjectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.svc.Fund(c.Request.Context(), id, body.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// LaunchProject performs the one-time launch of a funded project.
func (h *Handler) LaunchProject(c *gin.Context) {
	who := caller(c)
	if who == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not identified"})
		return
	}

	id, ok := projectID(c)
	if !ok {
		return
	}

	var body launchProjectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.svc.Launch(c.Request.Context(), id, who, body.InitialLiquidity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project":  project,
		"token_id": project.TokenID,
		"pool_id":  project.PoolID,
	})
}

// SwapTokens executes a swap on behalf of the caller.
func (h *Handler) SwapTokens(c *gin.Context) {
	who := caller(c)
	if who == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller not identified"})
		return
	}

	var body swapRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	amountOut, err := h.svc.SwapTokens(c.Request.Context(), who,
		body.TokenIn, body.TokenOut, body.AmountIn, body.MinAmountOut)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"amount_out": amountOut})
}

// GetQuote returns the expected output of a swap.
func (h *Handler) GetQuote(c *gin.Context) {
	tokenIn := c.Query("token_in")
	tokenOut := c.Query("token_out")
	amountIn, err := strconv.ParseUint(c.Query("amount_in"), 10, 64)
	if tokenIn == "" || tokenOut == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token_in, token_out and amount_in are required"})
		return
	}

	amountOut, err := h.svc.GetQuote(c.Request.Context(), tokenIn, tokenOut, amountIn)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"amount_out": amountOut})
}

// ListTokens returns the tokens tradable on the exchange.
func (h *Handler) ListTokens(c *gin.Context) {
	tokens, err := h.svc.ListTokens(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}

func projectID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return 0, false
	}
	return id, true
}

// respondError maps domain and exchange errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	var svcErr *swap.ServiceError

	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotCreator):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyLaunched):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrFundingNotMet):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidProject), errors.Is(err, domain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, swap.ErrSlippageExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, swap.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.As(err, &svcErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
