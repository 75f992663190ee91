package http

// createProjectRequest is the body of POST /projects.
type createProjectRequest struct {
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Description   string `json:"description,omitempty"`
	TotalSupply   uint64 `json:"total_supply"`
	TargetFunding uint64 `json:"target_funding"`
}

// fundProjectRequest is the body of POST /projects/:id/fund.
type fundProjectRequest struct {
	Amount uint64 `json:"amount"`
}

// launchProjectRequest is the body of POST /projects/:id/launch.
type launchProjectRequest struct {
	InitialLiquidity uint64 `json:"initial_liquidity"`
}

// swapRequest is the body of POST /swap.
type swapRequest struct {
	TokenIn      string `json:"token_in"`
	TokenOut     string `json:"token_out"`
	AmountIn     uint64 `json:"amount_in"`
	MinAmountOut uint64 `json:"min_amount_out"`
}
