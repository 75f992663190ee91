package domain

import "time"

// Project represents a single launchpad project: a crowdfunding
// campaign for a prospective token launch. It is storage-agnostic and
// shared across repository, service and HTTP layers.
type Project struct {
	ID             uint64     `json:"id"`
	Name           string     `json:"name"`
	Symbol         string     `json:"symbol"`
	Description    string     `json:"description"`
	TotalSupply    uint64     `json:"total_supply"`
	TargetFunding  uint64     `json:"target_funding"`
	CurrentFunding uint64     `json:"current_funding"`
	Creator        string     `json:"creator"`
	TokenID        *string    `json:"token_id,omitempty"`
	PoolID         *uint64    `json:"pool_id,omitempty"`
	IsLaunched     bool       `json:"is_launched"`
	LaunchedAt     *time.Time `json:"launched_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Project status values. A project in flight between validation and
// commit of a launch has no persisted status of its own: launching is
// transient and only ever observable as funding.
const (
	StatusFunding  = "funding"
	StatusLaunched = "launched"
)

// Status derives the lifecycle status from the launch flag.
func (p *Project) Status() string {
	if p.IsLaunched {
		return StatusLaunched
	}
	return StatusFunding
}

// Funded reports whether the funding target has been reached.
func (p *Project) Funded() bool {
	return p.CurrentFunding >= p.TargetFunding
}

// CreateProjectRequest carries the immutable fields of a new project.
type CreateProjectRequest struct {
	Name          string
	Symbol        string
	Description   string
	TotalSupply   uint64
	TargetFunding uint64
	Creator       string
}
