package schedule

import "fmt"

const (
	DefaultTeamSize = 6
	// DefaultMinimumVarsity keeps at most three novices on a default-size
	// team.
	DefaultMinimumVarsity = 3
)

// BalanceConfig bounds team composition for one scheduling run.
type BalanceConfig struct {
	TeamSize       int `json:"team_size"`
	MinimumVarsity int `json:"minimum_varsity"`
}

// SetDefaults fills unset fields.
func (c *BalanceConfig) SetDefaults() {
	if c.TeamSize == 0 {
		c.TeamSize = DefaultTeamSize
	}
	if c.MinimumVarsity == 0 {
		c.MinimumVarsity = DefaultMinimumVarsity
	}
}

// Validate checks the configured bounds.
func (c BalanceConfig) Validate() error {
	if c.TeamSize < 1 {
		return fmt.Errorf("team_size must be at least 1, got %d", c.TeamSize)
	}
	if c.MinimumVarsity < 0 || c.MinimumVarsity > c.TeamSize {
		return fmt.Errorf("minimum_varsity must be between 0 and team_size, got %d", c.MinimumVarsity)
	}
	return nil
}
