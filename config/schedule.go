package config

import (
	"fmt"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/schedule"
)

// ScheduleConfig carries the per-run balance settings and the builder
// selection.
type ScheduleConfig struct {
	TeamSize       int  `json:"team_size"`
	MinimumVarsity int  `json:"minimum_varsity"`
	OptimalFirst   bool `json:"optimal_first"`
	// SearchBudget caps partial assignments explored by the exhaustive
	// builder; 0 keeps the built-in default.
	SearchBudget int `json:"search_budget"`
}

// SetDefaults fills unset fields.
func (c *ScheduleConfig) SetDefaults() {
	b := c.Balance()
	b.SetDefaults()
	c.TeamSize = b.TeamSize
	c.MinimumVarsity = b.MinimumVarsity
}

// Validate checks the configured bounds.
func (c ScheduleConfig) Validate() error {
	if err := c.Balance().Validate(); err != nil {
		return err
	}
	if c.SearchBudget < 0 {
		return fmt.Errorf("search_budget must not be negative, got %d", c.SearchBudget)
	}
	return nil
}

// Balance returns the core balance configuration.
func (c ScheduleConfig) Balance() schedule.BalanceConfig {
	return schedule.BalanceConfig{TeamSize: c.TeamSize, MinimumVarsity: c.MinimumVarsity}
}
