// Package history defines the run history record and its store contract.
// Implementations live in infra/history.
package history

import (
	"context"
	"time"
)

// Run outcomes as recorded in history. Failed runs carry the failure reason
// tag from the schedule package.
const (
	OutcomeScheduled = "scheduled"
	OutcomeDryRun    = "dry_run"
)

// Record captures one scheduling run and its result.
type Record struct {
	RunID        string    `json:"run_id"`
	Date         string    `json:"date"` // calendar day, YYYY-MM-DD
	LeaderID     string    `json:"leader_id,omitempty"`
	MemberIDs    []string  `json:"member_ids,omitempty"`
	VarsityCount int       `json:"varsity_count,omitempty"`
	Strategy     string    `json:"strategy,omitempty"`
	WarningCount int       `json:"warning_count"`
	Outcome      string    `json:"outcome"`
	CreatedAt    time.Time `json:"created_at"`
}

// Query defines filters for retrieving records. Zero-value fields match
// everything; Limit <= 0 means no limit.
type Query struct {
	Since   time.Time
	Until   time.Time
	Date    string
	Outcome string
	Limit   int
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}
