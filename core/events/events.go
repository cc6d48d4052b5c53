// Package events defines the scheduling events emitted on the event bus.
package events

import "time"

// Stage marks where in a scheduling run an event was emitted.
type Stage string

const (
	StageNormalized Stage = "normalized"
	StageBuilt      Stage = "built"
	StageFallback   Stage = "fallback"
	StageApplied    Stage = "applied"
	StageFailed     Stage = "failed"
)

// ScheduleEvent describes the progress of one scheduling run. Strategy names
// the builder that produced (or attempted) the team.
type ScheduleEvent struct {
	RunID    string
	Date     time.Time
	Stage    Stage
	Strategy string
	Warnings int
	Err      error
}
