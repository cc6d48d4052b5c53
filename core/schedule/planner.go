package schedule

import (
	"time"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/logger"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

// Planner schedules a run of shift dates in order, carrying fairness deltas
// forward so an athlete assigned on one date ranks lower on the next.
type Planner struct {
	sched *Scheduler
	log   logger.Logger
}

// NewPlanner returns a planner built on sched. nil log disables logging.
func NewPlanner(sched *Scheduler, log logger.Logger) *Planner {
	if log == nil {
		log = logger.Nop{}
	}
	return &Planner{sched: sched, log: log}
}

// PlanEntry is the outcome for a single date in a plan.
type PlanEntry struct {
	Date     time.Time
	Team     model.Team
	Strategy Strategy
	Warnings []Warning
	Err      error
}

// Plan is an ordered set of per-date outcomes.
type Plan struct {
	Entries []PlanEntry
}

// Scheduled returns the entries that produced a team.
func (p Plan) Scheduled() []PlanEntry {
	out := make([]PlanEntry, 0, len(p.Entries))
	for _, e := range p.Entries {
		if e.Err == nil {
			out = append(out, e)
		}
	}
	return out
}

// GeneratePlan schedules each date against a working copy of the roster. A
// failed date is recorded and does not abort later dates. The input roster
// is never mutated.
func (p *Planner) GeneratePlan(roster model.Roster, submissions []model.AvailabilitySubmission, dates []time.Time) Plan {
	working := roster.Clone()
	plan := Plan{Entries: make([]PlanEntry, 0, len(dates))}
	for _, date := range dates {
		out, err := p.sched.ScheduleTeam(working, submissions, date)
		entry := PlanEntry{Date: date, Warnings: out.Warnings, Err: err}
		if err == nil {
			entry.Team = out.Team
			entry.Strategy = out.Strategy
			working.ApplyDeltas(out.Deltas)
		} else {
			p.log.Warnf("plan %s: %v", model.DateKey(date), err)
		}
		plan.Entries = append(plan.Entries, entry)
	}
	return plan
}
