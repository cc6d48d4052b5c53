package schedule

import (
	"fmt"
	"time"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/logger"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

// Strategy identifies which builder produced a team.
type Strategy string

const (
	StrategyGreedy Strategy = "greedy"
	StrategySearch Strategy = "search"
	// StrategySearchFallback marks a team built greedily after the search
	// builder failed to certify one.
	StrategySearchFallback Strategy = "search_fallback_greedy"
)

// Outcome is the result of one successful scheduling run.
type Outcome struct {
	Team     model.Team
	Warnings []Warning
	Strategy Strategy
	// Pool is the number of validated candidates the run started from.
	Pool int
	// Deltas lists the athletes owed a ShiftsCompleted increment, leader
	// first. The caller applies them exactly once per persisted run; the
	// core never mutates the roster.
	Deltas []string
}

// Scheduler composes normalization, ranking and team building for one run.
// It performs no I/O and keeps no state between runs.
type Scheduler struct {
	cfg    BalanceConfig
	greedy *GreedyBuilder
	search *SearchBuilder
	log    logger.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger routes scheduling logs through l.
func WithLogger(l logger.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSearchFirst makes the scheduler try the exhaustive builder before
// falling back to the greedy pass. budget <= 0 keeps the default node
// budget.
func WithSearchFirst(budget int) Option {
	return func(s *Scheduler) {
		s.search = &SearchBuilder{Budget: budget}
	}
}

// NewScheduler validates cfg and returns a ready scheduler.
func NewScheduler(cfg BalanceConfig, opts ...Option) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("balance config: %w", err)
	}
	s := &Scheduler{cfg: cfg, log: logger.Nop{}}
	for _, o := range opts {
		o(s)
	}
	s.greedy = NewGreedyBuilder(s.log)
	if s.search != nil {
		s.search.log = s.log
	}
	return s, nil
}

// ScheduleTeam runs normalize, rank and build over the given snapshots.
// Warnings accompany both success and failure; on failure the returned error
// wraps one of the typed build failures.
func (s *Scheduler) ScheduleTeam(roster model.Roster, submissions []model.AvailabilitySubmission, targetDate time.Time) (Outcome, error) {
	candidates, warnings := Normalize(roster, submissions, targetDate)
	ranked := Rank(candidates)
	s.log.Debugw("candidates ranked", map[string]any{
		"date":       model.DateKey(targetDate),
		"candidates": len(ranked),
		"warnings":   len(warnings),
	})

	strategy := StrategyGreedy
	var team model.Team
	var err error
	if s.search != nil {
		strategy = StrategySearch
		team, err = s.search.BuildStrict(ranked, s.cfg)
		if err != nil {
			s.log.Warnf("search build failed, falling back to greedy: %v", err)
			strategy = StrategySearchFallback
			team, err = s.greedy.Build(ranked, s.cfg)
		}
	} else {
		team, err = s.greedy.Build(ranked, s.cfg)
	}
	if err != nil {
		return Outcome{Warnings: warnings, Pool: len(ranked)}, err
	}
	return Outcome{Team: team, Warnings: warnings, Strategy: strategy, Pool: len(ranked), Deltas: team.IDs()}, nil
}

// Ranked exposes the ranked candidate view without building a team, used by
// the verbose CLI dump and the pre-flight check.
func (s *Scheduler) Ranked(roster model.Roster, submissions []model.AvailabilitySubmission, targetDate time.Time) ([]model.Candidate, []Warning) {
	candidates, warnings := Normalize(roster, submissions, targetDate)
	return Rank(candidates), warnings
}

// Config returns the balance configuration the scheduler was built with.
func (s *Scheduler) Config() BalanceConfig { return s.cfg }
