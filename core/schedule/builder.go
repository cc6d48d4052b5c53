package schedule

import (
	"fmt"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/logger"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

// Builder assembles one team from fairness-ranked candidates.
type Builder interface {
	Build(ranked []model.Candidate, cfg BalanceConfig) (model.Team, error)
}

// GreedyBuilder fills the team in a single pass over the ranked sequence and
// repairs the varsity balance with bounded swaps. No backtracking.
type GreedyBuilder struct {
	log logger.Logger
}

// NewGreedyBuilder returns a builder logging through log. nil disables
// logging.
func NewGreedyBuilder(log logger.Logger) *GreedyBuilder {
	if log == nil {
		log = logger.Nop{}
	}
	return &GreedyBuilder{log: log}
}

// Build selects the first leader-qualified candidate in fairness order as
// leader, fills the member slots in the same order skipping only the chosen
// leader, then enforces the varsity minimum.
func (b *GreedyBuilder) Build(ranked []model.Candidate, cfg BalanceConfig) (model.Team, error) {
	if len(ranked) < cfg.TeamSize {
		return model.Team{}, fmt.Errorf("%w: %d of %d needed",
			ErrInsufficientCandidates, len(ranked), cfg.TeamSize)
	}

	leaderIdx := -1
	for i, c := range ranked {
		if c.LeaderQualified {
			leaderIdx = i
			break
		}
	}
	if leaderIdx == -1 {
		return model.Team{}, fmt.Errorf("%w: %d candidates",
			ErrNoEligibleLeader, len(ranked))
	}

	team := model.Team{Leader: ranked[leaderIdx]}
	for i, c := range ranked {
		if i == leaderIdx {
			continue
		}
		if len(team.Members) == cfg.TeamSize-1 {
			break
		}
		team.Members = append(team.Members, c)
	}

	if team.VarsityCount() >= cfg.MinimumVarsity {
		return team, nil
	}
	return b.repair(team, ranked, cfg)
}

// repair substitutes the worst-fairness novice member slots with the next
// unassigned varsity candidates in rank order, one swap per missing varsity
// slot. The leader slot is never swapped.
func (b *GreedyBuilder) repair(team model.Team, ranked []model.Candidate, cfg BalanceConfig) (model.Team, error) {
	deficit := cfg.MinimumVarsity - team.VarsityCount()

	var pool []model.Candidate
	for _, c := range ranked {
		if c.Experience == model.Varsity && !team.Contains(c.ID) {
			pool = append(pool, c)
		}
	}
	if len(pool) < deficit {
		return model.Team{}, fmt.Errorf("%w: need %d more varsity, %d available",
			ErrBalanceUnsatisfiable, deficit, len(pool))
	}

	swaps := 0
	for deficit > 0 {
		// Members are in rank order, so the last novice is the one with
		// the worst fairness standing.
		idx := -1
		for i := len(team.Members) - 1; i >= 0; i-- {
			if team.Members[i].Experience == model.Novice {
				idx = i
				break
			}
		}
		if idx == -1 {
			return model.Team{}, fmt.Errorf("%w: no novice slot left to swap",
				ErrBalanceUnsatisfiable)
		}
		out := team.Members[idx]
		in := pool[0]
		pool = pool[1:]
		team.Members[idx] = in
		deficit--
		swaps++
		b.log.Debugf("balance repair: %s out, %s in", out.ID, in.ID)
	}
	b.log.Debugw("balance repaired", map[string]any{
		"swaps": swaps, "varsity": team.VarsityCount(),
	})
	return team, nil
}
