package schedule

import (
	"fmt"
	"math"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/logger"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

// DefaultSearchBudget caps how many partial assignments the search builder
// explores before giving up on certifying an optimal team.
const DefaultSearchBudget = 200000

// SearchBuilder assembles the feasible team with the lowest total completed
// shifts, exploring member combinations with branch-and-bound pruning. When
// the budget runs out it reports infeasibility instead of returning an
// uncertified team; callers fall back to the greedy builder.
type SearchBuilder struct {
	Budget int // explored partial assignments, DefaultSearchBudget when <= 0
	log    logger.Logger
}

// NewSearchBuilder returns a search builder logging through log. nil
// disables logging.
func NewSearchBuilder(log logger.Logger) *SearchBuilder {
	if log == nil {
		log = logger.Nop{}
	}
	return &SearchBuilder{log: log}
}

// BuildStrict returns the minimum-total-shifts team satisfying the leader
// and varsity constraints, or ErrSearchInfeasible when no combination
// qualifies or the node budget is exhausted. Ties resolve to the
// lexicographically earliest combination in rank order, so the result is
// deterministic.
func (s *SearchBuilder) BuildStrict(ranked []model.Candidate, cfg BalanceConfig) (model.Team, error) {
	n := len(ranked)
	if n < cfg.TeamSize {
		return model.Team{}, fmt.Errorf("%w: %d of %d needed",
			ErrInsufficientCandidates, n, cfg.TeamSize)
	}

	// Suffix counts allow pruning branches that can no longer reach a
	// leader or the varsity minimum; prefix sums bound the cheapest
	// possible completion of a branch.
	leadersFrom := make([]int, n+1)
	varsityFrom := make([]int, n+1)
	prefix := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		leadersFrom[i] = leadersFrom[i+1]
		varsityFrom[i] = varsityFrom[i+1]
		if ranked[i].LeaderQualified {
			leadersFrom[i]++
		}
		if ranked[i].Experience == model.Varsity {
			varsityFrom[i]++
		}
	}
	for i, c := range ranked {
		prefix[i+1] = prefix[i] + c.ShiftsCompleted
	}

	budget := s.Budget
	if budget <= 0 {
		budget = DefaultSearchBudget
	}
	log := s.log
	if log == nil {
		log = logger.Nop{}
	}

	var (
		best      []int
		bestSum   = math.MaxInt
		cur       = make([]int, 0, cfg.TeamSize)
		nodes     int
		exhausted bool
	)

	var walk func(start, sum, varsity int, hasLeader bool)
	walk = func(start, sum, varsity int, hasLeader bool) {
		nodes++
		if nodes > budget {
			exhausted = true
			return
		}
		if len(cur) == cfg.TeamSize {
			if hasLeader && varsity >= cfg.MinimumVarsity && sum < bestSum {
				best = append(best[:0], cur...)
				bestSum = sum
			}
			return
		}
		need := cfg.TeamSize - len(cur)
		for i := start; i+need <= n; i++ {
			c := ranked[i]
			// Cheapest completion takes the next candidates in rank
			// order; the bound grows with i, so break rather than skip.
			lower := sum + c.ShiftsCompleted + prefix[i+need] - prefix[i+1]
			if lower >= bestSum {
				break
			}
			nextLeader := hasLeader || c.LeaderQualified
			if !nextLeader && leadersFrom[i+1] == 0 {
				continue
			}
			nextVarsity := varsity
			if c.Experience == model.Varsity {
				nextVarsity++
			}
			if nextVarsity+varsityFrom[i+1] < cfg.MinimumVarsity {
				continue
			}
			cur = append(cur, i)
			walk(i+1, sum+c.ShiftsCompleted, nextVarsity, nextLeader)
			cur = cur[:len(cur)-1]
			if exhausted {
				return
			}
		}
	}
	walk(0, 0, 0, false)

	if exhausted {
		return model.Team{}, fmt.Errorf("%w: node budget %d exhausted",
			ErrSearchInfeasible, budget)
	}
	if best == nil {
		return model.Team{}, fmt.Errorf("%w: no combination meets leader and balance constraints",
			ErrSearchInfeasible)
	}

	var team model.Team
	leaderSet := false
	for _, idx := range best {
		c := ranked[idx]
		if !leaderSet && c.LeaderQualified {
			team.Leader = c
			leaderSet = true
			continue
		}
		team.Members = append(team.Members, c)
	}
	log.Debugw("search build", map[string]any{
		"nodes": nodes, "total_shifts": bestSum,
	})
	return team, nil
}
