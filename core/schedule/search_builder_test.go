package schedule

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
)

func TestSearchFindsFeasibleTeamGreedyCannot(t *testing.T) {
	// The greedy repair never swaps the leader slot. With a novice leader
	// ranked first and every varsity athlete leader-qualified, only a
	// different leader choice satisfies the minimum; the search finds it.
	ranked := Rank([]model.Candidate{
		newCand("Ln", model.Novice, true, 0),
		newCand("Lv1", model.Varsity, true, 1),
		newCand("Lv2", model.Varsity, true, 2),
	})
	cfg := BalanceConfig{TeamSize: 2, MinimumVarsity: 2}

	if _, err := NewGreedyBuilder(nil).Build(ranked, cfg); !errors.Is(err, ErrBalanceUnsatisfiable) {
		t.Fatalf("expected greedy to fail on balance, got %v", err)
	}

	team, err := NewSearchBuilder(nil).BuildStrict(ranked, cfg)
	if err != nil {
		t.Fatalf("unexpected search error: %v", err)
	}
	if team.Leader.Name != "Lv1" || !team.Contains("lv2") {
		t.Fatalf("expected the all-varsity pair, got %v", team.Names())
	}
}

func TestSearchMinimizesTotalShifts(t *testing.T) {
	ranked := Rank(exampleRoster())
	cfg := BalanceConfig{TeamSize: 6, MinimumVarsity: 2}
	team, err := NewSearchBuilder(nil).BuildStrict(ranked, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := team.Leader.ShiftsCompleted
	for _, m := range team.Members {
		total += m.ShiftsCompleted
	}
	// The cheapest six (A,B,L2,C,D,L1 = 4 shifts) carry only one varsity;
	// the optimum trades D for E: 0+0+0+1+2+3 = 6.
	if total != 6 {
		t.Fatalf("expected optimal total of 6 shifts, got %d (%v)", total, team.Names())
	}
	if err := team.Validate(); err != nil {
		t.Fatalf("invalid team: %v", err)
	}
	if team.VarsityCount() < 2 {
		t.Fatalf("balance not met: %v", team.Names())
	}
}

func TestSearchInfeasibleWithoutVarsity(t *testing.T) {
	ranked := Rank([]model.Candidate{
		newCand("L", model.Novice, true, 0),
		newCand("A", model.Novice, false, 1),
		newCand("B", model.Novice, false, 2),
	})
	_, err := NewSearchBuilder(nil).BuildStrict(ranked, BalanceConfig{TeamSize: 3, MinimumVarsity: 1})
	if !errors.Is(err, ErrSearchInfeasible) {
		t.Fatalf("expected ErrSearchInfeasible, got %v", err)
	}
}

func TestSearchBudgetExhausted(t *testing.T) {
	b := NewSearchBuilder(nil)
	b.Budget = 1
	ranked := Rank(exampleRoster())
	_, err := b.BuildStrict(ranked, BalanceConfig{TeamSize: 6, MinimumVarsity: 2})
	if !errors.Is(err, ErrSearchInfeasible) {
		t.Fatalf("expected budget exhaustion to report infeasible, got %v", err)
	}
}

func TestSearchInsufficientCandidates(t *testing.T) {
	ranked := Rank(exampleRoster()[:3])
	_, err := NewSearchBuilder(nil).BuildStrict(ranked, BalanceConfig{TeamSize: 6, MinimumVarsity: 2})
	if !errors.Is(err, ErrInsufficientCandidates) {
		t.Fatalf("expected ErrInsufficientCandidates, got %v", err)
	}
}

func TestSearchDeterministic(t *testing.T) {
	ranked := Rank(exampleRoster())
	cfg := BalanceConfig{TeamSize: 6, MinimumVarsity: 2}
	first, err := NewSearchBuilder(nil).BuildStrict(ranked, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewSearchBuilder(nil).BuildStrict(ranked, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("search result not deterministic")
	}
}
