package scenarios

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/metrics"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/schedule"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/metrics"
)

func RunScenario(t *testing.T, sc *Scenario) {
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}

	date, err := time.Parse("2006-01-02", sc.Date)
	if err != nil {
		t.Fatalf("date: %v", err)
	}

	entries := make([]model.RosterEntry, len(sc.Roster))
	for i, a := range sc.Roster {
		if entries[i], err = a.ToModel(); err != nil {
			t.Fatalf("roster: %v", err)
		}
	}
	submissions := make([]model.AvailabilitySubmission, len(sc.Submissions))
	for i, s := range sc.Submissions {
		if submissions[i], err = s.ToModel(date, i); err != nil {
			t.Fatalf("submissions: %v", err)
		}
	}

	opts := []schedule.Option{}
	if sc.OptimalFirst {
		opts = append(opts, schedule.WithSearchFirst(0))
	}
	sched, err := schedule.NewScheduler(schedule.BalanceConfig{
		TeamSize:       sc.TeamSize,
		MinimumVarsity: sc.MinimumVarsity,
	}, opts...)
	if err != nil {
		t.Fatalf("scheduler: %v", err)
	}

	out, err := sched.ScheduleTeam(model.NewRoster(entries), submissions, date)
	result := schedule.FailureReason(err)
	if err == nil {
		result = "scheduled"
	}
	_ = sink.RecordScheduleResult(coremetrics.ScheduleResult{
		RunID:         sc.Name,
		Date:          sc.Date,
		Result:        result,
		Strategy:      string(out.Strategy),
		VarsityCount:  out.Team.VarsityCount(),
		CandidatePool: out.Pool,
		WarningCount:  len(out.Warnings),
		Time:          time.Now(),
	})

	if sc.Expected.Error != "" {
		if err == nil {
			t.Fatalf("scenario %s expected failure %s, got team %v",
				sc.Name, sc.Expected.Error, out.Team.Names())
		}
		if got := schedule.FailureReason(err); got != sc.Expected.Error {
			t.Errorf("scenario %s expected failure %s, got %s", sc.Name, sc.Expected.Error, got)
		}
	} else {
		if err != nil {
			t.Fatalf("scenario %s: %v", sc.Name, err)
		}
		if out.Team.Leader.Name != sc.Expected.Leader {
			t.Errorf("scenario %s expected leader %s, got %s",
				sc.Name, sc.Expected.Leader, out.Team.Leader.Name)
		}
		if got := memberNames(out.Team); !equalStrings(got, sc.Expected.Members) {
			t.Errorf("scenario %s expected members %v, got %v", sc.Name, sc.Expected.Members, got)
		}
		if sc.Expected.Strategy != "" && string(out.Strategy) != sc.Expected.Strategy {
			t.Errorf("scenario %s expected strategy %s, got %s",
				sc.Name, sc.Expected.Strategy, out.Strategy)
		}
	}
	if len(out.Warnings) != sc.Expected.Warnings {
		t.Errorf("scenario %s expected %d warnings, got %d: %v",
			sc.Name, sc.Expected.Warnings, len(out.Warnings), out.Warnings)
	}
}

func memberNames(team model.Team) []string {
	names := make([]string, len(team.Members))
	for i, m := range team.Members {
		names[i] = m.Name
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
