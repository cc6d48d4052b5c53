package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/events"
	coremetrics "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/metrics"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/model"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/notify"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/schedule"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/schedule/history"
	infrasheets "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/sheets"
)

const flushTimeout = 2 * time.Second

// RunResult carries one orchestrated scheduling run.
type RunResult struct {
	RunID   string
	Date    time.Time
	Outcome schedule.Outcome
	Report  schedule.Report
	Applied bool
}

// RunOnce fetches the snapshots, schedules one team and, unless dryRun,
// applies the writeback, history record and announcement. Collaborator
// failures after a successful writeback degrade to logs and counters.
func (s *Service) RunOnce(ctx context.Context, date time.Time, dryRun bool) (*RunResult, error) {
	runID := uuid.NewString()
	start := time.Now()

	roster, submissions, err := s.fetch(ctx, date)
	if err != nil {
		s.mon.CaptureException(err, map[string]string{"run_id": runID, "stage": "fetch"})
		return nil, err
	}

	out, err := s.sched.ScheduleTeam(roster, submissions, date)
	s.bus.Publish(events.ScheduleEvent{RunID: runID, Date: date, Stage: events.StageNormalized, Warnings: len(out.Warnings)})
	s.recordWarnings(out.Warnings)
	if err != nil {
		s.bus.Publish(events.ScheduleEvent{RunID: runID, Date: date, Stage: events.StageFailed, Err: err})
		s.record(runID, date, out, schedule.FailureReason(err), start)
		s.appendHistory(ctx, history.Record{
			RunID:        runID,
			Date:         model.DateKey(date),
			WarningCount: len(out.Warnings),
			Outcome:      schedule.FailureReason(err),
			CreatedAt:    time.Now(),
		})
		return nil, fmt.Errorf("schedule %s: %w", model.DateKey(date), err)
	}
	s.bus.Publish(events.ScheduleEvent{RunID: runID, Date: date, Stage: events.StageBuilt, Strategy: string(out.Strategy)})
	if out.Strategy == schedule.StrategySearchFallback {
		s.bus.Publish(events.ScheduleEvent{RunID: runID, Date: date, Stage: events.StageFallback, Strategy: string(out.Strategy)})
	}

	res := &RunResult{RunID: runID, Date: date, Outcome: out}
	outcomeTag := history.OutcomeDryRun
	if !dryRun {
		if err := s.apply(ctx, runID, date, out); err != nil {
			s.mon.CaptureException(err, map[string]string{"run_id": runID, "stage": "writeback"})
			s.record(runID, date, out, "writeback_failed", start)
			return nil, err
		}
		res.Applied = true
		outcomeTag = history.OutcomeScheduled
		s.announce(runID, date, out)
		s.bus.Publish(events.ScheduleEvent{RunID: runID, Date: date, Stage: events.StageApplied, Strategy: string(out.Strategy)})
	}

	s.appendHistory(ctx, history.Record{
		RunID:        runID,
		Date:         model.DateKey(date),
		LeaderID:     out.Team.Leader.ID,
		MemberIDs:    memberIDs(out.Team),
		VarsityCount: out.Team.VarsityCount(),
		Strategy:     string(out.Strategy),
		WarningCount: len(out.Warnings),
		Outcome:      outcomeTag,
		CreatedAt:    time.Now(),
	})
	s.record(runID, date, out, outcomeTag, start)

	res.Report = schedule.Fairness(roster.Clone().ApplyDeltas(out.Deltas))
	if rec, ok := s.sink.(coremetrics.FairnessRecorder); ok && res.Applied {
		if err := rec.RecordFairness(res.Report.StdDev); err != nil {
			s.log.Warnf("record fairness: %v", err)
		}
	}
	s.log.Infow("run complete", map[string]any{
		"run_id":   runID,
		"date":     model.DateKey(date),
		"strategy": string(out.Strategy),
		"team":     out.Team.Names(),
		"warnings": len(out.Warnings),
		"dry_run":  dryRun,
	})
	return res, nil
}

func (s *Service) fetch(ctx context.Context, date time.Time) (model.Roster, []model.AvailabilitySubmission, error) {
	entries, err := s.sheets.FetchRoster(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch roster: %w", err)
	}
	submissions, err := s.sheets.FetchSubmissions(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch submissions: %w", err)
	}
	return model.NewRoster(entries), submissions, nil
}

// apply performs the exactly-once writeback for a successful run.
func (s *Service) apply(ctx context.Context, runID string, date time.Time, out schedule.Outcome) error {
	if err := s.sheets.ApplyDeltas(ctx, out.Deltas); err != nil {
		return err
	}
	return s.sheets.AppendAssignment(ctx, infrasheets.Assignment{
		RunID:    runID,
		Date:     model.DateKey(date),
		Leader:   out.Team.Leader.Name,
		Members:  memberNames(out.Team),
		Strategy: string(out.Strategy),
	})
}

// announce publishes the team; failures are logged and counted, never fatal.
func (s *Service) announce(runID string, date time.Time, out schedule.Outcome) {
	payload, err := json.Marshal(notify.TeamAnnouncement{
		RunID:        runID,
		Date:         model.DateKey(date),
		LeaderName:   out.Team.Leader.Name,
		MemberNames:  memberNames(out.Team),
		VarsityCount: out.Team.VarsityCount(),
		Strategy:     string(out.Strategy),
		GeneratedAt:  time.Now(),
	})
	if err != nil {
		s.log.Errorf("marshal announcement: %v", err)
		return
	}
	topic := s.cfg.Notify.TopicPrefix + "/" + model.DateKey(date)
	if err := s.pub.Publish(topic, payload); err != nil {
		s.log.Errorf("announce team: %v", err)
		if rec, ok := s.sink.(coremetrics.NotifyFailureRecorder); ok {
			_ = rec.RecordNotifyFailure()
		}
	}
}

func (s *Service) record(runID string, date time.Time, out schedule.Outcome, result string, start time.Time) {
	err := s.sink.RecordScheduleResult(coremetrics.ScheduleResult{
		RunID:         runID,
		Date:          model.DateKey(date),
		Result:        result,
		Strategy:      string(out.Strategy),
		Duration:      time.Since(start),
		VarsityCount:  out.Team.VarsityCount(),
		CandidatePool: out.Pool,
		WarningCount:  len(out.Warnings),
		Time:          time.Now(),
	})
	if err != nil {
		s.log.Warnf("record run: %v", err)
	}
}

func (s *Service) recordWarnings(warnings []schedule.Warning) {
	if len(warnings) == 0 {
		return
	}
	rec, ok := s.sink.(coremetrics.WarningRecorder)
	if !ok {
		return
	}
	counts := make(map[string]int, len(warnings))
	for kind, n := range schedule.CountByKind(warnings) {
		counts[string(kind)] = n
	}
	if err := rec.RecordWarnings(counts); err != nil {
		s.log.Warnf("record warnings: %v", err)
	}
}

func (s *Service) appendHistory(ctx context.Context, rec history.Record) {
	if s.store == nil {
		return
	}
	if err := s.store.Append(ctx, rec); err != nil {
		s.log.Errorf("append history: %v", err)
	}
}

func memberIDs(t model.Team) []string {
	ids := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.ID)
	}
	return ids
}

func memberNames(t model.Team) []string {
	names := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		names = append(names, m.Name)
	}
	return names
}

// CheckReport is the pre-flight data-quality summary.
type CheckReport struct {
	Candidates   int
	Warnings     []schedule.Warning
	NotResponded []string
}

// Findings reports whether the check found anything worth a non-zero exit.
func (r CheckReport) Findings() int { return len(r.Warnings) + len(r.NotResponded) }

// Check fetches both worksheets and reports duplicates, unknown and
// inactive submitters, and active athletes who have not responded, without
// scheduling anything.
func (s *Service) Check(ctx context.Context, date time.Time) (CheckReport, error) {
	roster, submissions, err := s.fetch(ctx, date)
	if err != nil {
		return CheckReport{}, err
	}
	ranked, warnings := s.sched.Ranked(roster, submissions, date)

	responded := make(map[string]bool, len(submissions))
	for _, sub := range submissions {
		responded[sub.AthleteID] = true
	}
	var silent []string
	for _, e := range roster.ActiveEntries() {
		if !responded[e.ID] {
			silent = append(silent, e.Name)
		}
	}
	sort.Strings(silent)
	return CheckReport{Candidates: len(ranked), Warnings: warnings, NotResponded: silent}, nil
}

// Ranked returns the fairness-ordered candidates for a date, for the
// verbose CLI dump.
func (s *Service) Ranked(ctx context.Context, date time.Time) ([]model.Candidate, []schedule.Warning, error) {
	roster, submissions, err := s.fetch(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	ranked, warnings := s.sched.Ranked(roster, submissions, date)
	return ranked, warnings, nil
}

// PlanRange schedules consecutive dates starting at from, carrying fairness
// deltas forward in memory. Nothing is persisted; ApplyPlan does that.
func (s *Service) PlanRange(ctx context.Context, from time.Time, days int) (schedule.Plan, error) {
	if days < 1 {
		return schedule.Plan{}, fmt.Errorf("plan needs at least one day, got %d", days)
	}
	entries, err := s.sheets.FetchRoster(ctx)
	if err != nil {
		return schedule.Plan{}, fmt.Errorf("fetch roster: %w", err)
	}
	roster := model.NewRoster(entries)

	dates := make([]time.Time, 0, days)
	var submissions []model.AvailabilitySubmission
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		dates = append(dates, date)
		subs, err := s.sheets.FetchSubmissions(ctx, date)
		if err != nil {
			return schedule.Plan{}, fmt.Errorf("fetch submissions for %s: %w", model.DateKey(date), err)
		}
		submissions = append(submissions, subs...)
	}

	planner := schedule.NewPlanner(s.sched, s.log)
	return planner.GeneratePlan(roster, submissions, dates), nil
}

// ApplyPlan persists every scheduled entry of the plan: writeback,
// assignment row and history record per date.
func (s *Service) ApplyPlan(ctx context.Context, plan schedule.Plan) error {
	for _, e := range plan.Scheduled() {
		runID := uuid.NewString()
		out := schedule.Outcome{Team: e.Team, Warnings: e.Warnings, Strategy: e.Strategy, Deltas: e.Team.IDs()}
		if err := s.apply(ctx, runID, e.Date, out); err != nil {
			return fmt.Errorf("apply plan %s: %w", model.DateKey(e.Date), err)
		}
		s.appendHistory(ctx, history.Record{
			RunID:        runID,
			Date:         model.DateKey(e.Date),
			LeaderID:     e.Team.Leader.ID,
			MemberIDs:    memberIDs(e.Team),
			VarsityCount: e.Team.VarsityCount(),
			Strategy:     string(e.Strategy),
			WarningCount: len(e.Warnings),
			Outcome:      history.OutcomeScheduled,
			CreatedAt:    time.Now(),
		})
	}
	return nil
}

// History queries the run history store.
func (s *Service) History(ctx context.Context, q history.Query) ([]history.Record, error) {
	if s.store == nil {
		return nil, fmt.Errorf("history store disabled")
	}
	return s.store.Query(ctx, q)
}

// Fairness fetches the roster and computes the current shift distribution.
func (s *Service) Fairness(ctx context.Context) (schedule.Report, error) {
	entries, err := s.sheets.FetchRoster(ctx)
	if err != nil {
		return schedule.Report{}, fmt.Errorf("fetch roster: %w", err)
	}
	return schedule.Fairness(model.NewRoster(entries)), nil
}
