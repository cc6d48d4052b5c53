package metrics

import "time"

// ScheduleResult represents one scheduling run to be recorded. Result holds
// "scheduled", "dry_run" or the failure reason tag.
type ScheduleResult struct {
	RunID         string
	Date          string
	Result        string
	Strategy      string
	Duration      time.Duration
	VarsityCount  int
	CandidatePool int
	WarningCount  int
	Time          time.Time
}

// MetricsSink records scheduling runs for observability purposes.
type MetricsSink interface {
	RecordScheduleResult(res ScheduleResult) error
}

// WarningRecorder is implemented by sinks able to record per-kind validation
// warning counts.
type WarningRecorder interface {
	RecordWarnings(counts map[string]int) error
}

// FairnessRecorder is implemented by sinks able to record the roster's
// completed-shift spread after an applied run.
type FairnessRecorder interface {
	RecordFairness(stddev float64) error
}

// NotifyFailureRecorder counts failed team announcements.
type NotifyFailureRecorder interface {
	RecordNotifyFailure() error
}

// NopSink implements MetricsSink and every capability with no-op methods.
type NopSink struct{}

func (NopSink) RecordScheduleResult(ScheduleResult) error { return nil }
func (NopSink) RecordWarnings(map[string]int) error       { return nil }
func (NopSink) RecordFairness(float64) error              { return nil }
func (NopSink) RecordNotifyFailure() error                { return nil }
