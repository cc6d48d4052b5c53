package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/metrics"
)

func TestPromSink_RecordScheduleResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	res := coremetrics.ScheduleResult{
		RunID:         "run1",
		Date:          "2026-01-05",
		Result:        "scheduled",
		Strategy:      "greedy",
		Duration:      15 * time.Millisecond,
		VarsityCount:  3,
		CandidatePool: 8,
		WarningCount:  1,
		Time:          time.Now(),
	}
	require.NoError(t, sink.RecordScheduleResult(res))
	require.NoError(t, sink.RecordWarnings(map[string]int{"duplicate_submission": 2}))
	require.NoError(t, sink.RecordFairness(1.5))
	require.NoError(t, sink.RecordNotifyFailure())

	expected := `
		# HELP schedule_runs_total Total number of scheduling runs by result and strategy
		# TYPE schedule_runs_total counter
		schedule_runs_total{result="scheduled",strategy="greedy"} 1
	`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "schedule_runs_total"))

	expected = `
		# HELP validation_warnings_total Total number of submission rows discarded during normalization
		# TYPE validation_warnings_total counter
		validation_warnings_total{kind="duplicate_submission"} 2
	`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "validation_warnings_total"))

	require.Equal(t, 3.0, testutil.ToFloat64(sink.varsity))
	require.Equal(t, 8.0, testutil.ToFloat64(sink.pool))
	require.Equal(t, 1.5, testutil.ToFloat64(sink.stddev))
	require.Equal(t, 1.0, testutil.ToFloat64(sink.notifyFailures))
}

func TestPromSink_FailedRunLeavesVarsityGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordScheduleResult(coremetrics.ScheduleResult{
		Result: "scheduled", Strategy: "greedy", VarsityCount: 4,
	}))
	require.NoError(t, sink.RecordScheduleResult(coremetrics.ScheduleResult{
		Result: "no_eligible_leader", Strategy: "greedy",
	}))
	require.Equal(t, 4.0, testutil.ToFloat64(sink.varsity))
}
