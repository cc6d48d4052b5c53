package metrics

import (
	"testing"

	coremetrics "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/metrics"
)

type recordSink struct {
	runs     int
	warnings int
}

func (r *recordSink) RecordScheduleResult(coremetrics.ScheduleResult) error {
	r.runs++
	return nil
}

func (r *recordSink) RecordWarnings(map[string]int) error {
	r.warnings++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2, coremetrics.NopSink{})
	if err := m.RecordScheduleResult(coremetrics.ScheduleResult{}); err != nil {
		t.Fatalf("record result: %v", err)
	}
	if err := m.RecordWarnings(map[string]int{"unknown_athlete": 1}); err != nil {
		t.Fatalf("record warnings: %v", err)
	}
	if s1.runs != 1 || s2.runs != 1 || s1.warnings != 1 || s2.warnings != 1 {
		t.Fatalf("results not forwarded to all sinks")
	}
}

func TestFactory_NoSinksYieldsNop(t *testing.T) {
	sink, err := NewSinkFromConfig(coremetrics.Config{})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", sink)
	}
}
