package metrics

import coremetrics "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/metrics"

// MultiSink fans scheduling runs out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordScheduleResult forwards the run to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordScheduleResult(res coremetrics.ScheduleResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordScheduleResult(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordWarnings forwards warning counts when supported by the sink.
func (m *MultiSink) RecordWarnings(counts map[string]int) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.WarningRecorder); ok {
			if err := rec.RecordWarnings(counts); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordFairness forwards the fairness spread when supported by the sink.
func (m *MultiSink) RecordFairness(stddev float64) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.FairnessRecorder); ok {
			if err := rec.RecordFairness(stddev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordNotifyFailure forwards the failure count when supported by the sink.
func (m *MultiSink) RecordNotifyFailure() error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.NotifyFailureRecorder); ok {
			if err := rec.RecordNotifyFailure(); err != nil {
				return err
			}
		}
	}
	return nil
}
