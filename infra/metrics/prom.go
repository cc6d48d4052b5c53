package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/metrics"
)

// PromSink records scheduling runs in Prometheus metrics.
type PromSink struct {
	runs           *prometheus.CounterVec
	warnings       *prometheus.CounterVec
	notifyFailures prometheus.Counter
	duration       prometheus.Histogram
	varsity        prometheus.Gauge
	pool           prometheus.Gauge
	stddev         prometheus.Gauge
}

// NewPromSink registers scheduling metrics on the default Prometheus
// registerer. The /metrics server is started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_runs_total",
		Help: "Total number of scheduling runs by result and strategy",
	}, []string{"result", "strategy"})
	warnings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "validation_warnings_total",
		Help: "Total number of submission rows discarded during normalization",
	}, []string{"kind"})
	notifyFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notify_failures_total",
		Help: "Total number of failed team announcements",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_duration_seconds",
		Help:    "End-to-end duration of one scheduling run",
		Buckets: prometheus.DefBuckets,
	})
	varsity := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "team_varsity_count",
		Help: "Varsity athletes on the most recently scheduled team",
	})
	pool := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "candidate_pool_size",
		Help: "Validated candidates in the most recent run",
	})
	stddev := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_shifts_stddev",
		Help: "Standard deviation of completed shifts across active athletes",
	})

	s := &PromSink{
		runs:           runs,
		warnings:       warnings,
		notifyFailures: notifyFailures,
		duration:       duration,
		varsity:        varsity,
		pool:           pool,
		stddev:         stddev,
	}
	for _, c := range []prometheus.Collector{runs, warnings, notifyFailures, duration, varsity, pool, stddev} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	return s, nil
}

// RecordScheduleResult increments the run counter and updates the gauges.
func (s *PromSink) RecordScheduleResult(res coremetrics.ScheduleResult) error {
	s.runs.WithLabelValues(res.Result, res.Strategy).Inc()
	s.duration.Observe(res.Duration.Seconds())
	s.pool.Set(float64(res.CandidatePool))
	if res.Result == "scheduled" || res.Result == "dry_run" {
		s.varsity.Set(float64(res.VarsityCount))
	}
	return nil
}

// RecordWarnings adds the per-kind discard counts.
func (s *PromSink) RecordWarnings(counts map[string]int) error {
	for kind, n := range counts {
		s.warnings.WithLabelValues(kind).Add(float64(n))
	}
	return nil
}

// RecordFairness sets the roster fairness spread gauge.
func (s *PromSink) RecordFairness(stddev float64) error {
	s.stddev.Set(stddev)
	return nil
}

// RecordNotifyFailure counts one failed announcement.
func (s *PromSink) RecordNotifyFailure() error {
	s.notifyFailures.Inc()
	return nil
}
