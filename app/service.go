// Package app wires the scheduling core to its collaborators: the sheets
// backend, history store, metrics sinks, notifier, monitor and event bus.
package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/config"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/events"
	coremetrics "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/metrics"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/monitoring"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/notify"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/schedule"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/schedule/history"
	infrahistory "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/history"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/logger"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/metrics"
	inframonitoring "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/monitoring"
	infranotify "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/notify"
	infrasheets "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/sheets"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/internal/eventbus"
)

// Service composes one configured scheduler with its collaborators. The
// core stays pure; every side effect of a run happens here.
type Service struct {
	cfg    *config.Config
	log    logger.Logger
	sheets *infrasheets.Client
	sched  *schedule.Scheduler
	sink   coremetrics.MetricsSink
	store  history.Store
	pub    notify.Publisher
	mon    monitoring.Monitor
	bus    *eventbus.Bus[events.ScheduleEvent]
}

// Option overrides a collaborator, used by tests and the mock-backed
// integration setup.
type Option func(*Service)

// WithSheetsClient replaces the spreadsheet client.
func WithSheetsClient(c *infrasheets.Client) Option {
	return func(s *Service) { s.sheets = c }
}

// WithMetricsSink replaces the metrics sink.
func WithMetricsSink(sink coremetrics.MetricsSink) Option {
	return func(s *Service) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithPublisher replaces the announcement publisher.
func WithPublisher(p notify.Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.pub = p
		}
	}
}

// WithHistoryStore replaces the run history store.
func WithHistoryStore(st history.Store) Option {
	return func(s *Service) { s.store = st }
}

// WithMonitor replaces the error monitor.
func WithMonitor(m monitoring.Monitor) Option {
	return func(s *Service) {
		if m != nil {
			s.mon = m
		}
	}
}

// New creates a Service from the configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	logger.Configure(cfg.App.Env, cfg.Logging.Level)
	log := logger.New("service")

	schedOpts := []schedule.Option{schedule.WithLogger(logger.New("scheduler"))}
	if cfg.Schedule.OptimalFirst {
		schedOpts = append(schedOpts, schedule.WithSearchFirst(cfg.Schedule.SearchBudget))
	}
	sched, err := schedule.NewScheduler(cfg.Schedule.Balance(), schedOpts...)
	if err != nil {
		return nil, fmt.Errorf("scheduler: %w", err)
	}

	sink, err := metrics.NewSinkFromConfig(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	svc := &Service{
		cfg:    cfg,
		log:    log,
		sheets: infrasheets.NewClient(cfg.Sheets),
		sched:  sched,
		sink:   sink,
		pub:    notify.NopPublisher{},
		mon:    monitoring.NopMonitor{},
		bus:    eventbus.New[events.ScheduleEvent](),
	}

	if cfg.History.Enabled {
		store, err := newHistoryStore(cfg.History)
		if err != nil {
			return nil, fmt.Errorf("history store: %w", err)
		}
		svc.store = store
	}
	if cfg.Notify.Enabled {
		pub, err := infranotify.NewPahoPublisher(cfg.Notify)
		if err != nil {
			return nil, fmt.Errorf("notify publisher: %w", err)
		}
		svc.pub = pub
	}
	if cfg.Monitoring.DSN != "" {
		mon, err := inframonitoring.NewSentryMonitor(cfg.Monitoring)
		if err != nil {
			return nil, fmt.Errorf("monitoring: %w", err)
		}
		svc.mon = mon
	}

	for _, o := range opts {
		o(svc)
	}
	return svc, nil
}

func newHistoryStore(cfg config.HistoryConfig) (history.Store, error) {
	switch cfg.Backend {
	case "sqlite":
		return infrahistory.NewSQLiteStore(cfg.Path)
	default:
		return infrahistory.NewJSONLStore(cfg.Path)
	}
}

// Events returns the run event bus for observers such as tests and the QA
// scenario runner.
func (s *Service) Events() *eventbus.Bus[events.ScheduleEvent] { return s.bus }

// Scheduler exposes the configured core scheduler.
func (s *Service) Scheduler() *schedule.Scheduler { return s.sched }

// MetricsAddr returns the /metrics listen address, or "" when Prometheus is
// disabled.
func (s *Service) MetricsAddr() string {
	if !s.cfg.Metrics.PrometheusEnabled {
		return ""
	}
	return ":" + strconv.Itoa(s.cfg.Metrics.PrometheusPort)
}

// StartMetricsServer serves /metrics until ctx is canceled.
func (s *Service) StartMetricsServer(ctx context.Context) error {
	addr := s.MetricsAddr()
	if addr == "" {
		return nil
	}
	return metrics.StartMetricsServer(ctx, addr)
}

// Close releases resources held by the service.
func (s *Service) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.Errorf("close history store: %v", err)
		}
	}
	s.pub.Close()
	s.bus.Close()
	s.mon.Flush(flushTimeout)
}
