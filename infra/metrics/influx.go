package metrics

import (
	"context"
	"net/http"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/metrics"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/logger"
)

// InfluxSink writes scheduling runs to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	client := influxdb2.NewClientWithOptions(url, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails, so a dead metrics backend never
// blocks scheduling.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordScheduleResult writes the run as a single point.
func (s *InfluxSink) RecordScheduleResult(res coremetrics.ScheduleResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("schedule_run").
		AddTag("run_id", res.RunID).
		AddTag("date", res.Date).
		AddTag("result", res.Result).
		AddTag("strategy", res.Strategy).
		AddTag("component", "scheduler").
		AddField("duration_ms", res.Duration.Seconds()*1000).
		AddField("varsity_count", res.VarsityCount).
		AddField("candidate_pool", res.CandidatePool).
		AddField("warning_count", res.WarningCount).
		SetTime(res.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordFairness writes the roster fairness spread.
func (s *InfluxSink) RecordFairness(stddev float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("roster_fairness").
		AddTag("component", "scheduler").
		AddField("shifts_stddev", stddev).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// Close shuts down the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }
