package metrics

// Package metrics defines the events and sink interfaces for observing
// scheduling runs. Sinks like the Prometheus and Influx implementations in
// infra/metrics record run results, warning counts and fairness spread, and
// can be combined with the multi sink. NopSink is the default wherever
// metrics are optional.
