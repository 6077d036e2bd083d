package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"

	"github.com/meditrack/aggregator-worker/aggregation"
)

// PushRecorder exposes the outcome of a run as gauges and pushes them to a
// pushgateway, because the process exits before it could be scraped
type PushRecorder struct {
	config   Config
	logger   *zap.SugaredLogger
	registry *prometheus.Registry

	lastRunSuccess   prometheus.Gauge
	lastRunTimestamp prometheus.Gauge
	runDuration      prometheus.Gauge
	rowsWritten      *prometheus.GaugeVec
}

var _ aggregation.Recorder = &PushRecorder{}

func NewPushRecorder(config Config, logger *zap.SugaredLogger) (*PushRecorder, error) {
	r := &PushRecorder{
		config:   config,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		lastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "aggregator_last_run_success",
			Help: "Whether the last aggregation run succeeded (1) or failed (0)",
		}),
		lastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "aggregator_last_run_timestamp_seconds",
			Help: "Unix time when the last aggregation run finished",
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "aggregator_run_duration_seconds",
			Help: "Duration of the last aggregation run",
		}),
		rowsWritten: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "aggregator_rows_written",
			Help: "Rows written to each warehouse table by the last aggregation run",
		}, []string{"table"}),
	}

	collectors := []prometheus.Collector{r.lastRunSuccess, r.lastRunTimestamp, r.runDuration, r.rowsWritten}
	for _, c := range collectors {
		if err := r.registry.Register(c); err != nil {
			return nil, fmt.Errorf("unable to register collector: %w", err)
		}
	}

	return r, nil
}

// Gatherer returns the registry with the metrics of the last recorded run
func (r *PushRecorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *PushRecorder) Record(ctx context.Context, report aggregation.Report) error {
	r.observe(report)

	if r.config.PushgatewayURL == "" {
		r.logger.Debugw("pushgateway is not configured, skipping metrics push", "runId", report.RunId)
		return nil
	}

	err := push.New(r.config.PushgatewayURL, r.config.Job).
		Gatherer(r.registry).
		Grouping("instance", "aggregator").
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("unable to push metrics: %w", err)
	}

	r.logger.Debugw("pushed run metrics", "runId", report.RunId, "url", r.config.PushgatewayURL)
	return nil
}

func (r *PushRecorder) observe(report aggregation.Report) {
	if report.Succeeded() {
		r.lastRunSuccess.Set(1)
	} else {
		r.lastRunSuccess.Set(0)
	}
	r.lastRunTimestamp.Set(float64(report.FinishedAt.Unix()))
	r.runDuration.Set(report.Duration().Seconds())

	r.rowsWritten.Reset()
	for table, rows := range report.RowsWritten {
		r.rowsWritten.WithLabelValues(table).Set(float64(rows))
	}
}
