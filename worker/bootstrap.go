package worker

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/meditrack/aggregator-worker/aggregation"
	"github.com/meditrack/aggregator-worker/metrics"
	"github.com/meditrack/aggregator-worker/pipelines"
	"github.com/meditrack/aggregator-worker/store"
	"github.com/meditrack/aggregator-worker/warehouse"
)

var dependencies = fx.Provide(
	loggerProvider,
)

var Modules = []fx.Option{
	dependencies,
	store.Module,
	warehouse.Module,
	pipelines.Module,
	metrics.Module,
	aggregation.Module,
}

// New returns an app which performs a single aggregation run and shuts down.
// The exit code of the app reflects the outcome of the run.
func New() *fx.App {
	if err := loadEnvFile(); err != nil {
		return fx.New(fx.Error(err))
	}

	return fx.New(append(Modules, RunOnce)...)
}

type Components struct {
	fx.In

	Runner     *aggregation.Runner
	Logger     *zap.SugaredLogger
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
}
