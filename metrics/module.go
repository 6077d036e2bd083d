package metrics

import (
	"go.uber.org/fx"

	"github.com/meditrack/aggregator-worker/aggregation"
)

var Module = fx.Provide(
	NewConfig,
	fx.Annotate(NewPushRecorder, fx.As(new(aggregation.Recorder))),
)
