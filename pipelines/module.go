package pipelines

import "go.uber.org/fx"

var Module = fx.Provide(
	NewConfig,
	NewRateLimiter,
	NewAggregator,
)
