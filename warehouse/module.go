package warehouse

import "go.uber.org/fx"

var Module = fx.Provide(
	NewConfig,
	NewDB,
	NewWarehouse,
)
