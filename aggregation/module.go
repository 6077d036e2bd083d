package aggregation

import "go.uber.org/fx"

var Module = fx.Provide(NewRunner)
