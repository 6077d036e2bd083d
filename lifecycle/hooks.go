package lifecycle

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// AttachConnectionHooks verifies the connection when the app starts and releases it when the app stops.
// Hooks run in reverse order on stop, so connections outlive anything started after them.
func AttachConnectionHooks(name string, conn Connection, attempts uint, lifecycle fx.Lifecycle, logger *zap.SugaredLogger) {
	pinger := NewRetryingPinger(conn, attempts)
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Debugw("connecting", "store", name, "attempts", attempts)
			if err := pinger.Ping(ctx); err != nil {
				return fmt.Errorf("unable to connect to %s: %w", name, err)
			}
			logger.Infow("connected", "store", name)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := conn.Close(ctx); err != nil {
				logger.Errorw("unable to close connection", "store", name, zap.Error(err))
				return err
			}
			logger.Infow("connection closed", "store", name)
			return nil
		},
	})
}
