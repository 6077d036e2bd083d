package worker

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	ExitCodeSuccess = 0
	ExitCodeFailure = 1
)

// RunOnce performs a single run after the app starts and shuts the app down with the run's exit code
var RunOnce = fx.Invoke(startRun)

// startRun triggers the run once all connections are established. The run
// happens outside of the start hook so it isn't bound by the start timeout.
func startRun(p Components) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := ExitCodeSuccess
				if _, err := p.Runner.Run(context.Background()); err != nil {
					exitCode = ExitCodeFailure
				}
				if err := p.Shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
					p.Logger.Errorw("error shutting down", zap.Error(err))
				}
			}()
			return nil
		},
	})
}
