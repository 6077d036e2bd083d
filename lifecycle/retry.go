package lifecycle

import (
	"context"
	"time"

	"github.com/avast/retry-go"
)

var (
	DefaultDelay     = 2 * time.Second
	DefaultDelayType = retry.BackOffDelay
)

// Connection is a client to one of the stores which must be reachable before a run starts
type Connection interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type RetryingPinger struct {
	attempts  uint
	delay     time.Duration
	delayType retry.DelayTypeFunc
	delegate  Connection
}

func NewRetryingPinger(delegate Connection, attempts uint) *RetryingPinger {
	if attempts == 0 {
		attempts = 1
	}
	return &RetryingPinger{
		attempts:  attempts,
		delay:     DefaultDelay,
		delayType: DefaultDelayType,
		delegate:  delegate,
	}
}

func (r *RetryingPinger) Ping(ctx context.Context) error {
	retryFn := func() error { return r.delegate.Ping(ctx) }
	return retry.Do(
		retryFn,
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.DelayType(r.delayType),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
}
