// Package pollwait implements the bounded blocking poll loop used everywhere
// the tool waits on external state: cluster readiness, workload rollouts and
// external address assignment. A Budget makes the ceiling explicit
// (MaxAttempts probes spaced Interval apart) instead of an open-ended wait.
package pollwait

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrExhausted is returned when the budget runs out before the probe
// reports done.
var ErrExhausted = errors.New("poll budget exhausted")

// Budget bounds one poll loop.
type Budget struct {
	Interval    time.Duration
	MaxAttempts int
}

// Timeout returns the total waiting ceiling of the budget.
func (b Budget) Timeout() time.Duration {
	return time.Duration(b.MaxAttempts) * b.Interval
}

// ProbeFunc checks external state once. done ends the loop successfully; a
// non-nil error aborts it immediately.
type ProbeFunc func(ctx context.Context) (done bool, err error)

// Wait runs probe up to b.MaxAttempts times, sleeping b.Interval between
// attempts. It returns nil when the probe reports done, the probe's error
// as-is, ctx.Err() on cancellation, or ErrExhausted (wrapped with the
// attempt count) when the budget runs out.
func Wait(ctx context.Context, b Budget, probe ProbeFunc) error {
	if b.MaxAttempts <= 0 {
		return fmt.Errorf("%w after 0 attempts", ErrExhausted)
	}
	for attempt := 1; ; attempt++ {
		done, err := probe(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if attempt >= b.MaxAttempts {
			return fmt.Errorf("%w after %d attempts", ErrExhausted, b.MaxAttempts)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.Interval):
		}
	}
}
