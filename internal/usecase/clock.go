package usecase

import (
	"context"
	"time"
)

// Clock is the time source of the checkout flow. Tests swap it for one that
// does not wait.
type Clock interface {
	Now() time.Time
	// Sleep waits for d or until ctx is done, whichever comes first. It only fails
	// when ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now().UTC() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// clockTimer is a backoff.Timer whose waits go through a Clock.
type clockTimer struct {
	ctx   context.Context
	clock Clock
	c     chan time.Time
}

func newClockTimer(ctx context.Context, clock Clock) *clockTimer {
	return &clockTimer{ctx: ctx, clock: clock, c: make(chan time.Time, 1)}
}

func (t *clockTimer) Start(d time.Duration) {
	go func() {
		if err := t.clock.Sleep(t.ctx, d); err != nil {
			return
		}
		t.c <- t.clock.Now()
	}()
}

func (t *clockTimer) Stop() {}

func (t *clockTimer) C() <-chan time.Time { return t.c }
