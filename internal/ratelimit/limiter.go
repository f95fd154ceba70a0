package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter spaces calls at least interval apart. The first call goes through
// immediately.
type Limiter struct {
	lim      *rate.Limiter
	interval time.Duration
}

// New returns a Limiter for one call per interval. interval <= 0 disables
// limiting.
func New(interval time.Duration) *Limiter {
	if interval <= 0 {
		return &Limiter{lim: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{
		lim:      rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
	}
}

func (l *Limiter) Interval() time.Duration { return l.interval }

// Wait blocks until the next call is allowed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.lim.Wait(ctx)
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
