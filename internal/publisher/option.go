package publisher

import (
	"context"
	"time"

	"go-hh-publisher/internal/config"
	"go-hh-publisher/internal/ratelimit"
	"go-hh-publisher/internal/telegram"
)

type Option func(*Publisher)

// WithFormatter replaces the message template.
func WithFormatter(f Formatter) Option {
	return func(p *Publisher) {
		p.format = f
	}
}

// WithJitter sets the pause drawn between two sends.
func WithJitter(j *ratelimit.Jitter) Option {
	return func(p *Publisher) {
		p.jitter = j
	}
}

// WithSleep replaces the wait used between sends. Tests use it to record
// delays instead of sleeping.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(p *Publisher) {
		p.sleep = sleep
	}
}

func WithPersistMode(mode config.PersistMode) Option {
	return func(p *Publisher) {
		p.persist = mode
	}
}

// WithArchive records every sent posting. Archive failures are logged, not fatal.
func WithArchive(a Archive) Option {
	return func(p *Publisher) {
		p.archive = a
	}
}

// WithDryRun formats and logs messages without sending or persisting.
func WithDryRun(dryRun bool) Option {
	return func(p *Publisher) {
		p.dryRun = dryRun
	}
}

func defaults(p *Publisher) {
	p.format = telegram.FormatPosting
	p.jitter = ratelimit.NewJitter(3*time.Second, 10*time.Second)
	p.sleep = ratelimit.Sleep
	p.persist = config.PersistPerMessage
}
