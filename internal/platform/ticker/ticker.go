// Package ticker provides the tick source driving the adjustment scheduler:
// a monotonically increasing height delivered at a fixed wall-clock interval.
// Heights never repeat or decrease within a run.
package ticker

import (
	"context"
	"log/slog"
	"time"
)

// TickFunc is invoked once per tick with the current height.
type TickFunc func(ctx context.Context, height uint64)

// Ticker delivers heights to a single consumer. It owns the height counter;
// nothing else may advance it.
type Ticker struct {
	interval time.Duration
	height   uint64
	logger   *slog.Logger
}

// New creates a Ticker that starts counting from startHeight+1.
func New(interval time.Duration, startHeight uint64, logger *slog.Logger) *Ticker {
	return &Ticker{
		interval: interval,
		height:   startHeight,
		logger:   logger,
	}
}

// Run blocks, invoking fn once per interval until the context is cancelled.
// fn runs on the ticker goroutine, so ticks never overlap.
func (t *Ticker) Run(ctx context.Context, fn TickFunc) {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	t.logger.Info("tick source started", slog.Duration("interval", t.interval), slog.Uint64("start_height", t.height))

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("tick source stopped", slog.Uint64("last_height", t.height))
			return
		case <-tick.C:
			t.height++
			fn(ctx, t.height)
		}
	}
}
