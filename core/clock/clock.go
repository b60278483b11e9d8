// Package clock drives the day cycle in real time. The simulation itself is
// turn-based; the runner simply invokes the day advance on a fixed wall
// clock interval when auto-advance is enabled.
package clock

import (
	"context"
	"time"

	"github.com/villnoweric/package-delivery-tycoon/core/logger"
)

// Runner ticks a callback at a fixed interval until the context ends.
type Runner struct {
	interval time.Duration
	log      logger.Logger
}

// New creates a runner. A non-positive interval disables ticking.
func New(interval time.Duration, log logger.Logger) *Runner {
	return &Runner{interval: interval, log: log}
}

// Run blocks, invoking tick once per interval. It returns when the context
// is cancelled or immediately if the runner is disabled.
func (r *Runner) Run(ctx context.Context, tick func()) {
	if r.interval <= 0 {
		return
	}
	if r.log != nil {
		r.log.Infof("auto advance every %s", r.interval)
	}
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			tick()
		}
	}
}
