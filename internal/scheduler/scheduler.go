package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Poller runs a single poll cycle.
type Poller interface {
	Poll(ctx context.Context) error
}

// Scheduler owns the watch loop: it polls once immediately, then on every
// interval until the context is cancelled.
type Scheduler struct {
	poller   Poller
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler creates a scheduler for p at the given interval.
func NewScheduler(p Poller, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		poller:   p,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the polling loop. Poll errors are logged and never stop the
// loop. It returns nil when ctx is cancelled (graceful shutdown).
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting scheduler", "interval", s.interval.String())

	s.pollOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down scheduler")
			return nil
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

func (s *Scheduler) pollOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.poller.Poll(ctx); err != nil {
		s.logger.Error("poll failed", "error", err)
	}
}
