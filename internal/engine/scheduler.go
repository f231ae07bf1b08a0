package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic collection refreshes and stale-run recovery.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger

	staleCutoff time.Duration
}

// NewScheduler creates a new Scheduler that refreshes tracked items every
// refreshInterval. Job runs stuck in "running" for longer than twice the
// interval are marked crashed once per hour.
func NewScheduler(
	eng *Engine,
	refreshInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:        c,
		engine:      eng,
		log:         log,
		staleCutoff: 2 * refreshInterval,
	}

	if _, err := c.AddFunc(
		"@every "+refreshInterval.String(),
		s.runRefresh,
	); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc("@every 1h", s.runStaleRecovery); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRefresh() {
	ctx := context.Background()
	s.log.Info("scheduled refresh starting")
	if _, err := s.engine.RunRefresh(ctx); err != nil {
		s.log.Error("scheduled refresh failed", "error", err)
	}
}

func (s *Scheduler) runStaleRecovery() {
	ctx := context.Background()
	if _, err := s.engine.RecoverStale(ctx, s.staleCutoff); err != nil {
		s.log.Error("stale job recovery failed", "error", err)
	}
}
