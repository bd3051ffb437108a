// Package scheduler runs the periodic cleanup of expired availability.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/wb-go/wbf/logger"
)

type availabilityPruner interface {
	PruneExpired(ctx context.Context, now time.Time) (int64, error)
}

type Scheduler struct {
	pruner   availabilityPruner
	interval time.Duration
	now      func() time.Time
	logger   logger.Logger
}

func New(
	pruner availabilityPruner,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		pruner:   pruner,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Start runs the prune job every interval, first right away, until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		s.logger.Error("failed to create scheduler", logger.String("error", err.Error()))
		return
	}

	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.tick, ctx),
		gocron.WithName("prune-expired-availability"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		s.logger.Error("failed to schedule prune job", logger.String("error", err.Error()))
		_ = sched.Shutdown()
		return
	}

	sched.Start()
	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	<-ctx.Done()

	if err = sched.Shutdown(); err != nil {
		s.logger.Warn("scheduler shutdown", logger.String("error", err.Error()))
	}
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) tick(ctx context.Context) {
	now := interval.Wall(s.now())

	pruned, err := s.pruner.PruneExpired(ctx, now)
	if err != nil {
		s.logger.Error("failed to prune expired availability",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("prune finished",
		logger.Int64("pruned", pruned),
		logger.String("now", now.Format(time.DateTime)),
	)
}
