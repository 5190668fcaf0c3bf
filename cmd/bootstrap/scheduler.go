package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase/jobs"
	"booking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

const jobTimeout = time.Minute

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, publisher jobs.Publisher, clk clock.Clock) error {
	if !cfg.Scheduler.Enabled {
		slog.Info("scheduler disabled")
		return nil
	}

	s := jobs.NewScheduler(jobTimeout)
	relay := jobs.NewOutboxRelay(uow, publisher, clk, int(cfg.Scheduler.OutboxBatch), int(cfg.Scheduler.OutboxMaxRetry))
	if err := s.Register(cfg.Scheduler.OutboxSpec, relay); err != nil {
		return err
	}
	if err := s.Register(cfg.Scheduler.PurgeSpec, jobs.NewIdempotencyPurge(uow, clk)); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
	return nil
}
