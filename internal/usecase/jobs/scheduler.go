package jobs

import (
	"context"
	"log/slog"
	"time"

	"booking-engine/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs jobs on cron specs. Overlapping runs of the same job are
// skipped and panics are recovered.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
}

func NewScheduler(timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
		timeout: timeout,
	}
}

func (s *Scheduler) Register(spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		if err := job.Run(ctx); err != nil {
			slog.Error("scheduled job failed",
				"job", job.Name(),
				"duration_ms", time.Since(start).Milliseconds(),
				"error", err.Error())
		}
	})
	if err != nil {
		return errs.Wrap(err, "invalid schedule for "+job.Name())
	}
	slog.Info("job scheduled", "job", job.Name(), "spec", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
