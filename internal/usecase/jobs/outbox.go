package jobs

import (
	"context"
	"log/slog"
	"time"

	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/shared"
)

const (
	retryBase = 30 * time.Second
	retryCap  = time.Hour
)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type RelayResult struct {
	Sent        int
	Rescheduled int
	Failed      int
}

// OutboxRelay drains due notification jobs to the broker. Jobs are claimed
// with SKIP LOCKED inside one transaction, so concurrent relays never send
// the same job twice.
type OutboxRelay struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	batchSize   int
	maxAttempts int
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, batchSize, maxAttempts int) *OutboxRelay {
	return &OutboxRelay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

func (r *OutboxRelay) Name() string { return "outbox-relay" }

func (r *OutboxRelay) Run(ctx context.Context) error {
	res, err := r.RunOnce(ctx)
	if err != nil {
		return err
	}
	if res.Sent+res.Rescheduled+res.Failed > 0 {
		slog.InfoContext(ctx, "outbox relay finished",
			"sent", res.Sent,
			"rescheduled", res.Rescheduled,
			"failed", res.Failed)
	}
	return nil
}

func (r *OutboxRelay) RunOnce(ctx context.Context) (RelayResult, error) {
	var res RelayResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = RelayResult{}
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := r.publisher.Publish(ctx, job.Topic, job.Payload)
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return err
				}
				res.Sent++
				continue
			}

			attempts := job.Attempts + 1
			status := shared.NotificationStatusQueued
			if attempts >= r.maxAttempts {
				status = shared.NotificationStatusFailed
				res.Failed++
				slog.ErrorContext(ctx, "outbox job exhausted retries",
					"job_id", job.ID.String(),
					"topic", job.Topic,
					"attempts", attempts,
					"error", pubErr.Error())
			} else {
				res.Rescheduled++
			}
			if err := tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, status, now.Add(RetryDelay(attempts)), pubErr.Error()); err != nil {
				return err
			}
		}
		return nil
	})
	return res, err
}

// RetryDelay doubles from 30s per attempt and is capped at one hour.
func RetryDelay(attempts int) time.Duration {
	if attempts < 1 {
		return retryBase
	}
	d := retryBase
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= retryCap {
			return retryCap
		}
	}
	return d
}
