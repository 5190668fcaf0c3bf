package jobs

import (
	"context"
	"log/slog"

	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/shared"
)

// IdempotencyPurge deletes idempotency keys whose replay window has passed.
type IdempotencyPurge struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewIdempotencyPurge(uow shared.UnitOfWork, clk clock.Clock) *IdempotencyPurge {
	return &IdempotencyPurge{uow: uow, clock: clk}
}

func (p *IdempotencyPurge) Name() string { return "idempotency-purge" }

func (p *IdempotencyPurge) Run(ctx context.Context) error {
	var deleted int64
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Idempotency().DeleteExpired(ctx, tx.DB(), p.clock.Now())
		return err
	})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "expired idempotency keys purged", "deleted", deleted)
	return nil
}
