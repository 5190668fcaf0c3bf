package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"booking-engine/internal/domain/calendar"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"
	"booking-engine/internal/infra/readstore"
	"booking-engine/internal/infra/repository"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy controls how often a write transaction is replayed after a
// serialization failure, a deadlock or an admission lock timeout.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

var defaultRetryPolicy = RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}

// Backoff doubles per attempt and adds up to 20% jitter so that the losers of
// a contended resource do not retry in lockstep.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.Base
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(rand.Int64N(spread))
	}
	return wait
}

func (p RetryPolicy) allows(err error, attempt int) bool {
	return attempt < p.MaxRetries && isRetryableError(err)
}

type PostgresUoW struct {
	pool        *pgxpool.Pool
	q           *sqlc.Queries
	retry       RetryPolicy
	lockTimeout string
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	retry := RetryPolicy{MaxRetries: cfg.DB.TxMaxRetries, Base: cfg.DB.TxRetryBase}
	if retry.MaxRetries <= 0 || retry.Base <= 0 {
		retry = defaultRetryPolicy
	}

	u := &PostgresUoW{pool: pool, q: q, retry: retry}
	if cfg.DB.LockTimeout > 0 {
		u.lockTimeout = strconv.FormatInt(cfg.DB.LockTimeout.Milliseconds(), 10)
	}
	return u
}

// ReadCommitted is enough for writes: admission is serialized per resource by
// LockResource, and status changes lock their row.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}

		if !u.retry.allows(err, attempt) {
			if attempt > 0 && attempt == u.retry.MaxRetries {
				slog.ErrorContext(ctx, "transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.retry.Backoff(attempt)
		slog.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt runs fn in one transaction. Rollback happens here rather than in a
// deferred call so retries do not pile up open transactions.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	reservationRepo  shared.ReservationRepository
	resourceRepo     shared.ResourceRepository
	expenseRepo      shared.ExpenseRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	reads            shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Resources() shared.ResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewResourceRepository(t.uow.q)
	}
	return t.resourceRepo
}

func (t *pgTx) Expenses() shared.ExpenseRepository {
	if t.expenseRepo == nil {
		t.expenseRepo = repository.NewExpenseRepository(t.uow.q)
	}
	return t.expenseRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

// Reads sees the transaction's own writes and anything committed before the
// admission lock was granted.
func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &commandReads{uow: t.uow, dbtx: t.dbtx}
	}
	return t.reads
}

// LockResource takes a transaction-scoped advisory lock keyed by the resource.
// A wait longer than the configured lock timeout fails with 55P03 and the
// whole transaction is retried.
func (t *pgTx) LockResource(ctx context.Context, resourceID uuid.UUID) error {
	if t.uow.lockTimeout != "" {
		if err := t.uow.q.SetLockTimeout(ctx, t.dbtx, t.uow.lockTimeout); err != nil {
			return errs.Wrap(err, "failed to set lock timeout")
		}
	}
	if err := t.uow.q.AcquireResourceLock(ctx, t.dbtx, resourceID); err != nil {
		return errs.Wrapf(err, "failed to lock resource %s", resourceID)
	}
	return nil
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	resources    *readstore.ResourceReadStore
	reservations *readstore.ReservationReadStore
	idempotency  *readstore.IdempotencyReadStore
}

func (r *commandReads) ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	if r.resources == nil {
		r.resources = readstore.NewResourceReadStore(r.uow.q, r.dbtx)
	}
	return r.resources.FindByID(ctx, id)
}

func (r *commandReads) ActiveBookings(ctx context.Context, resourceID uuid.UUID, window span.Span) ([]calendar.Booking, error) {
	if r.reservations == nil {
		r.reservations = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservations.ActiveBookings(ctx, resourceID, window)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotency == nil {
		r.idempotency = readstore.NewIdempotencyReadStore(r.uow.q, r.dbtx)
	}
	return r.idempotency.Get(ctx, key, userID)
}
