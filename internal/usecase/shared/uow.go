package shared

import (
	"context"
	"time"

	"booking-engine/internal/domain/calendar"
	"booking-engine/internal/domain/expense"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"
	sqlc "booking-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a write transaction, replayed on retryable failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Resources() ResourceRepository
	Expenses() ExpenseRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	// LockResource serializes admission decisions for one resource until the
	// transaction ends.
	LockResource(ctx context.Context, resourceID uuid.UUID) error
	DB() sqlc.DBTX
}

type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	// ActiveBookings returns non-cancelled bookings of the resource that
	// overlap window.
	ActiveBookings(ctx context.Context, resourceID uuid.UUID, window span.Span) ([]calendar.Booking, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*LockedReservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type ResourceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, e *expense.Expense) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether a new processing row was inserted.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, reservationID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, before time.Time) (int64, error)
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status string, runAt time.Time, lastErr string) error
}
