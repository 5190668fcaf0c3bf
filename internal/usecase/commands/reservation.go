package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"booking-engine/internal/domain/calendar"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/user"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const createReservationEndpoint = "POST /api/reservations"

var ErrIdempotencyCheckFailed = errs.New("idempotency check failed")

type CreateReservationCommand struct {
	ResourceID uuid.UUID `json:"resourceId"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Slot       string    `json:"slot"`
	Units      int       `json:"units"`
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, cmd CreateReservationCommand, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*queries.ReservationView, error)
	Confirm(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*queries.ReservationView, error)
	StartRental(ctx context.Context, id uuid.UUID, mileage *int64, actorID uuid.UUID, actorRole user.Role) (*queries.ReservationView, error)
	Complete(ctx context.Context, id uuid.UUID, mileage *int64, actorID uuid.UUID, actorRole user.Role) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationFactory *reservation.Factory
	reservationQueries queries.ReservationQueries
	invalidator        shared.SummaryInvalidator
	clock              clock.Clock
	idempotencyTTL     time.Duration
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	reservationFactory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	invalidator shared.SummaryInvalidator,
	clock clock.Clock,
	idempotencyTTL time.Duration,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		reservationFactory: reservationFactory,
		reservationQueries: reservationQueries,
		invalidator:        invalidator,
		clock:              clock,
		idempotencyTTL:     idempotencyTTL,
	}
}

func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	cmd CreateReservationCommand,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}
	requestHash := r.calculateRequestHash(cmd)

	existingResult, err := r.handleIdempotency(ctx, idempotencyKey, userID, requestHash)
	if err != nil {
		return nil, err
	}
	if existingResult != nil {
		return &CreateReservationResult{
			Reservation: existingResult,
			IsReplayed:  true,
		}, nil
	}

	reservationView, err := r.createNewReservation(ctx, cmd, userID, idempotencyKey)
	if err != nil {
		r.releaseIdempotencyKey(ctx, idempotencyKey, userID)
		return nil, err
	}
	return &CreateReservationResult{
		Reservation: reservationView,
		IsReplayed:  false,
	}, nil
}

// handleIdempotency claims the key for this request. A nil view with a nil
// error means the caller owns the key and must create the reservation.
func (r *reservationUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
) (*queries.ReservationView, error) {
	now := r.clock.Now()
	expiresAt := now.Add(r.idempotencyTTL)

	var existing *shared.IdempotencyRecord
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing = nil
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, userID, createReservationEndpoint, requestHash, expiresAt)
		if err != nil || inserted {
			return err
		}

		record, err := tx.Reads().IdempotencyByKey(ctx, idempotencyKey, userID)
		if err != nil {
			return err
		}
		if record.IsExpired(now) {
			claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), idempotencyKey, userID, requestHash, expiresAt)
			if err != nil || claimed {
				return err
			}
		}
		existing = record
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if existing == nil {
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultReservationID != nil {
			// Use system-level access for idempotency replay
			return r.reservationQueries.GetByIDSystem(ctx, *existing.ResultReservationID)
		}
		return nil, errs.New("completed request missing result reservation ID")

	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (r *reservationUseCaseImpl) createNewReservation(
	ctx context.Context,
	cmd CreateReservationCommand,
	userID, idempotencyKey uuid.UUID,
) (*queries.ReservationView, error) {
	if _, err := reservation.NewUnits(cmd.Units); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var created *reservation.Reservation
	var ownerID uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Serializes admission per resource; the lock is held until commit.
		if err := tx.LockResource(ctx, cmd.ResourceID); err != nil {
			return err
		}

		res, err := tx.Reads().ResourceByID(ctx, cmd.ResourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrResourceNotFound)
			}
			return err
		}
		ownerID = res.OwnerID()

		booked, err := shared.RequestSpan(res, cmd.Start, cmd.End)
		if err != nil {
			return err
		}

		existing, err := tx.Reads().ActiveBookings(ctx, res.ID(), booked)
		if err != nil {
			return err
		}
		decision, err := calendar.CheckAvailability(res, calendar.Request{Span: booked, Units: cmd.Units, Slot: cmd.Slot}, existing)
		if err != nil {
			return err
		}
		if !decision.Available {
			return NewRejectedError(decision)
		}

		created, err = r.reservationFactory.CreateReservation(res, userID, booked, cmd.Slot, cmd.Units)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), created); err != nil {
			return err
		}

		if err := r.enqueueEvent(ctx, tx, shared.TopicReservationCreated, created); err != nil {
			return err
		}

		return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, calculateIDHash(created.ID()), created.ID())
	})
	if err != nil {
		return nil, err
	}

	r.invalidateLedger(ctx, ownerID)

	// Read-after-write: Get the complete reservation view from read store
	reservationView, err := r.reservationQueries.GetByIDSystem(ctx, created.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reservationView, nil
}

func (r *reservationUseCaseImpl) releaseIdempotencyKey(ctx context.Context, key, userID uuid.UUID) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, userID)
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to release idempotency key", "key", key.String(), "error", err.Error())
	}
}

func (r *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*queries.ReservationView, error) {
	return r.transition(ctx, id, actorID, actorRole, true, func(res *reservation.Reservation, now time.Time) error {
		return res.Cancel(now)
	})
}

func (r *reservationUseCaseImpl) Confirm(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*queries.ReservationView, error) {
	return r.transition(ctx, id, actorID, actorRole, false, func(res *reservation.Reservation, now time.Time) error {
		return res.Confirm(now)
	})
}

func (r *reservationUseCaseImpl) StartRental(ctx context.Context, id uuid.UUID, mileage *int64, actorID uuid.UUID, actorRole user.Role) (*queries.ReservationView, error) {
	return r.transition(ctx, id, actorID, actorRole, false, func(res *reservation.Reservation, now time.Time) error {
		return res.StartRental(mileage, now)
	})
}

func (r *reservationUseCaseImpl) Complete(ctx context.Context, id uuid.UUID, mileage *int64, actorID uuid.UUID, actorRole user.Role) (*queries.ReservationView, error) {
	return r.transition(ctx, id, actorID, actorRole, false, func(res *reservation.Reservation, now time.Time) error {
		return res.Complete(mileage, now)
	})
}

// transition applies a status change under a row lock. The booking user may
// only act when allowBooker is set; owners and admins always may.
func (r *reservationUseCaseImpl) transition(
	ctx context.Context,
	id, actorID uuid.UUID,
	actorRole user.Role,
	allowBooker bool,
	apply func(res *reservation.Reservation, now time.Time) error,
) (*queries.ReservationView, error) {
	var ownerID uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return err
		}
		ownerID = locked.OwnerID

		res := locked.Reservation
		isBooker := allowBooker && res.UserID() == actorID
		if !isBooker && !user.CanManage(actorID, actorRole, locked.OwnerID) {
			return errs.ErrForbidden
		}

		if err := apply(res, r.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return err
		}
		return r.enqueueEvent(ctx, tx, shared.TopicReservationStatusChanged, res)
	})
	if err != nil {
		return nil, err
	}

	r.invalidateLedger(ctx, ownerID)

	return r.reservationQueries.GetByIDSystem(ctx, id)
}

type reservationEvent struct {
	ReservationID uuid.UUID `json:"reservationId"`
	ResourceID    uuid.UUID `json:"resourceId"`
	UserID        uuid.UUID `json:"userId"`
	Status        string    `json:"status"`
	TotalAmount   int64     `json:"totalAmount"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func (r *reservationUseCaseImpl) enqueueEvent(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation) error {
	now := r.clock.Now()
	payload, err := json.Marshal(reservationEvent{
		ReservationID: res.ID(),
		ResourceID:    res.ResourceID(),
		UserID:        res.UserID(),
		Status:        res.Status().String(),
		TotalAmount:   res.TotalAmount().Int64(),
		OccurredAt:    now,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "event", topic, payload, now)
}

// invalidateLedger runs after commit. A failure leaves a summary stale until
// its TTL passes, so it is logged rather than returned.
func (r *reservationUseCaseImpl) invalidateLedger(ctx context.Context, ownerID uuid.UUID) {
	if err := r.invalidator.Invalidate(ctx, ownerID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate ledger cache", "owner_id", ownerID.String(), "error", err.Error())
	}
}

func (r *reservationUseCaseImpl) calculateRequestHash(cmd CreateReservationCommand) string {
	data, _ := json.Marshal(cmd)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
