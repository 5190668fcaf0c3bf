package repository

import (
	"context"

	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/repository/converter"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationForUpdateRow, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params, err := converter.ReservationToCreateParams(res)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation", err)
	}

	if err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	return nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.LockedReservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationFromLockedRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err)
	}

	return &shared.LockedReservation{Reservation: res, OwnerID: row.OwnerID}, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, tx, converter.ReservationToStatusParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}
