package readstore

import (
	"context"
	"time"

	"booking-engine/internal/domain/calendar"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/span"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/repository/converter"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservationsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserFirstPageParams) ([]sqlc.ListReservationsByUserFirstPageRow, error)
	ListReservationsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserKeysetParams) ([]sqlc.ListReservationsByUserKeysetRow, error)
	ListActiveBookingsForResource(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveBookingsForResourceParams) ([]sqlc.ListActiveBookingsForResourceRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row)
}

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByUserFirstPage(ctx, r.db, sqlc.ListReservationsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	items := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		items[i] = toReservationListItem(sqlc.ListReservationsByUserKeysetRow(row))
	}
	return items, nil
}

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByUserKeyset(ctx, r.db, sqlc.ListReservationsByUserKeysetParams{
		UserID:         userID,
		Limit:          limit,
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        lastID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user with keyset", err)
	}

	items := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		items[i] = toReservationListItem(row)
	}
	return items, nil
}

// ActiveBookings returns bookings that still hold capacity and overlap window.
func (r *ReservationReadStore) ActiveBookings(ctx context.Context, resourceID uuid.UUID, window span.Span) ([]calendar.Booking, error) {
	rows, err := r.queries.ListActiveBookingsForResource(ctx, r.db, sqlc.ListActiveBookingsForResourceParams{
		ResourceID:  resourceID,
		WindowStart: pgconv.TimeToPgtype(window.Start()),
		WindowEnd:   pgconv.TimeToPgtype(window.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}

	out := make([]calendar.Booking, 0, len(rows))
	for _, row := range rows {
		s, err := span.New(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt))
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has an invalid span", err)
		}
		out = append(out, calendar.Booking{
			ID:     row.ID,
			Span:   s,
			Slot:   pgconv.TextOrEmpty(row.Slot),
			Units:  int(row.Units),
			Status: reservation.Status(row.Status),
		})
	}
	return out, nil
}

func rowToReservationView(row sqlc.GetReservationByIDRow) (*queries.ReservationView, error) {
	card, err := converter.RateCardFromJSON(row.RateCard)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation rate card", err)
	}

	return &queries.ReservationView{
		ID:              row.ID,
		ResourceID:      row.ResourceID,
		ResourceName:    row.ResourceName,
		OwnerID:         row.OwnerID,
		UserID:          row.UserID,
		Kind:            row.Kind,
		Start:           pgconv.TimeFromPgtype(row.StartAt),
		End:             pgconv.TimeFromPgtype(row.EndAt),
		Slot:            pgconv.TextOrEmpty(row.Slot),
		Units:           int(row.Units),
		Status:          row.Status,
		TotalAmount:     row.TotalAmount,
		RateCard:        queries.NewRateCardView(card),
		MileageAtPickup: pgconv.Int64PtrFromPgtype(row.MileageAtPickup),
		MileageAtReturn: pgconv.Int64PtrFromPgtype(row.MileageAtReturn),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toReservationListItem(row sqlc.ListReservationsByUserKeysetRow) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:           row.ID,
		ResourceID:   row.ResourceID,
		ResourceName: row.ResourceName,
		Kind:         row.Kind,
		Start:        pgconv.TimeFromPgtype(row.StartAt),
		End:          pgconv.TimeFromPgtype(row.EndAt),
		Slot:         pgconv.TextOrEmpty(row.Slot),
		Units:        int(row.Units),
		Status:       row.Status,
		TotalAmount:  row.TotalAmount,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
