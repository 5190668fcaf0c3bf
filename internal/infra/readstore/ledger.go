package readstore

import (
	"context"
	"time"

	"booking-engine/internal/domain/ledger"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"
	"booking-engine/internal/infra"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LedgerReadQueries interface {
	ListResourceRefsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.ListResourceRefsByOwnerRow, error)
	ListRevenueRecordsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRevenueRecordsByOwnerParams) ([]sqlc.ListRevenueRecordsByOwnerRow, error)
	ListExpensesByOwnerInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpensesByOwnerInRangeParams) ([]sqlc.Expense, error)
}

// LedgerReadStore loads the raw records for a summary. Filtering by period
// and resource happens in the ledger package; queries here only narrow the
// scan.
type LedgerReadStore struct {
	queries LedgerReadQueries
	db      sqlc.DBTX
}

func NewLedgerReadStore(queries LedgerReadQueries, db sqlc.DBTX) *LedgerReadStore {
	return &LedgerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LedgerReadStore) ResourceRefs(ctx context.Context, ownerID uuid.UUID) ([]ledger.ResourceRef, error) {
	rows, err := r.queries.ListResourceRefsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resource refs", err)
	}

	out := make([]ledger.ResourceRef, len(rows))
	for i, row := range rows {
		out[i] = ledger.ResourceRef{
			ID:      row.ID,
			OwnerID: row.OwnerID,
			Kind:    resource.Kind(row.Kind),
		}
	}
	return out, nil
}

func (r *LedgerReadStore) RevenueRecords(ctx context.Context, ownerID uuid.UUID, p ledger.Period) ([]ledger.RevenueRecord, error) {
	rows, err := r.queries.ListRevenueRecordsByOwner(ctx, r.db, sqlc.ListRevenueRecordsByOwnerParams{
		OwnerID:     ownerID,
		PeriodStart: pgconv.TimeToPgtype(p.Start),
		PeriodEnd:   pgconv.TimeToPgtype(p.End),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list revenue records", err)
	}

	out := make([]ledger.RevenueRecord, 0, len(rows))
	for _, row := range rows {
		s, err := span.New(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt))
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has an invalid span", err)
		}
		out = append(out, ledger.RevenueRecord{
			ReservationID: row.ID,
			ResourceID:    row.ResourceID,
			Span:          s,
			Status:        reservation.Status(row.Status),
			Amount:        pricing.Money(row.TotalAmount),
		})
	}
	return out, nil
}

// ExpenseRecords reads expense dates as midnight in the period's location so
// day membership matches the bucket boundaries.
func (r *LedgerReadStore) ExpenseRecords(ctx context.Context, ownerID uuid.UUID, p ledger.Period) ([]ledger.ExpenseRecord, error) {
	loc := p.Start.Location()
	rows, err := r.queries.ListExpensesByOwnerInRange(ctx, r.db, sqlc.ListExpensesByOwnerInRangeParams{
		OwnerID:  ownerID,
		FromDate: pgconv.DateToPgtype(p.Start.AddDate(0, 0, -1)),
		ToDate:   pgconv.DateToPgtype(p.End.AddDate(0, 0, 1)),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expenses", err)
	}

	out := make([]ledger.ExpenseRecord, len(rows))
	for i, row := range rows {
		d := pgconv.DateFromPgtype(row.SpentOn)
		out[i] = ledger.ExpenseRecord{
			ID:         row.ID,
			OwnerID:    row.OwnerID,
			ResourceID: pgconv.UUIDPtrFromPgtype(row.ResourceID),
			Date:       time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc),
			Amount:     pricing.Money(row.Amount),
			Category:   row.Category,
		}
	}
	return out, nil
}
