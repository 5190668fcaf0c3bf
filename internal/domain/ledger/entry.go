package ledger

import (
	"time"

	"booking-engine/internal/domain/expense"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"

	"github.com/google/uuid"
)

type ResourceRef struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Kind    resource.Kind
}

type RevenueRecord struct {
	ReservationID uuid.UUID
	ResourceID    uuid.UUID
	Span          span.Span
	Status        reservation.Status
	Amount        pricing.Money
}

type ExpenseRecord struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	ResourceID *uuid.UUID
	Date       time.Time
	Amount     pricing.Money
	Category   string
}

type RevenueEntry struct {
	Date   time.Time
	Amount pricing.Money
	Kind   resource.Kind
}

type ExpenseEntry struct {
	Date     time.Time
	Amount   pricing.Money
	Category string
}

// ProjectRevenue keeps non-cancelled reservations of the given resources that
// fall in the period. Vehicles use span overlap, attractions day membership.
func ProjectRevenue(records []RevenueRecord, resources map[uuid.UUID]ResourceRef, p Period) []RevenueEntry {
	bucket := p.Span()
	out := make([]RevenueEntry, 0, len(records))
	for _, r := range records {
		ref, ok := resources[r.ResourceID]
		if !ok || !r.Status.CountsAsRevenue() {
			continue
		}
		var in bool
		switch ref.Kind {
		case resource.KindVehicle:
			in = r.Span.Overlaps(bucket)
		case resource.KindAttraction:
			in = p.Contains(r.Span.Start())
		}
		if !in {
			continue
		}
		out = append(out, RevenueEntry{Date: r.Span.Start(), Amount: r.Amount, Kind: ref.Kind})
	}
	return out
}

func ProjectExpenses(records []ExpenseRecord, f Filter, p Period) []ExpenseEntry {
	out := make([]ExpenseEntry, 0, len(records))
	for _, e := range records {
		if e.OwnerID != f.OwnerID || !p.Contains(e.Date) {
			continue
		}
		if f.ResourceID != nil && (e.ResourceID == nil || *e.ResourceID != *f.ResourceID) {
			continue
		}
		out = append(out, ExpenseEntry{Date: e.Date, Amount: e.Amount, Category: expense.NormalizeCategory(e.Category)})
	}
	return out
}
