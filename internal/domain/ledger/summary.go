package ledger

import (
	"cmp"
	"slices"

	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/resource"

	"github.com/google/uuid"
)

const bpsDenominator = 10000

// Filter selects one resource, or every resource of OwnerID when ResourceID is nil.
type Filter struct {
	OwnerID    uuid.UUID
	ResourceID *uuid.UUID
}

type Input struct {
	Filter        Filter
	Period        Period
	Resources     []ResourceRef
	Reservations  []RevenueRecord
	Expenses      []ExpenseRecord
	CommissionBps int64
}

type CategoryTotal struct {
	Category string
	Total    pricing.Money
	Count    int
}

type Counts struct {
	Reservations int
	Expenses     int
}

type RevenueByKind struct {
	Vehicle    pricing.Money
	Attraction pricing.Money
}

type Summary struct {
	OwnerID       uuid.UUID
	ResourceID    *uuid.UUID
	Period        Period
	RevenueTotal  pricing.Money
	ExpenseTotal  pricing.Money
	Profit        pricing.Money
	CommissionBps int64
	Commission    pricing.Money
	NetEarnings   pricing.Money
	RevenueByKind RevenueByKind
	ByCategory    []CategoryTotal
	Counts        Counts
}

func EmptySummary(f Filter, p Period, commissionBps int64) Summary {
	return Summary{
		OwnerID:       f.OwnerID,
		ResourceID:    f.ResourceID,
		Period:        p,
		CommissionBps: commissionBps,
		ByCategory:    []CategoryTotal{},
	}
}

// Summarize aggregates the records that belong to the filter and period.
// It performs no permission checks and never fails: an owner without
// matching resources gets a zero summary.
func Summarize(in Input) Summary {
	out := EmptySummary(in.Filter, in.Period, in.CommissionBps)

	owned := ownedResources(in.Resources, in.Filter)
	if len(owned) == 0 {
		return out
	}

	for _, e := range ProjectRevenue(in.Reservations, owned, in.Period) {
		out.RevenueTotal = out.RevenueTotal.Add(e.Amount)
		switch e.Kind {
		case resource.KindVehicle:
			out.RevenueByKind.Vehicle = out.RevenueByKind.Vehicle.Add(e.Amount)
		case resource.KindAttraction:
			out.RevenueByKind.Attraction = out.RevenueByKind.Attraction.Add(e.Amount)
		}
		out.Counts.Reservations++
	}

	expenses := ProjectExpenses(in.Expenses, in.Filter, in.Period)
	for _, e := range expenses {
		out.ExpenseTotal = out.ExpenseTotal.Add(e.Amount)
		out.Counts.Expenses++
	}
	out.ByCategory = GroupByCategory(expenses)

	out.Profit = out.RevenueTotal.Sub(out.ExpenseTotal)
	out.Commission = Commission(out.RevenueTotal, in.CommissionBps)
	out.NetEarnings = out.Profit.Sub(out.Commission)
	return out
}

// Commission is revenue * bps / 10000, rounded half away from zero.
func Commission(revenue pricing.Money, bps int64) pricing.Money {
	if bps <= 0 {
		return 0
	}
	return revenue.MulRatio(bps, bpsDenominator)
}

// GroupByCategory sorts by total descending, then category ascending.
func GroupByCategory(entries []ExpenseEntry) []CategoryTotal {
	idx := make(map[string]int)
	out := make([]CategoryTotal, 0)
	for _, e := range entries {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, CategoryTotal{Category: e.Category})
		}
		out[i].Total = out[i].Total.Add(e.Amount)
		out[i].Count++
	}
	slices.SortFunc(out, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

func ownedResources(refs []ResourceRef, f Filter) map[uuid.UUID]ResourceRef {
	out := make(map[uuid.UUID]ResourceRef, len(refs))
	for _, r := range refs {
		if r.OwnerID != f.OwnerID {
			continue
		}
		if f.ResourceID != nil && r.ID != *f.ResourceID {
			continue
		}
		out[r.ID] = r
	}
	return out
}
