//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/ledger"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mar(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func spanOf(t *testing.T, start, end time.Time) span.Span {
	t.Helper()
	s, err := span.New(start, end)
	require.NoError(t, err)
	return s
}

type fixture struct {
	owner      uuid.UUID
	car        ledger.ResourceRef
	cruise     ledger.ResourceRef
	foreignCar ledger.ResourceRef
	period     ledger.Period
}

func newFixture() fixture {
	owner := uuid.New()
	return fixture{
		owner:      owner,
		car:        ledger.ResourceRef{ID: uuid.New(), OwnerID: owner, Kind: resource.KindVehicle},
		cruise:     ledger.ResourceRef{ID: uuid.New(), OwnerID: owner, Kind: resource.KindAttraction},
		foreignCar: ledger.ResourceRef{ID: uuid.New(), OwnerID: uuid.New(), Kind: resource.KindVehicle},
		period:     ledger.ComputePeriod(ledger.RangeMonthly, mar(15)),
	}
}

func (f fixture) input(t *testing.T) ledger.Input {
	t.Helper()
	carID := f.car.ID
	return ledger.Input{
		Filter:    ledger.Filter{OwnerID: f.owner},
		Period:    f.period,
		Resources: []ledger.ResourceRef{f.car, f.cruise, f.foreignCar},
		Reservations: []ledger.RevenueRecord{
			// straddles the start of March
			{ResourceID: f.car.ID, Span: spanOf(t, mar(1).AddDate(0, 0, -3), mar(3)), Status: reservation.StatusCompleted, Amount: 50000},
			{ResourceID: f.car.ID, Span: spanOf(t, mar(10), mar(12)), Status: reservation.StatusConfirmed, Amount: 20000},
			{ResourceID: f.car.ID, Span: spanOf(t, mar(20), mar(22)), Status: reservation.StatusCancelled, Amount: 99999},
			{ResourceID: f.cruise.ID, Span: spanOf(t, mar(5), mar(6)), Status: reservation.StatusPending, Amount: 7500},
			// attraction day outside the period
			{ResourceID: f.cruise.ID, Span: spanOf(t, mar(1).AddDate(0, 0, -1), mar(1)), Status: reservation.StatusConfirmed, Amount: 2500},
			{ResourceID: f.foreignCar.ID, Span: spanOf(t, mar(10), mar(12)), Status: reservation.StatusConfirmed, Amount: 70000},
		},
		Expenses: []ledger.ExpenseRecord{
			{OwnerID: f.owner, ResourceID: &carID, Date: mar(2), Amount: 3000, Category: "fuel"},
			{OwnerID: f.owner, ResourceID: &carID, Date: mar(9), Amount: 2000, Category: "fuel"},
			{OwnerID: f.owner, Date: mar(4), Amount: 5000, Category: "insurance"},
			{OwnerID: f.owner, Date: mar(4), Amount: 1000, Category: ""},
			{OwnerID: f.owner, Date: mar(1).AddDate(0, 1, 0), Amount: 8000, Category: "fuel"},
			{OwnerID: uuid.New(), Date: mar(4), Amount: 4000, Category: "fuel"},
		},
		CommissionBps: 1000,
	}
}

func TestSummarize(t *testing.T) {
	t.Run("owner totals across resources", func(t *testing.T) {
		f := newFixture()
		actual := ledger.Summarize(f.input(t))

		expected := ledger.Summary{
			OwnerID:       f.owner,
			Period:        f.period,
			RevenueTotal:  77500,
			ExpenseTotal:  11000,
			Profit:        66500,
			CommissionBps: 1000,
			Commission:    7750,
			NetEarnings:   58750,
			RevenueByKind: ledger.RevenueByKind{Vehicle: 70000, Attraction: 7500},
			ByCategory: []ledger.CategoryTotal{
				{Category: "fuel", Total: 5000, Count: 2},
				{Category: "insurance", Total: 5000, Count: 1},
				{Category: "general", Total: 1000, Count: 1},
			},
			Counts: ledger.Counts{Reservations: 3, Expenses: 4},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Summary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("resource filter keeps only that resource", func(t *testing.T) {
		f := newFixture()
		in := f.input(t)
		carID := f.car.ID
		in.Filter.ResourceID = &carID

		actual := ledger.Summarize(in)

		assert.Equal(t, pricing.Money(70000), actual.RevenueTotal)
		assert.Equal(t, pricing.Money(5000), actual.ExpenseTotal)
		assert.Equal(t, []ledger.CategoryTotal{{Category: "fuel", Total: 5000, Count: 2}}, actual.ByCategory)
		assert.Equal(t, &carID, actual.ResourceID)
	})

	t.Run("resource of another owner gives zero summary", func(t *testing.T) {
		f := newFixture()
		in := f.input(t)
		foreign := f.foreignCar.ID
		in.Filter.ResourceID = &foreign

		actual := ledger.Summarize(in)

		assert.Zero(t, actual.RevenueTotal)
		assert.Zero(t, actual.ExpenseTotal)
		assert.Equal(t, []ledger.CategoryTotal{}, actual.ByCategory)
	})

	t.Run("owner without resources gets zeros", func(t *testing.T) {
		owner := uuid.New()
		period := ledger.ComputePeriod(ledger.RangeWeekly, mar(5))

		actual := ledger.Summarize(ledger.Input{
			Filter:        ledger.Filter{OwnerID: owner},
			Period:        period,
			CommissionBps: 1000,
		})

		assert.Zero(t, actual.RevenueTotal)
		assert.Zero(t, actual.ExpenseTotal)
		assert.Zero(t, actual.Profit)
		assert.Zero(t, actual.Commission)
		assert.Zero(t, actual.NetEarnings)
		assert.NotNil(t, actual.ByCategory)
		assert.Empty(t, actual.ByCategory)
		assert.Equal(t, ledger.Counts{}, actual.Counts)
	})

	t.Run("profit can be negative", func(t *testing.T) {
		f := newFixture()
		in := f.input(t)
		in.Reservations = nil

		actual := ledger.Summarize(in)

		assert.Equal(t, pricing.Money(-11000), actual.Profit)
		assert.Zero(t, actual.Commission)
		assert.Equal(t, pricing.Money(-11000), actual.NetEarnings)
	})
}

func TestCommission(t *testing.T) {
	assert.Equal(t, pricing.Money(0), ledger.Commission(12345, 0))
	assert.Equal(t, pricing.Money(1235), ledger.Commission(12345, 1000))
	assert.Equal(t, pricing.Money(1234), ledger.Commission(12344, 1000))
}

func TestGroupByCategory_Ordering(t *testing.T) {
	actual := ledger.GroupByCategory([]ledger.ExpenseEntry{
		{Category: "b", Amount: 100},
		{Category: "a", Amount: 100},
		{Category: "c", Amount: 300},
		{Category: "b", Amount: 1},
	})

	names := make([]string, 0, len(actual))
	for _, c := range actual {
		names = append(names, c.Category)
	}
	assert.Equal(t, []string{"c", "b", "a"}, names)
}
