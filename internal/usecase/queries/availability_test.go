//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"booking-engine/internal/domain/calendar"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/span"
	"booking-engine/internal/infra"
	queriesmock "booking-engine/internal/mock/queries"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/testutil/builder"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAvailability(t *testing.T) (queries.AvailabilityQueries, *queriesmock.MockResourceReadStore, *queriesmock.MockBookingReadStore) {
	ctrl := gomock.NewController(t)
	resources := queriesmock.NewMockResourceReadStore(ctrl)
	bookings := queriesmock.NewMockBookingReadStore(ctrl)
	return queries.NewAvailabilityQueries(resources, bookings, reservation.NewDefaultPriceCalculator()), resources, bookings
}

func TestAvailabilityQueries_Check(t *testing.T) {
	cruise := builder.NewAttractionBuilder().WithCapacity(10).WithSlots("10:00", "14:00").MustBuild()

	booked := func(slot string, units int) calendar.Booking {
		return builder.NewReservationBuilder().
			ForResource(cruise).
			WithSpan(builder.Days(builder.Date(2025, time.June, 7), 1)).
			WithSlot(slot).
			WithUnits(units).
			BuildBooking()
	}

	tests := []struct {
		name          string
		params        queries.AvailabilityParams
		existing      []calendar.Booking
		wantAvailable bool
		wantReason    string
		wantRemaining *int
	}{
		{
			name:          "free slot reports remaining capacity",
			params:        queries.AvailabilityParams{Start: "2025-06-07", Units: 3, Slot: "10:00"},
			existing:      []calendar.Booking{booked("10:00", 4), booked("14:00", 6)},
			wantAvailable: true,
			wantRemaining: ptrInt(6),
		},
		{
			name:          "full slot is rejected",
			params:        queries.AvailabilityParams{Start: "2025-06-07", Units: 7, Slot: "10:00"},
			existing:      []calendar.Booking{booked("10:00", 4)},
			wantAvailable: false,
			wantReason:    string(calendar.ReasonCapacityExceeded),
			wantRemaining: ptrInt(6),
		},
		{
			name:          "slot is required",
			params:        queries.AvailabilityParams{Start: "2025-06-07", Units: 1},
			wantAvailable: false,
			wantReason:    string(calendar.ReasonSlotRequired),
		},
		{
			name:          "unknown slot",
			params:        queries.AvailabilityParams{Start: "2025-06-07", Units: 1, Slot: "18:00"},
			wantAvailable: false,
			wantReason:    string(calendar.ReasonInvalidSlot),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, resources, bookings := setupAvailability(t)
			p := tt.params
			p.ResourceID = cruise.ID()
			resources.EXPECT().FindByID(gomock.Any(), cruise.ID()).Return(cruise, nil)
			bookings.EXPECT().ActiveBookings(gomock.Any(), cruise.ID(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, window span.Span) ([]calendar.Booking, error) {
					assert.Equal(t, builder.Days(builder.Date(2025, time.June, 7), 1), window)
					return tt.existing, nil
				})

			view, err := q.Check(context.Background(), p)

			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, view.Available)
			assert.Equal(t, tt.wantReason, view.Reason)
			assert.Equal(t, tt.wantRemaining, view.Remaining)
		})
	}

	t.Run("vehicle overlap is a conflict", func(t *testing.T) {
		q, resources, bookings := setupAvailability(t)
		car := builder.NewVehicleBuilder().MustBuild()
		existing := builder.NewReservationBuilder().ForResource(car).
			WithSpan(builder.Days(builder.Date(2025, time.January, 9), 2)).BuildBooking()
		resources.EXPECT().FindByID(gomock.Any(), car.ID()).Return(car, nil)
		bookings.EXPECT().ActiveBookings(gomock.Any(), car.ID(), gomock.Any()).Return([]calendar.Booking{existing}, nil)

		view, err := q.Check(context.Background(), queries.AvailabilityParams{
			ResourceID: car.ID(), Start: "2025-01-05", End: "2025-01-10", Units: 1,
		})

		require.NoError(t, err)
		assert.False(t, view.Available)
		assert.Equal(t, string(calendar.ReasonConflict), view.Reason)
	})

	t.Run("unknown resource", func(t *testing.T) {
		q, resources, _ := setupAvailability(t)
		id := uuid.New()
		resources.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("resource not found", nil, infra.KindNotFound))

		_, err := q.Check(context.Background(), queries.AvailabilityParams{ResourceID: id, Start: "2025-01-05", End: "2025-01-06", Units: 1})
		assert.ErrorIs(t, err, errs.ErrResourceNotFound)
	})

	t.Run("inverted span", func(t *testing.T) {
		q, resources, _ := setupAvailability(t)
		car := builder.NewVehicleBuilder().MustBuild()
		resources.EXPECT().FindByID(gomock.Any(), car.ID()).Return(car, nil)

		_, err := q.Check(context.Background(), queries.AvailabilityParams{ResourceID: car.ID(), Start: "2025-01-10", End: "2025-01-05", Units: 1})
		assert.ErrorIs(t, err, span.ErrInvalidSpan)
	})
}

func TestAvailabilityQueries_Quote(t *testing.T) {
	t.Run("vehicle uses the weekly tier", func(t *testing.T) {
		q, resources, _ := setupAvailability(t)
		car := builder.NewVehicleBuilder().MustBuild()
		resources.EXPECT().FindByID(gomock.Any(), car.ID()).Return(car, nil)

		view, err := q.Quote(context.Background(), queries.AvailabilityParams{
			ResourceID: car.ID(), Start: "2025-01-01", End: "2025-01-10", Units: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, "weekly", view.Tier)
		assert.Equal(t, 9, view.Days)
		assert.Equal(t, 1, view.Periods)
		assert.Equal(t, 2, view.RemainderDays)
		// 60000 + 2 x 10000
		assert.Equal(t, int64(80000), view.Amount)
	})

	t.Run("attraction charges per ticket", func(t *testing.T) {
		q, resources, _ := setupAvailability(t)
		cruise := builder.NewAttractionBuilder().MustBuild()
		resources.EXPECT().FindByID(gomock.Any(), cruise.ID()).Return(cruise, nil)

		view, err := q.Quote(context.Background(), queries.AvailabilityParams{ResourceID: cruise.ID(), Start: "2025-06-07", Units: 4})

		require.NoError(t, err)
		assert.Equal(t, "ticket", view.Tier)
		assert.Equal(t, int64(10000), view.Amount)
		assert.Equal(t, builder.Date(2025, time.June, 8), view.End)
	})

	t.Run("invalid units", func(t *testing.T) {
		q, resources, _ := setupAvailability(t)
		cruise := builder.NewAttractionBuilder().MustBuild()
		resources.EXPECT().FindByID(gomock.Any(), cruise.ID()).Return(cruise, nil)

		_, err := q.Quote(context.Background(), queries.AvailabilityParams{ResourceID: cruise.ID(), Start: "2025-06-07", Units: 0})
		assert.ErrorIs(t, err, reservation.ErrInvalidUnits)
	})
}

func ptrInt(v int) *int { return &v }
