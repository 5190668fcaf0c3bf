package queries

import (
	"context"

	"booking-engine/internal/domain/calendar"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/span"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	ActiveBookings(ctx context.Context, resourceID uuid.UUID, window span.Span) ([]calendar.Booking, error)
}

type AvailabilityParams struct {
	ResourceID uuid.UUID
	Start      string
	End        string
	Units      int
	Slot       string
}

// AvailabilityQueries answers pre-flight questions without booking anything.
// The authoritative check runs again when a reservation is created.
type AvailabilityQueries interface {
	Check(ctx context.Context, p AvailabilityParams) (*AvailabilityView, error)
	Quote(ctx context.Context, p AvailabilityParams) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	resources  ResourceReadStore
	bookings   BookingReadStore
	calculator reservation.PriceCalculator
}

func NewAvailabilityQueries(
	resources ResourceReadStore,
	bookings BookingReadStore,
	calculator reservation.PriceCalculator,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		resources:  resources,
		bookings:   bookings,
		calculator: calculator,
	}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, p AvailabilityParams) (*AvailabilityView, error) {
	res, err := loadResource(ctx, q.resources, p.ResourceID)
	if err != nil {
		return nil, err
	}

	booked, err := shared.RequestSpan(res, p.Start, p.End)
	if err != nil {
		return nil, err
	}

	existing, err := q.bookings.ActiveBookings(ctx, res.ID(), booked)
	if err != nil {
		return nil, err
	}

	slot := p.Slot
	if !res.HasSlots() {
		slot = ""
	}
	decision, err := calendar.CheckAvailability(res, calendar.Request{Span: booked, Units: p.Units, Slot: slot}, existing)
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{
		ResourceID: res.ID(),
		Start:      booked.Start(),
		End:        booked.End(),
		Slot:       slot,
		Units:      p.Units,
		Available:  decision.Available,
		Remaining:  decision.Remaining,
		Capacity:   decision.Capacity,
		Reason:     string(decision.Reason),
	}, nil
}

func (q *availabilityQueriesImpl) Quote(ctx context.Context, p AvailabilityParams) (*QuoteView, error) {
	res, err := loadResource(ctx, q.resources, p.ResourceID)
	if err != nil {
		return nil, err
	}

	booked, err := shared.RequestSpan(res, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	if _, err := reservation.NewUnits(p.Units); err != nil {
		return nil, err
	}

	b := q.calculator.Quote(res, booked, p.Units)
	return &QuoteView{
		ResourceID:    res.ID(),
		Kind:          res.Kind().String(),
		Start:         booked.Start(),
		End:           booked.End(),
		Units:         p.Units,
		Tier:          string(b.Tier),
		Days:          b.Days,
		Periods:       b.Periods,
		RemainderDays: b.RemainderDays,
		Amount:        b.Amount.Int64(),
	}, nil
}
