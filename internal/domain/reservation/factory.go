package reservation

import (
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"
	"booking-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation prices the request against the resource's current rate
// card and snapshots that card onto the reservation. Slots are dropped for
// resources that define none.
func (f *Factory) CreateReservation(
	res *resource.Resource,
	userID uuid.UUID,
	requested span.Span,
	slot string,
	units int,
) (*Reservation, error) {
	booked := res.BookingSpan(requested)
	if !res.HasSlots() {
		slot = ""
	}

	quote := f.PriceCalculator.Quote(res, booked, units)
	if quote.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	return NewReservation(Params{
		ResourceID:  res.ID(),
		UserID:      userID,
		Kind:        res.Kind(),
		Span:        booked,
		Slot:        slot,
		Units:       units,
		TotalAmount: quote.Amount,
		RateCard:    res.RateCard(),
		Now:         f.Clock.Now(),
	})
}
