package calendar

import (
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"

	"github.com/google/uuid"
)

// Booking is the slice of an existing reservation the index needs.
type Booking struct {
	ID     uuid.UUID
	Span   span.Span
	Slot   string
	Units  int
	Status reservation.Status
}

type Request struct {
	Span  span.Span
	Units int
	Slot  string
}

// CheckAvailability decides whether req can be admitted next to existing.
// It never mutates anything; the same inputs always give the same decision.
// Evaluation order: span, weekday, slot, then overlap or capacity.
func CheckAvailability(res *resource.Resource, req Request, existing []Booking) (Decision, error) {
	if res == nil {
		return Decision{}, ErrResourceNotFound
	}
	if req.Span.IsZero() {
		return Decision{}, span.ErrInvalidSpan
	}
	if req.Units < 1 {
		return Decision{}, reservation.ErrInvalidUnits
	}

	if !res.IsOpenOn(req.Span.Start()) {
		return rejected(ReasonClosed), nil
	}

	switch res.Kind() {
	case resource.KindVehicle:
		return checkExclusive(req, existing), nil
	case resource.KindAttraction:
		if res.HasSlots() {
			if req.Slot == "" {
				return rejected(ReasonSlotRequired), nil
			}
			if !res.HasSlot(req.Slot) {
				return rejected(ReasonInvalidSlot), nil
			}
		}
		return checkShared(res, req, existing), nil
	default:
		return Decision{}, resource.ErrInvalidKind
	}
}

func checkExclusive(req Request, existing []Booking) Decision {
	conflicts := 0
	for _, b := range existing {
		if !b.Status.OccupiesCapacity() {
			continue
		}
		if b.Span.Overlaps(req.Span) {
			conflicts++
		}
	}
	if conflicts > 0 {
		return rejectedWithCapacity(ReasonConflict, 0, 1)
	}
	return available(1, 1)
}

func checkShared(res *resource.Resource, req Request, existing []Booking) Decision {
	day := span.DayOf(req.Span.Start(), res.Location())
	slotted := res.HasSlots()

	used := 0
	for _, b := range existing {
		if !b.Status.OccupiesCapacity() {
			continue
		}
		if !day.Contains(b.Span.Start()) {
			continue
		}
		// un-slotted bookings match every slot
		if slotted && b.Slot != "" && b.Slot != req.Slot {
			continue
		}
		used += b.Units
	}

	capacity := res.Capacity()
	remaining := max(0, capacity-used)
	if remaining < req.Units {
		return rejectedWithCapacity(ReasonCapacityExceeded, remaining, capacity)
	}
	return available(remaining, capacity)
}
