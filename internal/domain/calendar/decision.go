package calendar

import "booking-engine/internal/pkg/errs"

type Reason string

const (
	ReasonNone             Reason = ""
	ReasonConflict         Reason = "conflict"
	ReasonCapacityExceeded Reason = "capacity_exceeded"
	ReasonSlotRequired     Reason = "slot_required"
	ReasonInvalidSlot      Reason = "invalid_slot"
	ReasonClosed           Reason = "closed"
)

var (
	ErrResourceNotFound = errs.ErrResourceNotFound
	ErrConflict         = errs.New("requested span overlaps an existing reservation")
	ErrCapacityExceeded = errs.New("requested units exceed remaining capacity")
	ErrSlotRequired     = errs.New("a time slot is required for this resource")
	ErrInvalidSlot      = errs.New("time slot is not offered by this resource")
	ErrClosedOnDay      = errs.New("resource is closed on the requested day")

	// ErrUnknownReason is a rejection carrying no known Reason. It is a bug,
	// not a booking outcome, and surfaces as an internal error.
	ErrUnknownReason = errs.New("rejected decision has no known reason")
)

// Decision is the admission answer. Remaining and Capacity are set whenever
// capacity was evaluated.
type Decision struct {
	Available bool
	Remaining *int
	Capacity  *int
	Reason    Reason
}

func available(remaining, capacity int) Decision {
	return Decision{Available: true, Remaining: &remaining, Capacity: &capacity}
}

func rejected(reason Reason) Decision {
	return Decision{Available: false, Reason: reason}
}

func rejectedWithCapacity(reason Reason, remaining, capacity int) Decision {
	return Decision{Available: false, Reason: reason, Remaining: &remaining, Capacity: &capacity}
}

// Err maps an unavailable decision to its sentinel; nil when available.
func (d Decision) Err() error {
	if d.Available {
		return nil
	}
	switch d.Reason {
	case ReasonConflict:
		return ErrConflict
	case ReasonCapacityExceeded:
		return ErrCapacityExceeded
	case ReasonSlotRequired:
		return ErrSlotRequired
	case ReasonInvalidSlot:
		return ErrInvalidSlot
	case ReasonClosed:
		return ErrClosedOnDay
	default:
		return errs.Wrapf(ErrUnknownReason, "reason %q", string(d.Reason))
	}
}
