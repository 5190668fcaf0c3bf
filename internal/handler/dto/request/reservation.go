package request

import (
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ResourceID uuid.UUID `json:"resourceId" binding:"required"`
	Start      string    `json:"start" binding:"required"`
	// End may be omitted for single-day attraction bookings.
	End   string `json:"end"`
	Slot  string `json:"slot" binding:"max=64"`
	Units int    `json:"units" binding:"omitempty,min=1,max=10000"`
}

// ToCommand defaults units to one.
func (r CreateReservationRequest) ToCommand() commands.CreateReservationCommand {
	units := r.Units
	if units == 0 {
		units = 1
	}
	return commands.CreateReservationCommand{
		ResourceID: r.ResourceID,
		Start:      r.Start,
		End:        r.End,
		Slot:       r.Slot,
		Units:      units,
	}
}

// TransitionRequest is the optional body of status transitions. Mileage is
// read only by pickup and return.
type TransitionRequest struct {
	Mileage *int64 `json:"mileage" binding:"omitempty,min=0"`
}

type ListReservationsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
