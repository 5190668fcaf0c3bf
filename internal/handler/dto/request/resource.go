package request

import (
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RateCardRequest struct {
	PerDay    int64  `json:"perDay" binding:"min=0"`
	PerWeek   *int64 `json:"perWeek" binding:"omitempty,min=0"`
	PerMonth  *int64 `json:"perMonth" binding:"omitempty,min=0"`
	PerTicket int64  `json:"perTicket" binding:"min=0"`
}

type RegisterResourceRequest struct {
	OwnerID         *uuid.UUID      `json:"ownerId"`
	Name            string          `json:"name" binding:"required,max=255"`
	Kind            string          `json:"kind" binding:"required,oneof=vehicle attraction"`
	Capacity        int             `json:"capacity" binding:"min=0"`
	RateCard        RateCardRequest `json:"rateCard" copier:"-"`
	AllowedWeekdays []int           `json:"allowedWeekdays" binding:"omitempty,dive,min=0,max=6"`
	TimeSlots       []string        `json:"timeSlots" binding:"omitempty,dive,required,max=64"`
	TimeZone        string          `json:"timeZone"`
}

func (r RegisterResourceRequest) ToCommand() (commands.RegisterResourceCommand, error) {
	var cmd commands.RegisterResourceCommand
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.RegisterResourceCommand{}, err
	}
	cmd.PerDay = r.RateCard.PerDay
	cmd.PerWeek = r.RateCard.PerWeek
	cmd.PerMonth = r.RateCard.PerMonth
	cmd.PerTicket = r.RateCard.PerTicket
	return cmd, nil
}

// SpanQuery carries the booking window of availability and quote lookups.
type SpanQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end"`
	Units int    `form:"units,default=1" binding:"min=1,max=10000"`
	Slot  string `form:"slot"`
}

func (q SpanQuery) ToParams(resourceID uuid.UUID) queries.AvailabilityParams {
	return queries.AvailabilityParams{
		ResourceID: resourceID,
		Start:      q.Start,
		End:        q.End,
		Units:      q.Units,
		Slot:       q.Slot,
	}
}
