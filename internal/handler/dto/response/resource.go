package response

import (
	"time"

	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type RateCardResponse struct {
	PerDay    int64  `json:"perDay"`
	PerWeek   *int64 `json:"perWeek,omitempty"`
	PerMonth  *int64 `json:"perMonth,omitempty"`
	PerTicket int64  `json:"perTicket"`
}

func FromRateCardView(v queries.RateCardView) RateCardResponse {
	return RateCardResponse{
		PerDay:    v.PerDay,
		PerWeek:   v.PerWeek,
		PerMonth:  v.PerMonth,
		PerTicket: v.PerTicket,
	}
}

type ResourceResponse struct {
	ID              uuid.UUID        `json:"id"`
	OwnerID         uuid.UUID        `json:"ownerId"`
	Name            string           `json:"name"`
	Kind            string           `json:"kind"`
	Capacity        int              `json:"capacity"`
	RateCard        RateCardResponse `json:"rateCard" copier:"-"`
	AllowedWeekdays []int            `json:"allowedWeekdays"`
	TimeSlots       []string         `json:"timeSlots"`
	TimeZone        string           `json:"timeZone"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	out := &ResourceResponse{}
	copyFields(out, v)
	out.RateCard = FromRateCardView(v.RateCard)
	if out.AllowedWeekdays == nil {
		out.AllowedWeekdays = []int{}
	}
	if out.TimeSlots == nil {
		out.TimeSlots = []string{}
	}
	return out
}

func FromResourceViews(vs []*queries.ResourceView) []*ResourceResponse {
	out := make([]*ResourceResponse, len(vs))
	for i, v := range vs {
		out[i] = FromResourceView(v)
	}
	return out
}

type AvailabilityResponse struct {
	ResourceID uuid.UUID `json:"resourceId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Slot       string    `json:"slot,omitempty"`
	Units      int       `json:"units"`
	Available  bool      `json:"available"`
	Remaining  *int      `json:"remaining,omitempty"`
	Capacity   *int      `json:"capacity,omitempty"`
	Reason     string    `json:"reason,omitempty"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	out := &AvailabilityResponse{}
	copyFields(out, v)
	return out
}

type QuoteResponse struct {
	ResourceID    uuid.UUID `json:"resourceId"`
	Kind          string    `json:"kind"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Units         int       `json:"units"`
	Tier          string    `json:"tier"`
	Days          int       `json:"days"`
	Periods       int       `json:"periods"`
	RemainderDays int       `json:"remainderDays"`
	Amount        int64     `json:"amount"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	out := &QuoteResponse{}
	copyFields(out, v)
	return out
}
