package response

import (
	"time"

	"booking-engine/internal/domain/calendar"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID        `json:"id"`
	ResourceID      uuid.UUID        `json:"resourceId"`
	ResourceName    string           `json:"resourceName"`
	OwnerID         uuid.UUID        `json:"ownerId"`
	UserID          uuid.UUID        `json:"userId"`
	Kind            string           `json:"kind"`
	Start           time.Time        `json:"start"`
	End             time.Time        `json:"end"`
	Slot            string           `json:"slot,omitempty"`
	Units           int              `json:"units"`
	Status          string           `json:"status"`
	TotalAmount     int64            `json:"totalAmount"`
	RateCard        RateCardResponse `json:"rateCard" copier:"-"`
	MileageAtPickup *int64           `json:"mileageAtPickup,omitempty"`
	MileageAtReturn *int64           `json:"mileageAtReturn,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	Kind         string    `json:"kind"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Slot         string    `json:"slot,omitempty"`
	Units        int       `json:"units"`
	Status       string    `json:"status"`
	TotalAmount  int64     `json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReservationPageResponse struct {
	Items      []*ReservationListResponse `json:"items"`
	NextCursor *string                    `json:"nextCursor"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	out := &ReservationResponse{}
	copyFields(out, v)
	out.RateCard = FromRateCardView(v.RateCard)
	return out
}

func FromReservationListItem(v *queries.ReservationListItem) *ReservationListResponse {
	out := &ReservationListResponse{}
	copyFields(out, v)
	return out
}

func FromReservationPage(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationPageResponse {
	out := &ReservationPageResponse{Items: make([]*ReservationListResponse, len(items))}
	for i, it := range items {
		out.Items[i] = FromReservationListItem(it)
	}
	if next != nil {
		after := next.After
		out.NextCursor = &after
	}
	return out
}

// DecisionResponse is the detail of a rejected booking.
type DecisionResponse struct {
	Available bool   `json:"available"`
	Remaining *int   `json:"remaining,omitempty"`
	Capacity  *int   `json:"capacity,omitempty"`
	Reason    string `json:"reason"`
}

func FromDecision(d calendar.Decision) DecisionResponse {
	return DecisionResponse{
		Available: d.Available,
		Remaining: d.Remaining,
		Capacity:  d.Capacity,
		Reason:    string(d.Reason),
	}
}
