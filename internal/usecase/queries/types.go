package queries

import (
	"time"

	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/resource"

	"github.com/google/uuid"
)

// RateCardView flattens a rate card for read models.
type RateCardView struct {
	PerDay    int64
	PerWeek   *int64
	PerMonth  *int64
	PerTicket int64
}

func NewRateCardView(c pricing.RateCard) RateCardView {
	v := RateCardView{PerDay: c.PerDay.Int64(), PerTicket: c.PerTicket.Int64()}
	if c.PerWeek != nil {
		w := c.PerWeek.Int64()
		v.PerWeek = &w
	}
	if c.PerMonth != nil {
		m := c.PerMonth.Int64()
		v.PerMonth = &m
	}
	return v
}

type ResourceView struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Kind            string
	Capacity        int
	RateCard        RateCardView
	AllowedWeekdays []int
	TimeSlots       []string
	TimeZone        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewResourceView(r *resource.Resource) *ResourceView {
	days := make([]int, 0, len(r.AllowedWeekdays()))
	for _, d := range r.AllowedWeekdays() {
		days = append(days, int(d))
	}
	return &ResourceView{
		ID:              r.ID(),
		OwnerID:         r.OwnerID(),
		Name:            r.Name(),
		Kind:            r.Kind().String(),
		Capacity:        r.Capacity(),
		RateCard:        NewRateCardView(r.RateCard()),
		AllowedWeekdays: days,
		TimeSlots:       r.TimeSlots(),
		TimeZone:        r.TimeZone(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

type ReservationView struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	ResourceName    string
	OwnerID         uuid.UUID
	UserID          uuid.UUID
	Kind            string
	Start           time.Time
	End             time.Time
	Slot            string
	Units           int
	Status          string
	TotalAmount     int64
	RateCard        RateCardView
	MileageAtPickup *int64
	MileageAtReturn *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ReservationListItem struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	Kind         string
	Start        time.Time
	End          time.Time
	Slot         string
	Units        int
	Status       string
	TotalAmount  int64
	CreatedAt    time.Time
}

type UserView struct {
	ID        uuid.UUID
	Email     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
}

type QuoteView struct {
	ResourceID    uuid.UUID
	Kind          string
	Start         time.Time
	End           time.Time
	Units         int
	Tier          string
	Days          int
	Periods       int
	RemainderDays int
	Amount        int64
}

type AvailabilityView struct {
	ResourceID uuid.UUID
	Start      time.Time
	End        time.Time
	Slot       string
	Units      int
	Available  bool
	Remaining  *int
	Capacity   *int
	Reason     string
}
