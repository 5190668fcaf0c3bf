//go:build unit || integration

package builder

import (
	"time"

	"booking-engine/internal/domain/calendar"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	ResourceID  uuid.UUID
	UserID      uuid.UUID
	Kind        string
	Span        span.Span
	Slot        string
	Units       int
	Status      string
	TotalAmount int64
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:          uuid.New(),
		ResourceID:  uuid.New(),
		UserID:      uuid.New(),
		Kind:        "vehicle",
		Span:        Days(Date(2025, time.January, 5), 5),
		Units:       1,
		Status:      "pending",
		TotalAmount: 50000,
		CreatedAt:   now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(reservation.Params{
		ID:          b.ID,
		ResourceID:  b.ResourceID,
		UserID:      b.UserID,
		Kind:        resource.Kind(b.Kind),
		Span:        b.Span,
		Slot:        b.Slot,
		Units:       b.Units,
		TotalAmount: pricing.Money(b.TotalAmount),
		Now:         b.CreatedAt,
	})
}

// BuildReconstructed skips validation and keeps Status as given.
func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	return reservation.ReconstructReservation(reservation.Snapshot{
		ID:          b.ID,
		ResourceID:  b.ResourceID,
		UserID:      b.UserID,
		Kind:        resource.Kind(b.Kind),
		Span:        b.Span,
		Slot:        b.Slot,
		Units:       b.Units,
		Status:      reservation.Status(b.Status),
		TotalAmount: pricing.Money(b.TotalAmount),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	})
}

func (b *ReservationBuilder) BuildBooking() calendar.Booking {
	return calendar.Booking{
		ID:     b.ID,
		Span:   b.Span,
		Slot:   b.Slot,
		Units:  b.Units,
		Status: reservation.Status(b.Status),
	}
}

// Fluent builder methods
func (b *ReservationBuilder) ForResource(r *resource.Resource) *ReservationBuilder {
	b.ResourceID = r.ID()
	b.Kind = r.Kind().String()
	return b
}

func (b *ReservationBuilder) WithSpan(s span.Span) *ReservationBuilder {
	b.Span = s
	return b
}

func (b *ReservationBuilder) WithUnits(n int) *ReservationBuilder {
	b.Units = n
	return b
}

func (b *ReservationBuilder) WithSlot(slot string) *ReservationBuilder {
	b.Slot = slot
	return b
}

func (b *ReservationBuilder) WithStatus(s string) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithAmount(v int64) *ReservationBuilder {
	b.TotalAmount = v
	return b
}
