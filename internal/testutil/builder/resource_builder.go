//go:build unit || integration

package builder

import (
	"time"

	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Kind            string
	Capacity        int
	PerDay          int64
	PerWeek         *int64
	PerMonth        *int64
	PerTicket       int64
	AllowedWeekdays []time.Weekday
	TimeSlots       []string
	TimeZone        string
}

// NewVehicleBuilder defaults to perDay=10000, perWeek=60000.
func NewVehicleBuilder() *ResourceBuilder {
	week := int64(60000)
	return &ResourceBuilder{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "Compact Car",
		Kind:     "vehicle",
		Capacity: 1,
		PerDay:   10000,
		PerWeek:  &week,
		TimeZone: "UTC",
	}
}

func NewAttractionBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      "Harbour Cruise",
		Kind:      "attraction",
		Capacity:  50,
		PerTicket: 2500,
		TimeZone:  "UTC",
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) RateCard() pricing.RateCard {
	card := pricing.RateCard{PerDay: pricing.Money(b.PerDay), PerTicket: pricing.Money(b.PerTicket)}
	if b.PerWeek != nil {
		w := pricing.Money(*b.PerWeek)
		card.PerWeek = &w
	}
	if b.PerMonth != nil {
		m := pricing.Money(*b.PerMonth)
		card.PerMonth = &m
	}
	return card
}

func (b *ResourceBuilder) Params() resource.Params {
	now := time.Now()
	return resource.Params{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		Name:            b.Name,
		Kind:            resource.Kind(b.Kind),
		Capacity:        b.Capacity,
		RateCard:        b.RateCard(),
		AllowedWeekdays: b.AllowedWeekdays,
		TimeSlots:       b.TimeSlots,
		TimeZone:        b.TimeZone,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Build methods
func (b *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	return resource.NewResource(b.Params())
}

func (b *ResourceBuilder) MustBuild() *resource.Resource {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

// Fluent builder methods
func (b *ResourceBuilder) WithOwner(id uuid.UUID) *ResourceBuilder {
	b.OwnerID = id
	return b
}

func (b *ResourceBuilder) WithCapacity(c int) *ResourceBuilder {
	b.Capacity = c
	return b
}

func (b *ResourceBuilder) WithSlots(slots ...string) *ResourceBuilder {
	b.TimeSlots = slots
	return b
}

func (b *ResourceBuilder) WithWeekdays(days ...time.Weekday) *ResourceBuilder {
	b.AllowedWeekdays = days
	return b
}

