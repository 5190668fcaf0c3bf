package resource

import (
	"slices"
	"strings"
	"time"

	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/span"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errs.New("resource name cannot be empty")
	ErrResourceNameTooLong = errs.New("resource name is too long (max 255 characters)")
	ErrInvalidKind         = errs.New("invalid resource kind")
	ErrInvalidCapacity     = errs.New("capacity must be at least 1")
	ErrInvalidWeekday      = errs.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTimeSlot     = errs.New("time slot name cannot be empty")
	ErrDuplicateTimeSlot   = errs.New("duplicate time slot name")
	ErrSlotsNotSupported   = errs.New("time slots are only supported for attractions")
	ErrInvalidTimeZone     = errs.New("invalid time zone")
	ErrMissingDailyRate    = errs.New("vehicle rate card requires a positive per-day price")
)

const (
	MaxResourceNameLength = 255
	DefaultTimeZone       = "UTC"
)

type Resource struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	name            string
	kind            Kind
	capacity        int
	rateCard        pricing.RateCard
	allowedWeekdays []time.Weekday
	timeSlots       []string
	timeZone        string
	location        *time.Location
	createdAt       time.Time
	updatedAt       time.Time
}

type Params struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Kind            Kind
	Capacity        int
	RateCard        pricing.RateCard
	AllowedWeekdays []time.Weekday
	TimeSlots       []string
	TimeZone        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewResource(p Params) (*Resource, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return nil, ErrResourceNameTooLong
	}
	if !p.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if err := p.RateCard.Validate(); err != nil {
		return nil, err
	}

	capacity := p.Capacity
	switch p.Kind {
	case KindVehicle:
		capacity = 1
		if p.RateCard.PerDay <= 0 {
			return nil, ErrMissingDailyRate
		}
		if len(p.TimeSlots) > 0 {
			return nil, ErrSlotsNotSupported
		}
	case KindAttraction:
		if capacity < 1 {
			return nil, ErrInvalidCapacity
		}
	}

	weekdays, err := normalizeWeekdays(p.AllowedWeekdays)
	if err != nil {
		return nil, err
	}
	slots, err := normalizeSlots(p.TimeSlots)
	if err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(p.TimeZone)
	if tz == "" {
		tz = DefaultTimeZone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeZone)
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Resource{
		id:              id,
		ownerID:         p.OwnerID,
		name:            name,
		kind:            p.Kind,
		capacity:        capacity,
		rateCard:        p.RateCard,
		allowedWeekdays: weekdays,
		timeSlots:       slots,
		timeZone:        tz,
		location:        loc,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

// ReconstructResource rebuilds a persisted resource. An unknown time zone
// falls back to UTC so stored rows stay readable.
func ReconstructResource(p Params) *Resource {
	loc, err := time.LoadLocation(p.TimeZone)
	tz := p.TimeZone
	if err != nil || tz == "" {
		loc = time.UTC
		tz = DefaultTimeZone
	}
	capacity := p.Capacity
	if p.Kind == KindVehicle {
		capacity = 1
	}
	return &Resource{
		id:              p.ID,
		ownerID:         p.OwnerID,
		name:            p.Name,
		kind:            p.Kind,
		capacity:        capacity,
		rateCard:        p.RateCard,
		allowedWeekdays: p.AllowedWeekdays,
		timeSlots:       p.TimeSlots,
		timeZone:        tz,
		location:        loc,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}
}

func normalizeWeekdays(in []time.Weekday) ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(in))
	for _, d := range in {
		if d < time.Sunday || d > time.Saturday {
			return nil, ErrInvalidWeekday
		}
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return out, nil
}

func normalizeSlots(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, s := range in {
		name := strings.TrimSpace(s)
		if name == "" {
			return nil, ErrInvalidTimeSlot
		}
		if slices.Contains(out, name) {
			return nil, ErrDuplicateTimeSlot
		}
		out = append(out, name)
	}
	return out, nil
}

func (r *Resource) IsExclusive() bool { return r.kind == KindVehicle }
func (r *Resource) HasSlots() bool    { return len(r.timeSlots) > 0 }

func (r *Resource) HasSlot(name string) bool {
	return slices.Contains(r.timeSlots, name)
}

// IsOpenOn reports whether t falls on an allowed weekday in the resource's
// time zone. No declared weekdays means open every day.
func (r *Resource) IsOpenOn(t time.Time) bool {
	if len(r.allowedWeekdays) == 0 {
		return true
	}
	return slices.Contains(r.allowedWeekdays, t.In(r.location).Weekday())
}

// BookingSpan normalizes a requested span: attractions are booked per
// calendar day, vehicles keep the requested interval.
func (r *Resource) BookingSpan(s span.Span) span.Span {
	if r.kind == KindAttraction {
		return span.DayOf(s.Start(), r.location)
	}
	return s
}

func (r *Resource) ID() uuid.UUID                   { return r.id }
func (r *Resource) OwnerID() uuid.UUID              { return r.ownerID }
func (r *Resource) Name() string                    { return r.name }
func (r *Resource) Kind() Kind                      { return r.kind }
func (r *Resource) Capacity() int                   { return r.capacity }
func (r *Resource) RateCard() pricing.RateCard      { return r.rateCard }
func (r *Resource) AllowedWeekdays() []time.Weekday { return slices.Clone(r.allowedWeekdays) }
func (r *Resource) TimeSlots() []string             { return slices.Clone(r.timeSlots) }
func (r *Resource) TimeZone() string                { return r.timeZone }
func (r *Resource) Location() *time.Location        { return r.location }
func (r *Resource) CreatedAt() time.Time            { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time            { return r.updatedAt }
