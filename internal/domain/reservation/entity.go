package reservation

import (
	"time"

	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errs.New("invalid reservation status")
	ErrInvalidTransition    = errs.New("invalid reservation status transition")
	ErrInvalidUnits         = errs.New("units requested must be between 1 and 10000")
	ErrNegativeAmount       = errs.New("total amount cannot be negative")
	ErrInvalidMileage       = errs.New("mileage cannot be negative")
	ErrMileageDecreased     = errs.New("return mileage cannot be lower than pickup mileage")
	ErrMileageNotApplicable = errs.New("mileage is only recorded for vehicles")
)

type Reservation struct {
	id              uuid.UUID
	resourceID      uuid.UUID
	userID          uuid.UUID
	kind            resource.Kind
	span            span.Span
	slot            string
	units           Units
	status          Status
	totalAmount     pricing.Money
	rateCard        pricing.RateCard
	mileageAtPickup *Mileage
	mileageAtReturn *Mileage
	createdAt       time.Time
	updatedAt       time.Time
}

type Params struct {
	ID          uuid.UUID
	ResourceID  uuid.UUID
	UserID      uuid.UUID
	Kind        resource.Kind
	Span        span.Span
	Slot        string
	Units       int
	TotalAmount pricing.Money
	RateCard    pricing.RateCard
	Now         time.Time
}

// NewReservation creates a pending reservation. The amount is fixed here and
// never recomputed; the rate card is kept as an audit snapshot.
func NewReservation(p Params) (*Reservation, error) {
	if p.Span.IsZero() {
		return nil, span.ErrInvalidSpan
	}
	units, err := NewUnits(p.Units)
	if err != nil {
		return nil, err
	}
	if p.TotalAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if !p.Kind.IsValid() {
		return nil, resource.ErrInvalidKind
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Reservation{
		id:          id,
		resourceID:  p.ResourceID,
		userID:      p.UserID,
		kind:        p.Kind,
		span:        p.Span,
		slot:        p.Slot,
		units:       units,
		status:      StatusPending,
		totalAmount: p.TotalAmount,
		rateCard:    p.RateCard,
		createdAt:   p.Now,
		updatedAt:   p.Now,
	}, nil
}

type Snapshot struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	UserID          uuid.UUID
	Kind            resource.Kind
	Span            span.Span
	Slot            string
	Units           int
	Status          Status
	TotalAmount     pricing.Money
	RateCard        pricing.RateCard
	MileageAtPickup *int64
	MileageAtReturn *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructReservation(s Snapshot) *Reservation {
	r := &Reservation{
		id:          s.ID,
		resourceID:  s.ResourceID,
		userID:      s.UserID,
		kind:        s.Kind,
		span:        s.Span,
		slot:        s.Slot,
		units:       Units{value: s.Units},
		status:      s.Status,
		totalAmount: s.TotalAmount,
		rateCard:    s.RateCard,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
	if s.MileageAtPickup != nil {
		r.mileageAtPickup = &Mileage{value: *s.MileageAtPickup}
	}
	if s.MileageAtReturn != nil {
		r.mileageAtReturn = &Mileage{value: *s.MileageAtReturn}
	}
	return r
}

func (r *Reservation) transition(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return errs.Wrap(ErrInvalidTransition, string(r.status)+" -> "+string(next))
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) Confirm(now time.Time) error {
	return r.transition(StatusConfirmed, now)
}

func (r *Reservation) Cancel(now time.Time) error {
	return r.transition(StatusCancelled, now)
}

// StartRental moves a confirmed reservation to active, recording the
// odometer for vehicles.
func (r *Reservation) StartRental(mileage *int64, now time.Time) error {
	m, err := r.checkMileage(mileage)
	if err != nil {
		return err
	}
	if err := r.transition(StatusActive, now); err != nil {
		return err
	}
	r.mileageAtPickup = m
	return nil
}

func (r *Reservation) Complete(mileage *int64, now time.Time) error {
	m, err := r.checkMileage(mileage)
	if err != nil {
		return err
	}
	if m != nil && r.mileageAtPickup != nil && m.value < r.mileageAtPickup.value {
		return ErrMileageDecreased
	}
	if err := r.transition(StatusCompleted, now); err != nil {
		return err
	}
	r.mileageAtReturn = m
	return nil
}

func (r *Reservation) checkMileage(v *int64) (*Mileage, error) {
	if v == nil {
		return nil, nil
	}
	if r.kind != resource.KindVehicle {
		return nil, ErrMileageNotApplicable
	}
	m, err := NewMileage(*v)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Reservation) Snapshot() Snapshot {
	s := Snapshot{
		ID:          r.id,
		ResourceID:  r.resourceID,
		UserID:      r.userID,
		Kind:        r.kind,
		Span:        r.span,
		Slot:        r.slot,
		Units:       r.units.Int(),
		Status:      r.status,
		TotalAmount: r.totalAmount,
		RateCard:    r.rateCard,
		CreatedAt:   r.createdAt,
		UpdatedAt:   r.updatedAt,
	}
	if r.mileageAtPickup != nil {
		v := r.mileageAtPickup.Int64()
		s.MileageAtPickup = &v
	}
	if r.mileageAtReturn != nil {
		v := r.mileageAtReturn.Int64()
		s.MileageAtReturn = &v
	}
	return s
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) ResourceID() uuid.UUID      { return r.resourceID }
func (r *Reservation) UserID() uuid.UUID          { return r.userID }
func (r *Reservation) Kind() resource.Kind        { return r.kind }
func (r *Reservation) Span() span.Span            { return r.span }
func (r *Reservation) Slot() string               { return r.slot }
func (r *Reservation) Units() int                 { return r.units.Int() }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) TotalAmount() pricing.Money { return r.totalAmount }
func (r *Reservation) RateCard() pricing.RateCard { return r.rateCard }
func (r *Reservation) MileageAtPickup() *Mileage  { return r.mileageAtPickup }
func (r *Reservation) MileageAtReturn() *Mileage  { return r.mileageAtReturn }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }
