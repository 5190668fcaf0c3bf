package pricing

import "booking-engine/internal/pkg/errs"

var ErrInvalidRateCard = errs.New("invalid rate card")

const (
	DaysPerWeek  = 7
	DaysPerMonth = 30
)

// RateCard holds owner-supplied prices. PerWeek and PerMonth are optional
// discounted tiers for vehicles; attractions only use PerTicket.
type RateCard struct {
	PerDay    Money
	PerWeek   *Money
	PerMonth  *Money
	PerTicket Money
}

func (c RateCard) Validate() error {
	if c.PerDay.IsNegative() || c.PerTicket.IsNegative() {
		return ErrInvalidRateCard
	}
	if c.PerWeek != nil && c.PerWeek.IsNegative() {
		return ErrInvalidRateCard
	}
	if c.PerMonth != nil && c.PerMonth.IsNegative() {
		return ErrInvalidRateCard
	}
	return nil
}

func (c RateCard) HasWeekly() bool  { return c.PerWeek != nil }
func (c RateCard) HasMonthly() bool { return c.PerMonth != nil }
