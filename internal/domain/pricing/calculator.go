package pricing

import "booking-engine/internal/domain/span"

type Tier string

const (
	TierDaily   Tier = "daily"
	TierWeekly  Tier = "weekly"
	TierMonthly Tier = "monthly"
	TierTicket  Tier = "ticket"
)

// Breakdown explains how an amount was derived so it can be shown in quotes
// and recomputed from a persisted rate card snapshot.
type Breakdown struct {
	Tier          Tier
	Days          int
	Periods       int
	RemainderDays int
	Units         int
	Amount        Money
}

// ComputeCharge prices a vehicle rental. Exactly one tier applies: the
// largest threshold met wins and tiers never nest.
func ComputeCharge(card RateCard, s span.Span) Money {
	return VehicleBreakdown(card, s).Amount
}

func VehicleBreakdown(card RateCard, s span.Span) Breakdown {
	days := s.Days()

	switch {
	case card.HasMonthly() && days >= DaysPerMonth:
		months := days / DaysPerMonth
		rem := days % DaysPerMonth
		amount := card.PerMonth.Times(int64(months)).Add(remainderCharge(card, rem))
		return Breakdown{Tier: TierMonthly, Days: days, Periods: months, RemainderDays: rem, Units: 1, Amount: amount}

	case card.HasWeekly() && days >= DaysPerWeek:
		weeks := days / DaysPerWeek
		rem := days % DaysPerWeek
		amount := card.PerWeek.Times(int64(weeks)).Add(card.PerDay.Times(int64(rem)))
		return Breakdown{Tier: TierWeekly, Days: days, Periods: weeks, RemainderDays: rem, Units: 1, Amount: amount}

	default:
		return Breakdown{Tier: TierDaily, Days: days, Periods: days, Units: 1, Amount: card.PerDay.Times(int64(days))}
	}
}

// remainderCharge prices leftover days of a monthly decomposition at the
// weekly day rate when a weekly tier exists, else at the daily rate.
func remainderCharge(card RateCard, days int) Money {
	if days == 0 {
		return 0
	}
	if card.HasWeekly() {
		return card.PerWeek.MulRatio(int64(days), DaysPerWeek)
	}
	return card.PerDay.Times(int64(days))
}

// TicketCharge prices an attraction booking: flat per ticket, no tiering.
func TicketCharge(card RateCard, units int) Money {
	return card.PerTicket.Times(int64(units))
}

func TicketBreakdown(card RateCard, units int) Breakdown {
	return Breakdown{Tier: TierTicket, Units: units, Amount: TicketCharge(card, units)}
}
