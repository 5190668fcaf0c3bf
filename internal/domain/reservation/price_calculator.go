package reservation

import (
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"
)

type PriceCalculator interface {
	Quote(res *resource.Resource, s span.Span, units int) pricing.Breakdown
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (pc *DefaultPriceCalculator) Quote(res *resource.Resource, s span.Span, units int) pricing.Breakdown {
	switch res.Kind() {
	case resource.KindAttraction:
		return pricing.TicketBreakdown(res.RateCard(), units)
	case resource.KindVehicle:
		return pricing.VehicleBreakdown(res.RateCard(), s)
	default:
		return pricing.Breakdown{}
	}
}
