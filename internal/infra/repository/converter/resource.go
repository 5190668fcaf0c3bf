package converter

import (
	"time"

	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/resource"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ResourceToCreateParams(r *resource.Resource) sqlc.CreateResourceParams {
	card := r.RateCard()
	return sqlc.CreateResourceParams{
		ID:              r.ID(),
		OwnerID:         r.OwnerID(),
		Name:            r.Name(),
		Kind:            r.Kind().String(),
		Capacity:        pgconv.IntToInt32(r.Capacity()),
		PerDay:          card.PerDay.Int64(),
		PerWeek:         moneyToPgtype(card.PerWeek),
		PerMonth:        moneyToPgtype(card.PerMonth),
		PerTicket:       card.PerTicket.Int64(),
		AllowedWeekdays: weekdaysToInt32(r.AllowedWeekdays()),
		TimeSlots:       r.TimeSlots(),
		TimeZone:        r.TimeZone(),
		CreatedAt:       pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceFromRow(row sqlc.Resource) *resource.Resource {
	return resource.ReconstructResource(resource.Params{
		ID:       row.ID,
		OwnerID:  row.OwnerID,
		Name:     row.Name,
		Kind:     resource.Kind(row.Kind),
		Capacity: int(row.Capacity),
		RateCard: pricing.RateCard{
			PerDay:    pricing.Money(row.PerDay),
			PerWeek:   moneyFromPgtype(row.PerWeek),
			PerMonth:  moneyFromPgtype(row.PerMonth),
			PerTicket: pricing.Money(row.PerTicket),
		},
		AllowedWeekdays: weekdaysFromInt32(row.AllowedWeekdays),
		TimeSlots:       row.TimeSlots,
		TimeZone:        row.TimeZone,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func moneyToPgtype(m *pricing.Money) pgtype.Int8 {
	return pgconv.Int64PtrToPgtype(moneyPtrToInt64(m))
}

func moneyFromPgtype(v pgtype.Int8) *pricing.Money {
	return int64PtrToMoney(pgconv.Int64PtrFromPgtype(v))
}

func weekdaysToInt32(days []time.Weekday) []int32 {
	out := make([]int32, 0, len(days))
	for _, d := range days {
		out = append(out, int32(d))
	}
	return out
}

func weekdaysFromInt32(days []int32) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d))
	}
	return out
}
