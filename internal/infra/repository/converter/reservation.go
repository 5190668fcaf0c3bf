package converter

import (
	"encoding/json"

	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// rateCardJSON is the audit snapshot stored in reservations.rate_card.
type rateCardJSON struct {
	PerDay    int64  `json:"perDay"`
	PerWeek   *int64 `json:"perWeek,omitempty"`
	PerMonth  *int64 `json:"perMonth,omitempty"`
	PerTicket int64  `json:"perTicket"`
}

func RateCardToJSON(c pricing.RateCard) ([]byte, error) {
	return json.Marshal(rateCardJSON{
		PerDay:    c.PerDay.Int64(),
		PerWeek:   moneyPtrToInt64(c.PerWeek),
		PerMonth:  moneyPtrToInt64(c.PerMonth),
		PerTicket: c.PerTicket.Int64(),
	})
}

func RateCardFromJSON(b []byte) (pricing.RateCard, error) {
	var v rateCardJSON
	if len(b) == 0 {
		return pricing.RateCard{}, nil
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return pricing.RateCard{}, errs.Wrap(err, "failed to decode rate card snapshot")
	}
	return pricing.RateCard{
		PerDay:    pricing.Money(v.PerDay),
		PerWeek:   int64PtrToMoney(v.PerWeek),
		PerMonth:  int64PtrToMoney(v.PerMonth),
		PerTicket: pricing.Money(v.PerTicket),
	}, nil
}

func ReservationToCreateParams(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	card, err := RateCardToJSON(res.RateCard())
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}

	return sqlc.CreateReservationParams{
		ID:          res.ID(),
		ResourceID:  res.ResourceID(),
		UserID:      res.UserID(),
		StartAt:     pgconv.TimeToPgtype(res.Span().Start()),
		EndAt:       pgconv.TimeToPgtype(res.Span().End()),
		Slot:        pgconv.NullableText(res.Slot()),
		Units:       pgconv.IntToInt32(res.Units()),
		Status:      res.Status().String(),
		TotalAmount: res.TotalAmount().Int64(),
		RateCard:    card,
		CreatedAt:   pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(res.UpdatedAt()),
	}, nil
}

func ReservationToStatusParams(res *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		ID:              res.ID(),
		Status:          res.Status().String(),
		MileageAtPickup: mileageToPgtype(res.MileageAtPickup()),
		MileageAtReturn: mileageToPgtype(res.MileageAtReturn()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromLockedRow(row sqlc.GetReservationForUpdateRow) (*reservation.Reservation, error) {
	card, err := RateCardFromJSON(row.RateCard)
	if err != nil {
		return nil, err
	}
	s, err := span.New(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt))
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation has an invalid span")
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored reservation has status %q", row.Status)
	}

	return reservation.ReconstructReservation(reservation.Snapshot{
		ID:              row.ID,
		ResourceID:      row.ResourceID,
		UserID:          row.UserID,
		Kind:            resource.Kind(row.Kind),
		Span:            s,
		Slot:            pgconv.TextOrEmpty(row.Slot),
		Units:           int(row.Units),
		Status:          status,
		TotalAmount:     pricing.Money(row.TotalAmount),
		RateCard:        card,
		MileageAtPickup: pgconv.Int64PtrFromPgtype(row.MileageAtPickup),
		MileageAtReturn: pgconv.Int64PtrFromPgtype(row.MileageAtReturn),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func mileageToPgtype(m *reservation.Mileage) pgtype.Int8 {
	if m == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: m.Int64(), Valid: true}
}

func moneyPtrToInt64(m *pricing.Money) *int64 {
	if m == nil {
		return nil
	}
	v := m.Int64()
	return &v
}

func int64PtrToMoney(v *int64) *pricing.Money {
	if v == nil {
		return nil
	}
	m := pricing.Money(*v)
	return &m
}
