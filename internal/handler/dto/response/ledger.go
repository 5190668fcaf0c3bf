package response

import (
	"time"

	"booking-engine/internal/domain/ledger"
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type PeriodResponse struct {
	Range string    `json:"range"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
	Count    int    `json:"count"`
}

type LedgerSummaryResponse struct {
	OwnerID       uuid.UUID      `json:"ownerId"`
	ResourceID    *uuid.UUID     `json:"resourceId,omitempty"`
	Period        PeriodResponse `json:"period"`
	RevenueTotal  int64          `json:"revenueTotal"`
	ExpenseTotal  int64          `json:"expenseTotal"`
	Profit        int64          `json:"profit"`
	CommissionBps int64          `json:"commissionBps"`
	Commission    int64          `json:"commission"`
	NetEarnings   int64          `json:"netEarnings"`
	RevenueByKind struct {
		Vehicle    int64 `json:"vehicle"`
		Attraction int64 `json:"attraction"`
	} `json:"revenueByKind"`
	ByCategory []CategoryTotalResponse `json:"byCategory"`
	Counts     struct {
		Reservations int `json:"reservations"`
		Expenses     int `json:"expenses"`
	} `json:"counts"`
}

func FromLedgerSummary(s *ledger.Summary) *LedgerSummaryResponse {
	out := &LedgerSummaryResponse{
		OwnerID:    s.OwnerID,
		ResourceID: s.ResourceID,
		Period: PeriodResponse{
			Range: string(s.Period.Range),
			Start: s.Period.Start,
			End:   s.Period.End,
		},
		RevenueTotal:  s.RevenueTotal.Int64(),
		ExpenseTotal:  s.ExpenseTotal.Int64(),
		Profit:        s.Profit.Int64(),
		CommissionBps: s.CommissionBps,
		Commission:    s.Commission.Int64(),
		NetEarnings:   s.NetEarnings.Int64(),
		ByCategory:    make([]CategoryTotalResponse, len(s.ByCategory)),
	}
	out.RevenueByKind.Vehicle = s.RevenueByKind.Vehicle.Int64()
	out.RevenueByKind.Attraction = s.RevenueByKind.Attraction.Int64()
	for i, c := range s.ByCategory {
		out.ByCategory[i] = CategoryTotalResponse{Category: c.Category, Total: c.Total.Int64(), Count: c.Count}
	}
	out.Counts.Reservations = s.Counts.Reservations
	out.Counts.Expenses = s.Counts.Expenses
	return out
}

type ExpenseResponse struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    uuid.UUID  `json:"ownerId"`
	ResourceID *uuid.UUID `json:"resourceId,omitempty"`
	Date       string     `json:"date"`
	Amount     int64      `json:"amount"`
	Category   string     `json:"category"`
	Note       string     `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func FromExpenseView(v *commands.ExpenseView) *ExpenseResponse {
	out := &ExpenseResponse{}
	copyFields(out, v)
	return out
}
