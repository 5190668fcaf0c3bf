package converter

import (
	"booking-engine/internal/domain/expense"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"
)

func ExpenseToCreateParams(e *expense.Expense) sqlc.CreateExpenseParams {
	return sqlc.CreateExpenseParams{
		ID:         e.ID(),
		OwnerID:    e.OwnerID(),
		ResourceID: pgconv.UUIDPtrToPgtype(e.ResourceID()),
		SpentOn:    pgconv.DateToPgtype(e.Date()),
		Amount:     e.Amount().Int64(),
		Category:   e.Category(),
		Note:       e.Note(),
		CreatedAt:  pgconv.TimeToPgtype(e.CreatedAt()),
	}
}
