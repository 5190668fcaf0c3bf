package repository

import (
	"context"

	"booking-engine/internal/domain/expense"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/repository/converter"
	sqlc "booking-engine/internal/infra/sqlc/generated"
)

type ExpenseWriteQueries interface {
	CreateExpense(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateExpenseParams) error
}

type ExpenseRepository struct {
	queries ExpenseWriteQueries
}

func NewExpenseRepository(queries ExpenseWriteQueries) *ExpenseRepository {
	return &ExpenseRepository{
		queries: queries,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, tx sqlc.DBTX, e *expense.Expense) error {
	if err := r.queries.CreateExpense(ctx, tx, converter.ExpenseToCreateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to create expense", err)
	}
	return nil
}
