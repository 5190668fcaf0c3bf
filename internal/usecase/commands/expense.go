package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-engine/internal/domain/expense"
	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/user"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/pkg/patch"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidExpenseDate = errs.New("expense date must be YYYY-MM-DD")

type RecordExpenseCommand struct {
	// OwnerID defaults to the caller; only admins may record for others.
	OwnerID    *uuid.UUID
	ResourceID *uuid.UUID
	Date       string
	Amount     int64
	Category   string
	Note       string
}

type ExpenseView struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	ResourceID *uuid.UUID
	Date       string
	Amount     int64
	Category   string
	Note       string
	CreatedAt  time.Time
}

type ExpenseCommands interface {
	RecordExpense(ctx context.Context, cmd RecordExpenseCommand, actorID uuid.UUID, actorRole user.Role) (*ExpenseView, error)
}

type expenseUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator shared.SummaryInvalidator
	clock       clock.Clock
}

func NewExpenseUseCase(uow shared.UnitOfWork, invalidator shared.SummaryInvalidator, clk clock.Clock) ExpenseCommands {
	return &expenseUseCaseImpl{uow: uow, invalidator: invalidator, clock: clk}
}

func (uc *expenseUseCaseImpl) RecordExpense(ctx context.Context, cmd RecordExpenseCommand, actorID uuid.UUID, actorRole user.Role) (*ExpenseView, error) {
	ownerID := patch.Coalesce(cmd.OwnerID, actorID)
	if !user.CanManage(actorID, actorRole, ownerID) {
		return nil, errs.ErrForbidden
	}

	date, err := time.Parse(time.DateOnly, cmd.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidExpenseDate)
	}

	e, err := expense.NewExpense(ownerID, cmd.ResourceID, date, pricing.NewMoney(cmd.Amount), cmd.Category, cmd.Note, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if cmd.ResourceID != nil {
			res, err := tx.Reads().ResourceByID(ctx, *cmd.ResourceID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, errs.ErrResourceNotFound)
				}
				return err
			}
			if res.OwnerID() != ownerID {
				return errs.ErrForbidden
			}
		}
		return tx.Expenses().Create(ctx, tx.DB(), e)
	})
	if err != nil {
		return nil, err
	}

	if err := uc.invalidator.Invalidate(ctx, ownerID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate ledger cache", "owner_id", ownerID.String(), "error", err.Error())
	}

	return &ExpenseView{
		ID:         e.ID(),
		OwnerID:    e.OwnerID(),
		ResourceID: e.ResourceID(),
		Date:       e.Date().Format(time.DateOnly),
		Amount:     e.Amount().Int64(),
		Category:   e.Category(),
		Note:       e.Note(),
		CreatedAt:  e.CreatedAt(),
	}, nil
}
