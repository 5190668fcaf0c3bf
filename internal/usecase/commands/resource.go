package commands

import (
	"context"
	"time"

	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/user"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/pkg/patch"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterResourceCommand struct {
	// OwnerID defaults to the caller; only admins may register for others.
	OwnerID         *uuid.UUID
	Name            string
	Kind            string
	Capacity        int
	PerDay          int64
	PerWeek         *int64
	PerMonth        *int64
	PerTicket       int64
	AllowedWeekdays []int
	TimeSlots       []string
	TimeZone        string
}

type ResourceCommands interface {
	RegisterResource(ctx context.Context, cmd RegisterResourceCommand, actorID uuid.UUID, actorRole user.Role) (*queries.ResourceView, error)
}

type resourceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewResourceUseCase(uow shared.UnitOfWork, clk clock.Clock) ResourceCommands {
	return &resourceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *resourceUseCaseImpl) RegisterResource(ctx context.Context, cmd RegisterResourceCommand, actorID uuid.UUID, actorRole user.Role) (*queries.ResourceView, error) {
	ownerID := patch.Coalesce(cmd.OwnerID, actorID)
	if !user.CanManage(actorID, actorRole, ownerID) {
		return nil, errs.ErrForbidden
	}

	kind, err := resource.NewKind(cmd.Kind)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	weekdays := make([]time.Weekday, len(cmd.AllowedWeekdays))
	for i, d := range cmd.AllowedWeekdays {
		weekdays[i] = time.Weekday(d)
	}

	now := uc.clock.Now()
	res, err := resource.NewResource(resource.Params{
		OwnerID:  ownerID,
		Name:     cmd.Name,
		Kind:     kind,
		Capacity: cmd.Capacity,
		RateCard: pricing.RateCard{
			PerDay:    pricing.NewMoney(cmd.PerDay),
			PerWeek:   moneyPtr(cmd.PerWeek),
			PerMonth:  moneyPtr(cmd.PerMonth),
			PerTicket: pricing.NewMoney(cmd.PerTicket),
		},
		AllowedWeekdays: weekdays,
		TimeSlots:       cmd.TimeSlots,
		TimeZone:        cmd.TimeZone,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Resources().Create(ctx, tx.DB(), res)
	})
	if err != nil {
		return nil, err
	}
	return queries.NewResourceView(res), nil
}

func moneyPtr(v *int64) *pricing.Money {
	if v == nil {
		return nil
	}
	m := pricing.NewMoney(*v)
	return &m
}
