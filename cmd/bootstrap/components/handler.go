package components

import (
	"booking-engine/internal/handler"
	"booking-engine/internal/handler/api"
	"booking-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewReservationHandler,
		api.NewExpenseHandler,
		api.NewLedgerHandler,
		api.NewUserHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	resource *api.ResourceHandler,
	reservation *api.ReservationHandler,
	expense *api.ExpenseHandler,
	ledger *api.LedgerHandler,
	user *api.UserHandler,
) handler.Handlers {
	return handler.Handlers{
		Resource:    resource,
		Reservation: reservation,
		Expense:     expense,
		Ledger:      ledger,
		User:        user,
	}
}
