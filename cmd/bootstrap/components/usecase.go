package components

import (
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewDefaultPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewReservationCommands,
		commands.NewResourceUseCase,
		commands.NewExpenseUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewResourceQueries,
		queries.NewAvailabilityQueries,
		queries.NewLedgerQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewReservationCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	invalidator shared.SummaryInvalidator,
	clk clock.Clock,
) commands.ReservationCommands {
	return commands.NewReservationUseCase(uow, factory, reservationQueries, invalidator, clk, cfg.Booking.IdempotencyTTL)
}
