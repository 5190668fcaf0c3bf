package components

import (
	"booking-engine/internal/infra/readstore"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/infra/uow"
	"booking-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are created per transaction by the unit of work, so
// only the read side is provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Resource
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ResourceReadQueries)),
		),
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.BookingReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LedgerReadQueries)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
