package readstore

import (
	"context"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/infra"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID loads a user row owned by the auth service. Rows whose email or
// role no longer validate are reported as DB failures rather than trusted.
func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has an invalid email", err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has an invalid role", err)
	}

	return user.ReconstructUser(row.ID, email, role, row.IsActive, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
