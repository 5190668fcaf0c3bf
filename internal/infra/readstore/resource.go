package readstore

import (
	"context"

	"booking-engine/internal/domain/resource"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/repository/converter"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceReadQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resource, error)
	ListResourcesByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Resource, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      sqlc.DBTX
}

func NewResourceReadStore(queries ResourceReadQueries, db sqlc.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	return converter.ResourceFromRow(row), nil
}

func (r *ResourceReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resource.Resource, error) {
	rows, err := r.queries.ListResourcesByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources by owner", err)
	}

	out := make([]*resource.Resource, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.ResourceFromRow(row))
	}
	return out, nil
}
