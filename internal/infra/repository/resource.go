package repository

import (
	"context"

	"booking-engine/internal/domain/resource"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/repository/converter"
	sqlc "booking-engine/internal/infra/sqlc/generated"
)

type ResourceWriteQueries interface {
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) error
}

type ResourceRepository struct {
	queries ResourceWriteQueries
}

func NewResourceRepository(queries ResourceWriteQueries) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
	}
}

func (r *ResourceRepository) Create(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error {
	if err := r.queries.CreateResource(ctx, tx, converter.ResourceToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}
