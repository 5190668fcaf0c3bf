package queries

import (
	"context"

	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/user"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resource.Resource, error)
}

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	ListByOwner(ctx context.Context, actorID uuid.UUID, actorRole user.Role, ownerID uuid.UUID) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	store ResourceReadStore
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{store: store}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	res, err := loadResource(ctx, q.store, id)
	if err != nil {
		return nil, err
	}
	return NewResourceView(res), nil
}

func (q *resourceQueriesImpl) ListByOwner(ctx context.Context, actorID uuid.UUID, actorRole user.Role, ownerID uuid.UUID) ([]*ResourceView, error) {
	if !user.CanManage(actorID, actorRole, ownerID) {
		return nil, errs.ErrForbidden
	}

	items, err := q.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]*ResourceView, 0, len(items))
	for _, r := range items {
		views = append(views, NewResourceView(r))
	}
	return views, nil
}

func loadResource(ctx context.Context, store ResourceReadStore, id uuid.UUID) (*resource.Resource, error) {
	res, err := store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrResourceNotFound)
		}
		return nil, err
	}
	return res, nil
}
