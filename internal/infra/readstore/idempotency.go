package readstore

import (
	"context"

	"booking-engine/internal/infra"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKey, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	db      sqlc.DBTX
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries, db sqlc.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		db:      db,
	}
}

// Get returns the record even when it has expired; callers decide whether
// an expired key may be reclaimed.
func (r *IdempotencyReadStore) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:                 row.Key,
		UserID:              row.UserID,
		Endpoint:            row.Endpoint,
		Status:              row.Status,
		RequestHash:         row.RequestHash,
		ResultReservationID: pgconv.UUIDPtrFromPgtype(row.ResultReservationID),
		ExpiresAt:           pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
