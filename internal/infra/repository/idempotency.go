package repository

import (
	"context"
	"time"

	"booking-engine/internal/infra"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error)
	ReleaseIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseIdempotencyKeyParams) error
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	inserted, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return inserted > 0, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID, responseBodyHash string, resultReservationID uuid.UUID) error {
	params := sqlc.UpdateIdempotencyKeyCompletedParams{
		Key:                 key,
		UserID:              userID,
		ResponseBodyHash:    pgconv.StringToPgtype(responseBodyHash),
		ResultReservationID: pgconv.UUIDToPgtype(resultReservationID),
	}

	if err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.ClaimExpiredIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	claimed, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}

	return claimed > 0, nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, before time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(before))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}

// Release drops a key that is still processing so the client can retry
// after a rejected request.
func (r *IdempotencyRepository) Release(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID) error {
	params := sqlc.ReleaseIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	}

	if err := r.queries.ReleaseIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}

	return nil
}
