package repository

import (
	"context"
	"time"

	"booking-engine/internal/infra"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJob, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue locks due jobs with SKIP LOCKED; the locks last until tx ends.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
			Attempts: int(row.Attempts),
		})
	}

	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status string, runAt time.Time, lastErr string) error {
	params := sqlc.RescheduleNotificationJobParams{
		ID:        id,
		Status:    status,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgconv.NullableText(lastErr),
	}

	if err := r.queries.RescheduleNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}
