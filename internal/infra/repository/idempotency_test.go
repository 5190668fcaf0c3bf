//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-engine/internal/infra"
	"booking-engine/internal/infra/repository"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	repositorymock "booking-engine/internal/mock/repository"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	key, userID := uuid.New(), uuid.New()
	expiresAt := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		rows         int64
		err          error
		wantInserted bool
		expectKind   infra.RepositoryErrorKind
	}{
		{name: "success: new key", rows: 1, wantInserted: true},
		{name: "success: key already present", rows: 0, wantInserted: false},
		{name: "error: database failure", err: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().TryInsertIdempotencyKey(ctx, mockDB, sqlc.TryInsertIdempotencyKeyParams{
				Key:         key,
				UserID:      userID,
				Endpoint:    "POST /api/reservations",
				RequestHash: "abc",
				ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
			}).Return(tc.rows, tc.err)

			inserted, err := repository.NewIdempotencyRepository(mockQueries).
				TryInsert(ctx, mockDB, key, userID, "POST /api/reservations", "abc", expiresAt)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantInserted, inserted)
		})
	}
}

func TestIdempotencyRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	key, userID, resultID := uuid.New(), uuid.New(), uuid.New()
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	t.Run("complete stores the result reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpdateIdempotencyKeyCompleted(ctx, mockDB, sqlc.UpdateIdempotencyKeyCompletedParams{
			Key:                 key,
			UserID:              userID,
			ResponseBodyHash:    pgconv.StringToPgtype("h"),
			ResultReservationID: pgconv.UUIDToPgtype(resultID),
		}).Return(nil)

		err := repository.NewIdempotencyRepository(mockQueries).UpdateStatusCompleted(ctx, mockDB, key, userID, "h", resultID)
		assert.NoError(t, err)
	})

	t.Run("claim expired reports whether the row was taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ClaimExpiredIdempotencyKey(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		claimed, err := repository.NewIdempotencyRepository(mockQueries).ClaimExpired(ctx, mockDB, key, userID, "h", now)
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("release deletes a processing key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ReleaseIdempotencyKey(ctx, mockDB, sqlc.ReleaseIdempotencyKeyParams{Key: key, UserID: userID}).Return(nil)

		assert.NoError(t, repository.NewIdempotencyRepository(mockQueries).Release(ctx, mockDB, key, userID))
	})

	t.Run("purge returns the deleted count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, mockDB, pgconv.TimeToPgtype(now)).Return(int64(7), nil)

		n, err := repository.NewIdempotencyRepository(mockQueries).DeleteExpired(ctx, mockDB, now)
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC)

	t.Run("claim due maps rows to jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		row := sqlc.NotificationJob{
			ID:       uuid.New(),
			Kind:     "event",
			Topic:    shared.TopicReservationCreated,
			Payload:  []byte(`{}`),
			RunAt:    pgconv.TimeToPgtype(now),
			Attempts: 2,
			Status:   shared.NotificationStatusQueued,
		}
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, sqlc.ClaimDueNotificationJobsParams{
			RunAt: pgconv.TimeToPgtype(now),
			Limit: 25,
		}).Return([]sqlc.NotificationJob{row}, nil)

		jobs, err := repository.NewNotificationRepository(mockQueries).ClaimDue(ctx, mockDB, now, 25)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, row.ID, jobs[0].ID)
		assert.Equal(t, 2, jobs[0].Attempts)
		assert.True(t, now.Equal(jobs[0].RunAt))
	})

	t.Run("reschedule keeps the last error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		id := uuid.New()
		mockQueries.EXPECT().RescheduleNotificationJob(ctx, mockDB, sqlc.RescheduleNotificationJobParams{
			ID:        id,
			Status:    shared.NotificationStatusFailed,
			RunAt:     pgconv.TimeToPgtype(now),
			LastError: pgconv.NullableText("broker unavailable"),
		}).Return(nil)

		err := repository.NewNotificationRepository(mockQueries).Reschedule(ctx, mockDB, id, shared.NotificationStatusFailed, now, "broker unavailable")
		assert.NoError(t, err)
	})

	t.Run("create job failure is a repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errors.New("disk full"))

		err := repository.NewNotificationRepository(mockQueries).CreateJob(ctx, mockDB, "event", shared.TopicReservationCreated, []byte(`{}`), now)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
