//go:build unit

package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	jobsmock "booking-engine/internal/mock/jobs"
	sharedmock "booking-engine/internal/mock/shared"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/jobs"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var relayNow = time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC)

type relayMocks struct {
	uow           *sharedmock.MockUnitOfWork
	notifications *sharedmock.MockNotificationRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	publisher     *jobsmock.MockPublisher
}

func setupRelayMocks(t *testing.T) relayMocks {
	ctrl := gomock.NewController(t)
	m := relayMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		publisher:     jobsmock.NewMockPublisher(ctrl),
	}
	tx := sharedmock.NewMockTx(ctrl)
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()
	tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	return m
}

func TestOutboxRelay_RunOnce(t *testing.T) {
	t.Run("publishes due jobs and reschedules failures", func(t *testing.T) {
		m := setupRelayMocks(t)
		ok := shared.NotificationJob{ID: uuid.New(), Topic: shared.TopicReservationCreated, Payload: []byte(`{"a":1}`)}
		flaky := shared.NotificationJob{ID: uuid.New(), Topic: shared.TopicReservationStatusChanged, Payload: []byte(`{"b":2}`), Attempts: 1}
		dead := shared.NotificationJob{ID: uuid.New(), Topic: shared.TopicReservationCreated, Payload: []byte(`{"c":3}`), Attempts: 4}

		m.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), relayNow, 10).
			Return([]shared.NotificationJob{ok, flaky, dead}, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), ok.Topic, ok.Payload).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), flaky.Topic, flaky.Payload).Return(errors.New("broker unavailable"))
		m.publisher.EXPECT().Publish(gomock.Any(), dead.Topic, dead.Payload).Return(errors.New("broker unavailable"))
		m.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), ok.ID).Return(nil)
		m.notifications.EXPECT().Reschedule(gomock.Any(), gomock.Any(), flaky.ID, shared.NotificationStatusQueued, relayNow.Add(time.Minute), "broker unavailable").Return(nil)
		m.notifications.EXPECT().Reschedule(gomock.Any(), gomock.Any(), dead.ID, shared.NotificationStatusFailed, gomock.Any(), "broker unavailable").Return(nil)

		relay := jobs.NewOutboxRelay(m.uow, m.publisher, clock.NewMockClock(relayNow), 10, 5)
		res, err := relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, jobs.RelayResult{Sent: 1, Rescheduled: 1, Failed: 1}, res)
	})

	t.Run("nothing due", func(t *testing.T) {
		m := setupRelayMocks(t)
		m.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), relayNow, 10).Return(nil, nil)

		relay := jobs.NewOutboxRelay(m.uow, m.publisher, clock.NewMockClock(relayNow), 10, 5)
		assert.NoError(t, relay.Run(context.Background()))
	})

	t.Run("claim failure is returned", func(t *testing.T) {
		m := setupRelayMocks(t)
		dbErr := errors.New("deadlock")
		m.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), relayNow, 10).Return(nil, dbErr)

		relay := jobs.NewOutboxRelay(m.uow, m.publisher, clock.NewMockClock(relayNow), 10, 5)
		assert.ErrorIs(t, relay.Run(context.Background()), dbErr)
	})
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{attempts: 0, want: 30 * time.Second},
		{attempts: 1, want: 30 * time.Second},
		{attempts: 2, want: time.Minute},
		{attempts: 3, want: 2 * time.Minute},
		{attempts: 7, want: 32 * time.Minute},
		{attempts: 8, want: time.Hour},
		{attempts: 50, want: time.Hour},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, jobs.RetryDelay(tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestIdempotencyPurge_Run(t *testing.T) {
	t.Run("deletes keys expired before now", func(t *testing.T) {
		m := setupRelayMocks(t)
		m.idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), relayNow).Return(int64(4), nil)

		assert.NoError(t, jobs.NewIdempotencyPurge(m.uow, clock.NewMockClock(relayNow)).Run(context.Background()))
	})

	t.Run("returns the delete error", func(t *testing.T) {
		m := setupRelayMocks(t)
		dbErr := errors.New("lock timeout")
		m.idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), relayNow).Return(int64(0), dbErr)

		assert.ErrorIs(t, jobs.NewIdempotencyPurge(m.uow, clock.NewMockClock(relayNow)).Run(context.Background()), dbErr)
	})
}
