//go:build unit

package uow

import (
	"testing"
	"time"

	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "admission lock timeout", err: errs.Wrap(&pgconn.PgError{Code: "55P03"}, "failed to lock resource"), want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "insert"), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: assert.AnError, want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryPolicy(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}
	retryable := &pgconn.PgError{Code: "40001"}

	t.Run("allows", func(t *testing.T) {
		assert.True(t, policy.allows(retryable, 0))
		assert.True(t, policy.allows(retryable, 2))
		assert.False(t, policy.allows(retryable, 3))
		assert.False(t, policy.allows(assert.AnError, 0))
	})

	t.Run("backoff doubles with bounded jitter", func(t *testing.T) {
		for attempt := 0; attempt < 4; attempt++ {
			want := time.Duration(1<<attempt) * policy.Base
			got := policy.Backoff(attempt)

			assert.GreaterOrEqual(t, got, want)
			assert.Less(t, got, want+want/5)
		}
	})
}

func TestNewPostgresUoW_Settings(t *testing.T) {
	t.Run("from config", func(t *testing.T) {
		cfg := config.NewTestConfig()
		u := NewPostgresUoW(nil, nil, cfg).(*PostgresUoW)

		assert.Equal(t, RetryPolicy{MaxRetries: 3, Base: 10 * time.Millisecond}, u.retry)
		assert.Equal(t, "2000", u.lockTimeout)
	})

	t.Run("zero values fall back", func(t *testing.T) {
		u := NewPostgresUoW(nil, nil, config.Config{}).(*PostgresUoW)

		assert.Equal(t, defaultRetryPolicy, u.retry)
		assert.Empty(t, u.lockTimeout)
	})
}
