//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/infra"
	sqlc "booking-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.User), args.Error(1)
}

func TestUserReadStore_FindByID(t *testing.T) {
	createdAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	row := sqlc.User{
		ID:        uuid.New(),
		Email:     "owner@example.com",
		Role:      "owner",
		IsActive:  true,
		CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
	}

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.User
		mockError  error
		wantKind   infra.RepositoryErrorKind
		wantError  bool
	}{
		{
			name:       "success",
			userID:     row.ID,
			mockReturn: row,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: sqlc.User{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
			wantError:  true,
		},
		{
			name:       "corrupt role",
			userID:     row.ID,
			mockReturn: sqlc.User{ID: row.ID, Email: "owner@example.com", Role: "root"},
			wantKind:   infra.KindDBFailure,
			wantError:  true,
		},
		{
			name:       "database error",
			userID:     row.ID,
			mockReturn: sqlc.User{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			u, err := store.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, u)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, row.ID, u.ID())
				assert.Equal(t, user.RoleOwner, u.Role())
				assert.Equal(t, "owner@example.com", u.Email().Value())
				assert.Equal(t, createdAt, u.CreatedAt())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
