//go:build unit

package expense_test

import (
	"strings"
	"testing"
	"time"

	"booking-engine/internal/domain/expense"
	"booking-engine/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	owner := uuid.New()
	date := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)
	now := date.Add(time.Hour)

	testCases := []struct {
		name     string
		date     time.Time
		amount   pricing.Money
		category string
		note     string
		errIs    error
	}{
		{name: "valid", date: date, amount: 1500, category: "fuel"},
		{name: "zero amount", date: date, amount: 0, category: "fuel", errIs: expense.ErrNonPositiveAmount},
		{name: "negative amount", date: date, amount: -10, category: "fuel", errIs: expense.ErrNonPositiveAmount},
		{name: "missing date", amount: 10, errIs: expense.ErrMissingDate},
		{name: "long category", date: date, amount: 10, category: strings.Repeat("x", expense.MaxCategoryLength+1), errIs: expense.ErrCategoryTooLong},
		{name: "long note", date: date, amount: 10, note: strings.Repeat("x", expense.MaxNoteLength+1), errIs: expense.ErrNoteTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := expense.NewExpense(owner, nil, tc.date, tc.amount, tc.category, tc.note, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, actual.ID())
			assert.Equal(t, owner, actual.OwnerID())
			assert.Equal(t, tc.amount, actual.Amount())
		})
	}

	t.Run("blank category becomes general", func(t *testing.T) {
		actual, err := expense.NewExpense(owner, nil, date, 10, "  ", "", now)
		require.NoError(t, err)
		assert.Equal(t, expense.DefaultCategory, actual.Category())
	})
}
