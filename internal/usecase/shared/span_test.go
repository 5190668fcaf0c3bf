//go:build unit

package shared_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/span"
	"booking-engine/internal/testutil/builder"
	"booking-engine/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestSpan(t *testing.T) {
	t.Run("vehicle keeps the requested interval", func(t *testing.T) {
		res := builder.NewVehicleBuilder().MustBuild()

		got, err := shared.RequestSpan(res, "2025-01-01", "2025-01-11")

		require.NoError(t, err)
		assert.Equal(t, builder.Date(2025, 1, 1), got.Start())
		assert.Equal(t, 10, got.Days())
	})

	t.Run("attraction without end books the start day in its time zone", func(t *testing.T) {
		res := builder.NewAttractionBuilder().With(func(b *builder.ResourceBuilder) {
			b.TimeZone = "Asia/Tokyo"
		}).MustBuild()

		got, err := shared.RequestSpan(res, "2025-03-10", "")

		require.NoError(t, err)
		tokyo, _ := time.LoadLocation("Asia/Tokyo")
		assert.True(t, got.Start().Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, tokyo)))
		assert.Equal(t, 24*time.Hour, got.Duration())
	})

	t.Run("attraction with a timestamp is normalized to the day", func(t *testing.T) {
		res := builder.NewAttractionBuilder().MustBuild()

		got, err := shared.RequestSpan(res, "2025-03-10T15:00:00Z", "2025-03-10T17:00:00Z")

		require.NoError(t, err)
		assert.Equal(t, builder.Date(2025, 3, 10), got.Start())
		assert.Equal(t, builder.Date(2025, 3, 11), got.End())
	})

	t.Run("end before start is invalid", func(t *testing.T) {
		res := builder.NewVehicleBuilder().MustBuild()

		_, err := shared.RequestSpan(res, "2025-01-11", "2025-01-01")

		assert.ErrorIs(t, err, span.ErrInvalidSpan)
	})

	t.Run("unparseable date is invalid", func(t *testing.T) {
		res := builder.NewAttractionBuilder().MustBuild()

		_, err := shared.RequestSpan(res, "not-a-date", "")

		assert.ErrorIs(t, err, span.ErrInvalidSpan)
	})
}
