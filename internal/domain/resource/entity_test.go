//go:build unit

package resource_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/pricing"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"
	"booking-engine/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	base   func() *builder.ResourceBuilder
	mutate func(*builder.ResourceBuilder)
	errIs  error
}

func TestResource(t *testing.T) {
	t.Run("vehicle capacity is always one", func(t *testing.T) {
		actual, err := builder.NewVehicleBuilder().WithCapacity(4).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, 1, actual.Capacity())
		assert.True(t, actual.IsExclusive())
		assert.Equal(t, "UTC", actual.TimeZone())
	})

	t.Run("weekdays are deduplicated and sorted", func(t *testing.T) {
		actual, err := builder.NewAttractionBuilder().WithWeekdays(time.Friday, time.Monday, time.Friday).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, actual.AllowedWeekdays())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty name", base: builder.NewVehicleBuilder, mutate: func(b *builder.ResourceBuilder) { b.Name = "  " }, errIs: resource.ErrEmptyResourceName},
			{name: "unknown kind", base: builder.NewVehicleBuilder, mutate: func(b *builder.ResourceBuilder) { b.Kind = "boat" }, errIs: resource.ErrInvalidKind},
			{name: "vehicle without daily rate", base: builder.NewVehicleBuilder, mutate: func(b *builder.ResourceBuilder) { b.PerDay = 0 }, errIs: resource.ErrMissingDailyRate},
			{name: "vehicle with slots", base: builder.NewVehicleBuilder, mutate: func(b *builder.ResourceBuilder) { b.WithSlots("am") }, errIs: resource.ErrSlotsNotSupported},
			{name: "negative weekly price", base: builder.NewVehicleBuilder, mutate: func(b *builder.ResourceBuilder) { v := int64(-1); b.PerWeek = &v }, errIs: pricing.ErrInvalidRateCard},
			{name: "attraction without capacity", base: builder.NewAttractionBuilder, mutate: func(b *builder.ResourceBuilder) { b.WithCapacity(0) }, errIs: resource.ErrInvalidCapacity},
			{name: "duplicate slot", base: builder.NewAttractionBuilder, mutate: func(b *builder.ResourceBuilder) { b.WithSlots("am", " am ") }, errIs: resource.ErrDuplicateTimeSlot},
			{name: "blank slot", base: builder.NewAttractionBuilder, mutate: func(b *builder.ResourceBuilder) { b.WithSlots("") }, errIs: resource.ErrInvalidTimeSlot},
			{name: "weekday out of range", base: builder.NewAttractionBuilder, mutate: func(b *builder.ResourceBuilder) { b.WithWeekdays(7) }, errIs: resource.ErrInvalidWeekday},
			{name: "unknown time zone", base: builder.NewAttractionBuilder, mutate: func(b *builder.ResourceBuilder) { b.TimeZone = "Mars/Olympus" }, errIs: resource.ErrInvalidTimeZone},
			{name: "attraction with slots", base: builder.NewAttractionBuilder, mutate: func(b *builder.ResourceBuilder) { b.WithSlots("am", "pm") }},
		})
	})
}

func TestResource_BookingSpan(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	start := time.Date(2025, time.March, 3, 1, 0, 0, 0, time.UTC)
	req, err := span.New(start, start.Add(3*time.Hour))
	require.NoError(t, err)

	t.Run("vehicle keeps the requested span", func(t *testing.T) {
		car := builder.NewVehicleBuilder().MustBuild()
		assert.Equal(t, req, car.BookingSpan(req))
	})

	t.Run("attraction books the local day", func(t *testing.T) {
		cruise := builder.NewAttractionBuilder().With(func(b *builder.ResourceBuilder) { b.TimeZone = "Asia/Tokyo" }).MustBuild()
		got := cruise.BookingSpan(req)
		assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, tokyo), got.Start())
		assert.Equal(t, 24*time.Hour, got.Duration())
	})
}

func TestResource_IsOpenOn(t *testing.T) {
	// Monday 2025-03-03 23:30 UTC is Tuesday in Tokyo
	instant := time.Date(2025, time.March, 3, 23, 30, 0, 0, time.UTC)

	utc := builder.NewAttractionBuilder().WithWeekdays(time.Monday).MustBuild()
	tokyo := builder.NewAttractionBuilder().WithWeekdays(time.Monday).With(func(b *builder.ResourceBuilder) { b.TimeZone = "Asia/Tokyo" }).MustBuild()
	always := builder.NewAttractionBuilder().MustBuild()

	assert.True(t, utc.IsOpenOn(instant))
	assert.False(t, tokyo.IsOpenOn(instant))
	assert.True(t, always.IsOpenOn(instant))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := c.base().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
