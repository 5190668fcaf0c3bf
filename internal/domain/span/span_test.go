//go:build unit

package span_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/span"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func mustSpan(t *testing.T, start, end time.Time) span.Span {
	t.Helper()
	s, err := span.New(start, end)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "valid span", start: day(5), end: day(10)},
		{name: "end equal to start", start: day(5), end: day(5), errIs: span.ErrInvalidSpan},
		{name: "end before start", start: day(10), end: day(5), errIs: span.ErrInvalidSpan},
		{name: "zero start", end: day(5), errIs: span.ErrInvalidSpan},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := span.New(tc.start, tc.end)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, s.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, s.Start())
			assert.Equal(t, tc.end, s.End())
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := mustSpan(t, day(5), day(10))

	testCases := []struct {
		name     string
		other    span.Span
		expected bool
	}{
		{name: "touching at end", other: mustSpan(t, day(10), day(15)), expected: false},
		{name: "touching at start", other: mustSpan(t, day(1), day(5)), expected: false},
		{name: "contained", other: mustSpan(t, day(6), day(7)), expected: true},
		{name: "straddling start", other: mustSpan(t, day(3), day(6)), expected: true},
		{name: "straddling end", other: mustSpan(t, day(9), day(12)), expected: true},
		{name: "disjoint", other: mustSpan(t, day(20), day(21)), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, base.Overlaps(tc.other))
			assert.Equal(t, tc.expected, tc.other.Overlaps(base))
		})
	}
}

func TestDays(t *testing.T) {
	t.Run("whole days", func(t *testing.T) {
		assert.Equal(t, 10, mustSpan(t, day(1), day(11)).Days())
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		s := mustSpan(t, day(1), day(3).Add(time.Hour))
		assert.Equal(t, 3, s.Days())
	})

	t.Run("an hour is one day", func(t *testing.T) {
		s := mustSpan(t, day(1), day(1).Add(time.Hour))
		assert.Equal(t, 1, s.Days())
	})

	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		start, end string
		expected   int
	}{
		// 2025-11-02 is 25h long in New York
		{name: "fall back midnights", start: "2025-11-01", end: "2025-11-03", expected: 2},
		// 2025-03-09 is 23h long in New York
		{name: "spring forward midnights", start: "2025-03-08", end: "2025-03-10", expected: 2},
		{name: "fall back with a partial day", start: "2025-11-01T09:00:00-04:00", end: "2025-11-03T10:00:00-05:00", expected: 3},
		{name: "late start short of a full day", start: "2025-11-01T23:00:00-04:00", end: "2025-11-02T01:00:00-05:00", expected: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := span.Parse(tc.start, tc.end, newYork)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, s.Days())
		})
	}
}

func TestParse(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	t.Run("plain dates use the given location", func(t *testing.T) {
		s, err := span.Parse("2025-03-03", "2025-03-04", tokyo)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, tokyo), s.Start())
	})

	t.Run("RFC3339 keeps its offset", func(t *testing.T) {
		s, err := span.Parse("2025-03-03T10:00:00Z", "2025-03-03T12:00:00Z", tokyo)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, s.Duration())
	})

	t.Run("garbage is an invalid span", func(t *testing.T) {
		_, err := span.Parse("yesterday", "2025-03-04", nil)
		require.ErrorIs(t, err, span.ErrInvalidSpan)
	})

	t.Run("empty end is an invalid span", func(t *testing.T) {
		_, err := span.Parse("2025-03-03", " ", nil)
		require.ErrorIs(t, err, span.ErrInvalidSpan)
	})
}

func TestDayOf(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 20:00 UTC on March 2 is March 3 in Tokyo
	instant := time.Date(2025, time.March, 2, 20, 0, 0, 0, time.UTC)
	d := span.DayOf(instant, tokyo)

	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, tokyo), d.Start())
	assert.Equal(t, 24*time.Hour, d.Duration())
	assert.True(t, d.Contains(instant))
	assert.False(t, span.DayOf(instant, time.UTC).Contains(d.Start().Add(12*time.Hour)))
}
