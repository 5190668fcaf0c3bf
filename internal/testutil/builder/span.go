//go:build unit || integration

package builder

import (
	"time"

	"booking-engine/internal/domain/span"
)

// Date returns midnight UTC of the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Span(start, end time.Time) span.Span {
	s, err := span.New(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func Days(start time.Time, days int) span.Span {
	return Span(start, start.AddDate(0, 0, days))
}
