package shared

import (
	"strings"

	"booking-engine/internal/domain/resource"
	"booking-engine/internal/domain/span"
)

// RequestSpan parses start/end in the resource's time zone and normalizes
// the result the way bookings of that resource are stored. Attractions may
// omit end: the booking covers the start day.
func RequestSpan(res *resource.Resource, start, end string) (span.Span, error) {
	loc := res.Location()
	if res.Kind() == resource.KindAttraction && strings.TrimSpace(end) == "" {
		t, err := span.ParseInstant(start, loc)
		if err != nil {
			return span.Span{}, err
		}
		return span.DayOf(t, loc), nil
	}

	s, err := span.Parse(start, end, loc)
	if err != nil {
		return span.Span{}, err
	}
	return res.BookingSpan(s), nil
}
