package span

import (
	"strings"
	"time"

	"booking-engine/internal/pkg/errs"
)

var ErrInvalidSpan = errs.New("invalid span")

const Day = 24 * time.Hour

const dateLayout = "2006-01-02"

// Span is a half-open interval [start, end).
type Span struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (Span, error) {
	if start.IsZero() || end.IsZero() {
		return Span{}, ErrInvalidSpan
	}
	if !end.After(start) {
		return Span{}, ErrInvalidSpan
	}
	return Span{start: start, end: end}, nil
}

// Parse accepts RFC3339 timestamps or plain dates. Plain dates are midnight in loc.
func Parse(start, end string, loc *time.Location) (Span, error) {
	s, err := ParseInstant(start, loc)
	if err != nil {
		return Span{}, err
	}
	e, err := ParseInstant(end, loc)
	if err != nil {
		return Span{}, err
	}
	return New(s, e)
}

// ParseInstant parses an RFC3339 timestamp or a plain date at midnight in loc.
func ParseInstant(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, ErrInvalidSpan
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout, v, loc)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidSpan)
	}
	return t, nil
}

// DayOf returns the calendar day containing t, evaluated in loc.
func DayOf(t time.Time, loc *time.Location) Span {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return Span{start: start, end: start.AddDate(0, 0, 1)}
}

func (s Span) Start() time.Time        { return s.start }
func (s Span) End() time.Time          { return s.end }
func (s Span) Duration() time.Duration { return s.end.Sub(s.start) }
func (s Span) IsZero() bool            { return s.start.IsZero() && s.end.IsZero() }

// Overlaps uses strict half-open overlap; touching spans do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.start.Before(o.end) && s.end.After(o.start)
}

func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.start) && t.Before(s.end)
}

// Days counts calendar days in the start's location, a partial day counting
// as one. Local midnight to local midnight is a whole number of days even
// when a DST shift makes the elapsed time differ from a multiple of 24h.
func (s Span) Days() int {
	loc := s.start.Location()
	start, end := s.start, s.end.In(loc)

	days := dayNumber(end) - dayNumber(start)
	boundary := start.AddDate(0, 0, days)
	if boundary.After(end) {
		days--
		boundary = start.AddDate(0, 0, days)
	}
	if end.After(boundary) {
		days++
	}
	return days
}

// dayNumber is the proleptic day index of t's wall-clock date.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / int64(Day/time.Second))
}
