package ledger

import (
	"strings"
	"time"

	"booking-engine/internal/domain/span"
	"booking-engine/internal/pkg/errs"
)

var ErrInvalidRange = errs.New("range must be one of weekly, monthly, annual")

type Range string

const (
	RangeWeekly  Range = "weekly"
	RangeMonthly Range = "monthly"
	RangeAnnual  Range = "annual"

	DefaultRange = RangeMonthly
)

func (r Range) IsValid() bool {
	switch r {
	case RangeWeekly, RangeMonthly, RangeAnnual:
		return true
	default:
		return false
	}
}

// ParseRange maps an empty value to the default range.
func ParseRange(v string) (Range, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return DefaultRange, nil
	}
	r := Range(v)
	if !r.IsValid() {
		return "", ErrInvalidRange
	}
	return r, nil
}

// Period is a half-open [Start, End) bucket with Start <= anchor < End.
type Period struct {
	Range Range
	Start time.Time
	End   time.Time
}

// ComputePeriod buckets anchor in its own location. Weeks start on Monday.
func ComputePeriod(r Range, anchor time.Time) Period {
	loc := anchor.Location()
	midnight := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, loc)

	switch r {
	case RangeWeekly:
		// Monday = 0
		offset := (int(anchor.Weekday()) + 6) % 7
		start := midnight.AddDate(0, 0, -offset)
		return Period{Range: r, Start: start, End: start.AddDate(0, 0, 7)}
	case RangeAnnual:
		start := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return Period{Range: r, Start: start, End: start.AddDate(1, 0, 0)}
	case RangeMonthly:
		fallthrough
	default:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
		return Period{Range: RangeMonthly, Start: start, End: start.AddDate(0, 1, 0)}
	}
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

func (p Period) Span() span.Span {
	s, _ := span.New(p.Start, p.End)
	return s
}
