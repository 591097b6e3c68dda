// Package timeutil provides the date arithmetic the booking engine is
// built on: lenient timestamp parsing, inclusive day counts, and
// half-open interval overlap.
package timeutil

import "time"

const day = 24 * time.Hour

// timestampLayouts are tried in order by ParseTimestamp. The second form
// is what HTML datetime-local inputs produce.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a date-time string. It returns nil when the input
// is empty, unparseable, or not a real date; it never returns an error.
func ParseTimestamp(input string) *time.Time {
	if input == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return &t
		}
	}
	return nil
}

// DaysBetween returns the number of charged rental days between start and
// end: the span divided by 24h, rounded up, never less than 1. Negative
// or zero spans clamp to 1 day; that floor is deliberate, not an error.
func DaysBetween(start, end time.Time) int {
	span := end.Sub(start)
	if span <= 0 {
		return 1
	}
	days := int((span + day - 1) / day)
	if days < 1 {
		days = 1
	}
	return days
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// The intervals are half-open, so back-to-back ranges sharing an endpoint
// do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
