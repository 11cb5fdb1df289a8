package domain

import (
	"fmt"
	"time"
)

// DateLayout is the text form of a calendar date on the wire and in logs.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar date, expressed as midnight UTC.
// The zero time stays zero so "unset" survives normalisation.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be formatted as YYYY-MM-DD", ErrInvalidArgument, s)
	}
	return t, nil
}

// FormatDate renders a calendar date, or "" when unset.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return DateOf(t).Format(DateLayout)
}

// isAfterToday reports whether the calendar date of d is later than the
// calendar date of now.
func isAfterToday(d, now time.Time) bool {
	return DateOf(d).After(DateOf(now))
}
