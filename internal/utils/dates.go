package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date wire format for check-in and check-out.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date from the wire format.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// FormatDate renders a calendar date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
