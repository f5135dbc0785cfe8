package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// TimestampLayout is the full UTC timestamp format balldontlie historically emits.
const TimestampLayout = "2006-01-02T15:04:05Z"

// MonthLayout is the YYYY-MM format accepted for month queries.
const MonthLayout = "2006-01"

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseMonth parses YYYY-MM.
func ParseMonth(value string) (int, time.Month, error) {
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", value, err)
	}
	return t.Year(), t.Month(), nil
}

// MonthBounds returns the first and last calendar day of a month in UTC.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
