package dateutil

import (
	"fmt"
	"time"
)

const (
	// ISODateLayout is the YYYY-MM-DD layout used for stored and entered dates
	ISODateLayout = "2006-01-02"

	// MDYLayout is the MM-DD-YYYY layout expected by the PTAX service
	MDYLayout = "01-02-2006"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// ParseISODate parses a YYYY-MM-DD string into a calendar date at UTC midnight.
// Out-of-range days such as 2024-02-30 are rejected.
func ParseISODate(dateStr string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatISODate formats date as YYYY-MM-DD
func FormatISODate(date time.Time) string {
	return date.Format(ISODateLayout)
}

// FormatMDY formats date as MM-DD-YYYY
// Example: 2025-01-15 -> 01-15-2025
func FormatMDY(date time.Time) string {
	return date.Format(MDYLayout)
}

// EachDay returns every calendar day from start to end, inclusive, in ascending order.
// Returns an empty slice when end is before start.
func EachDay(start, end time.Time) []time.Time {
	first := StartOfDay(start)
	last := StartOfDay(end)
	if last.Before(first) {
		return []time.Time{}
	}

	days := make([]time.Time, 0, int(last.Sub(first).Hours()/24)+1)
	// AddDate keeps wall-clock midnight across DST shifts in non-UTC locations
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// PreviousDay returns the start of the calendar day before now
func PreviousDay(now time.Time) time.Time {
	return StartOfDay(now.AddDate(0, 0, -1))
}
