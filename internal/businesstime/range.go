package businesstime

import (
	"fmt"
	"time"

	"github.com/username/biz-days/pkg/dateutil"
)

// ParseError is returned when a date string cannot be read as YYYY-MM-DD
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DateRange is an inclusive span of calendar dates.
// Start is not required to precede End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseRange parses two YYYY-MM-DD strings into a DateRange
func ParseRange(start, end string) (DateRange, error) {
	startDate, err := dateutil.ParseISODate(start)
	if err != nil {
		return DateRange{}, &ParseError{Field: "start date", Value: start, Err: err}
	}

	endDate, err := dateutil.ParseISODate(end)
	if err != nil {
		return DateRange{}, &ParseError{Field: "end date", Value: end, Err: err}
	}

	return DateRange{Start: startDate, End: endDate}, nil
}

// Reversed reports whether End precedes Start
func (r DateRange) Reversed() bool {
	return r.End.Before(r.Start)
}

// Days enumerates every calendar date in the range, ascending.
// A reversed range yields no days.
func (r DateRange) Days() []time.Time {
	return dateutil.EachDay(r.Start, r.End)
}

// EnumerateDays parses start and end and returns every date between them, inclusive
func EnumerateDays(start, end string) ([]time.Time, error) {
	r, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	return r.Days(), nil
}
