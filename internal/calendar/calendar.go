package calendar

import "time"

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
)

// String returns a human readable day type
func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date         time.Time
	Type         DayType
	WorkingHours int
	IsWorkday    bool
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year         int
	Month        time.Month
	WorkingHours int // Total working hours in the month
	WorkDays     int
	Weekends     int
	Days         []DayInfo
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday reports whether the date is a working day and how many hours it carries
	IsWorkday(date time.Time) (bool, int)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) DayInfo

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) *MonthInfo
}
