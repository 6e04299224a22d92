package calendar

import (
	"time"

	"github.com/username/biz-days/pkg/dateutil"
)

// HoursPerWorkday is the fixed number of working hours in a business day
const HoursPerWorkday = 8

// WeekdayCalendar implements Calendar with Monday-Friday workdays and no holidays
type WeekdayCalendar struct{}

// NewWeekdayCalendar creates a new WeekdayCalendar
func NewWeekdayCalendar() *WeekdayCalendar {
	return &WeekdayCalendar{}
}

// IsWorkday checks if the given date is a working day
func (WeekdayCalendar) IsWorkday(date time.Time) (bool, int) {
	if dateutil.IsWeekday(date) {
		return true, HoursPerWorkday
	}
	return false, 0
}

// GetDayInfo returns detailed info for a specific day
func (c WeekdayCalendar) GetDayInfo(date time.Time) DayInfo {
	isWorkday, hours := c.IsWorkday(date)

	dayType := DayTypeWorkday
	if !isWorkday {
		dayType = DayTypeWeekend
	}

	return DayInfo{
		Date:         dateutil.StartOfDay(date),
		Type:         dayType,
		WorkingHours: hours,
		IsWorkday:    isWorkday,
	}
}

// GetMonthInfo returns calendar info for the entire month
func (c WeekdayCalendar) GetMonthInfo(year int, month time.Month) *MonthInfo {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, last.Day()),
	}

	for _, date := range dateutil.EachDay(first, last) {
		day := c.GetDayInfo(date)
		if day.IsWorkday {
			monthInfo.WorkDays++
		} else {
			monthInfo.Weekends++
		}
		monthInfo.WorkingHours += day.WorkingHours
		monthInfo.Days = append(monthInfo.Days, day)
	}

	return monthInfo
}
