package businesstime

import (
	"time"

	"github.com/username/biz-days/internal/calendar"
)

// HoursPerDay is the number of business hours counted for each business day
const HoursPerDay = calendar.HoursPerWorkday

// Metrics holds the derived counts for a day enumeration
type Metrics struct {
	BusinessDays  int
	BusinessHours int
}

// WorkdayChecker is the part of calendar.Calendar the calculator needs
type WorkdayChecker interface {
	IsWorkday(date time.Time) (bool, int)
}

// Calculator counts business days against a calendar
type Calculator struct {
	calendar WorkdayChecker
}

// NewCalculator creates a Calculator backed by cal
func NewCalculator(cal WorkdayChecker) *Calculator {
	return &Calculator{calendar: cal}
}

// Calculate counts the workdays among days. Hours are always days × HoursPerDay.
func (c *Calculator) Calculate(days []time.Time) Metrics {
	businessDays := 0
	for _, day := range days {
		if isWorkday, _ := c.calendar.IsWorkday(day); isWorkday {
			businessDays++
		}
	}

	return Metrics{
		BusinessDays:  businessDays,
		BusinessHours: businessDays * HoursPerDay,
	}
}

var defaultCalculator = NewCalculator(calendar.NewWeekdayCalendar())

// Calculate counts Monday-Friday dates in days
func Calculate(days []time.Time) Metrics {
	return defaultCalculator.Calculate(days)
}
