package calendar

import (
	"testing"
	"time"
)

func TestWeekdayCalendar_IsWorkday(t *testing.T) {
	cal := NewWeekdayCalendar()

	tests := []struct {
		name      string
		date      time.Time
		wantWork  bool
		wantHours int
	}{
		{"Monday", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true, 8},
		{"Friday", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), true, 8},
		{"Saturday", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), false, 0},
		{"Sunday", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), false, 0},
		// No holiday calendar: New Year's Day is still a workday
		{"Holiday on Monday", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), true, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isWorkday, hours := cal.IsWorkday(tt.date)

			if isWorkday != tt.wantWork || hours != tt.wantHours {
				t.Errorf("IsWorkday(%s) = (%v, %d), want (%v, %d)",
					tt.date.Format("2006-01-02 Mon"), isWorkday, hours, tt.wantWork, tt.wantHours)
			}
		})
	}
}

func TestWeekdayCalendar_GetDayInfo(t *testing.T) {
	cal := NewWeekdayCalendar()

	sat := cal.GetDayInfo(time.Date(2024, 1, 6, 15, 0, 0, 0, time.UTC))
	if sat.Type != DayTypeWeekend || sat.IsWorkday || sat.WorkingHours != 0 {
		t.Errorf("Saturday info = %+v, want weekend with 0 hours", sat)
	}
	if sat.Date.Hour() != 0 {
		t.Errorf("Date not truncated to start of day: %v", sat.Date)
	}

	checkType := func(got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("DayType.String() = %q, want %q", got, want)
		}
	}
	checkType(sat.Type.String(), "weekend")

	wed := cal.GetDayInfo(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	if wed.Type != DayTypeWorkday || !wed.IsWorkday || wed.WorkingHours != 8 {
		t.Errorf("Wednesday info = %+v, want workday with 8 hours", wed)
	}
	checkType(wed.Type.String(), "workday")
	checkType(DayType(0).String(), "unknown")
}

func TestWeekdayCalendar_GetMonthInfo(t *testing.T) {
	cal := NewWeekdayCalendar()

	tests := []struct {
		name         string
		year         int
		month        time.Month
		wantDays     int
		wantWork     int
		wantWeekends int
	}{
		{"January 2024", 2024, time.January, 31, 23, 8},
		{"February 2024 leap", 2024, time.February, 29, 21, 8},
		{"February 2025", 2025, time.February, 28, 20, 8},
		{"June 2024", 2024, time.June, 30, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := cal.GetMonthInfo(tt.year, tt.month)

			if len(info.Days) != tt.wantDays {
				t.Errorf("Days count = %d, want %d", len(info.Days), tt.wantDays)
			}
			if info.WorkDays != tt.wantWork {
				t.Errorf("WorkDays = %d, want %d", info.WorkDays, tt.wantWork)
			}
			if info.Weekends != tt.wantWeekends {
				t.Errorf("Weekends = %d, want %d", info.Weekends, tt.wantWeekends)
			}
			if info.WorkingHours != tt.wantWork*HoursPerWorkday {
				t.Errorf("WorkingHours = %d, want %d", info.WorkingHours, tt.wantWork*HoursPerWorkday)
			}
		})
	}
}
