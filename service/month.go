package service

import (
	"time"

	"timesheet/apperror"
)

// MonthRange returns the first and last day of a month. Months are 1-based
// on every call path.
func MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, apperror.Validation("invalid month %d, expected 1-12", month)
	}
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, apperror.Validation("invalid year %d", year)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month normalizes to the last day of this one.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last, nil
}

// WorkingDaysInMonth counts Monday to Friday days in the month.
func WorkingDaysInMonth(year, month int) int {
	first, last, err := MonthRange(year, month)
	if err != nil {
		return 0
	}

	days := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}
