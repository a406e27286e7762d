// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/kmortenson/finance-dashboard/pkg/constants"
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// AddMonths returns the date offset by the given number of months, clamping
// the day-of-month to the last valid day of the target month (Jan 31 + 1
// month is Feb 28, or Feb 29 in a leap year). time.Time.AddDate normalizes
// overflow into the following month instead, which is wrong for payment
// schedules.
func AddMonths(d time.Time, months int) time.Time {
	totalMonths := int(d.Month()) - 1 + months
	year := d.Year() + totalMonths/constants.MonthsPerYear
	month := totalMonths % constants.MonthsPerYear
	if month < 0 {
		month += constants.MonthsPerYear
		year--
	}

	day := d.Day()
	if max := DaysInMonth(year, time.Month(month+1)); day > max {
		day = max
	}
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, d.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February {
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// MonthLabel formats a date as a human-readable month label (e.g. "August 2026").
func MonthLabel(d time.Time) string {
	return d.Format(constants.MonthLabelLayout)
}

// FirstOfMonth returns midnight on the first day of the date's month.
func FirstOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}
