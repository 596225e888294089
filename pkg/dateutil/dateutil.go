package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// DayCount is a year-fraction convention.
type DayCount string

const (
	Actual365Fixed DayCount = "act/365"
	Actual36525    DayCount = "act/365.25"
	Actual360      DayCount = "act/360"
	ActualActual   DayCount = "act/act"
)

// ParseDayCount resolves a convention name; the empty string means Actual365Fixed.
func ParseDayCount(name string) (DayCount, error) {
	switch DayCount(strings.ToLower(strings.TrimSpace(name))) {
	case "", Actual365Fixed, "act/365f":
		return Actual365Fixed, nil
	case Actual36525:
		return Actual36525, nil
	case Actual360:
		return Actual360, nil
	case ActualActual, "act/act isda":
		return ActualActual, nil
	}
	return "", fmt.Errorf("unknown day count convention %q", name)
}

// YearFraction returns the time in years between two dates under the convention.
// Dates are truncated to calendar days; a negative result means to precedes from.
func YearFraction(from, to time.Time, dc DayCount) float64 {
	from, to = startOfDay(from), startOfDay(to)
	switch dc {
	case Actual36525:
		return DaysBetween(from, to) / 365.25
	case Actual360:
		return DaysBetween(from, to) / 360
	case ActualActual:
		if to.Before(from) {
			return -YearFraction(to, from, dc)
		}
		return actualActual(from, to)
	default:
		return DaysBetween(from, to) / 365
	}
}

// DaysBetween counts calendar days from one date to another.
func DaysBetween(from, to time.Time) float64 {
	return startOfDay(to).Sub(startOfDay(from)).Hours() / 24
}

// actualActual splits the period at year boundaries and divides each piece by its year length.
func actualActual(from, to time.Time) float64 {
	if from.Year() == to.Year() {
		return DaysBetween(from, to) / float64(DaysInYear(from.Year()))
	}
	next := BeginningOfYear(AddYears(from, 1))
	head := DaysBetween(from, next) / float64(DaysInYear(from.Year()))
	whole := float64(to.Year() - from.Year() - 1)
	tail := DaysBetween(BeginningOfYear(to), to) / float64(DaysInYear(to.Year()))
	return head + whole + tail
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// BeginningOfYear returns the first day of the year for a given date
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
