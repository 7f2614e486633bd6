package dateutil

import (
	"fmt"
	"time"
)

// BirthdayLayout is the only accepted birthday format: DD.MM.YYYY
const BirthdayLayout = "02.01.2006"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// NextMonday moves a Saturday or Sunday forward to the following Monday.
// Weekdays are returned unchanged.
func NextMonday(date time.Time) time.Time {
	if !IsWeekend(date) {
		return date
	}
	// ISO numbering: Monday=1 ... Sunday=7
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return date.AddDate(0, 0, (8-weekday)%7)
}

// DaysBetween returns the number of calendar days from one date to another.
// Time of day and location offsets are ignored.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// IsLeapYear reports whether year has a February 29
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// AnniversaryIn returns the occurrence of month/day in the given year.
// February 29 falls back to February 28 when the year is not a leap year.
func AnniversaryIn(year int, month time.Month, day int, loc *time.Location) time.Time {
	if month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// ParseBirthday parses a strict DD.MM.YYYY string.
// Single-digit fields, other separators and impossible dates are rejected.
func ParseBirthday(value string) (time.Time, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birthday %q: %w", value, err)
	}
	return t, nil
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		BirthdayLayout,
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q, use YYYY-MM-DD or DD.MM.YYYY", dateStr)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
