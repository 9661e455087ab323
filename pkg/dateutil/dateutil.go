package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the only date format accepted at every boundary
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a local calendar date without time of day or timezone.
// It is comparable and can be used as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalizing overflowing values the same way time.Date does
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's own location
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a strict YYYY-MM-DD string
func ParseDate(dateStr string) (Date, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of the date. UTC keeps day arithmetic free of DST jumps.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsSunday returns true if the date falls on a Sunday
func (d Date) IsSunday() bool {
	return d.Weekday() == time.Sunday
}

// AddDays returns the date n days later (earlier for negative n)
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// DaysUntil returns the number of days from d to other (negative if other is earlier).
// Counted on Unix seconds; time.Duration overflows past ~292 years.
func (d Date) DaysUntil(other Date) int {
	return int((other.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

// IsValid reports whether d names a day that exists on the calendar
func (d Date) IsValid() bool {
	return d == NewDate(d.Year, d.Month, d.Day)
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date Date) Date {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return date.AddDays(-(weekday - 1))
}

// EndOfWeek returns the Sunday of the week for the given date
func EndOfWeek(date Date) Date {
	return StartOfWeek(date).AddDays(6)
}

// StartOfMonth returns the first day of the date's month
func StartOfMonth(date Date) Date {
	return Date{Year: date.Year, Month: date.Month, Day: 1}
}

// EndOfMonth returns the last day of the date's month
func EndOfMonth(date Date) Date {
	return NewDate(date.Year, date.Month+1, 0)
}

// ParseMonth parses a YYYY-MM string and returns the first day of that month
func ParseMonth(monthStr string) (Date, error) {
	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month %q: %w", monthStr, err)
	}
	return FromTime(t), nil
}

// Today returns today's local date
func Today() Date {
	return FromTime(time.Now())
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
