package calendar

import (
	"errors"
	"fmt"

	"github.com/username/attendance-tracker/pkg/dateutil"
)

// ErrInvalidRange is returned when a date fails to parse or start is after end
var ErrInvalidRange = errors.New("invalid date range")

// DayInfo represents information about a specific day
type DayInfo struct {
	Date     dateutil.Date
	IsSunday bool
}

// RangeInfo represents calendar information for an inclusive date range
type RangeInfo struct {
	Start       dateutil.Date
	End         dateutil.Date
	TotalDays   int
	SundayCount int
	WorkingDays int       // TotalDays - SundayCount
	Days        []DayInfo // ascending, one per calendar day
}

// Enumerate lists every calendar day from start to end inclusive and counts the Sundays
func Enumerate(start, end dateutil.Date) (*RangeInfo, error) {
	for _, d := range []dateutil.Date{start, end} {
		if !d.IsValid() {
			return nil, fmt.Errorf("%w: %s is not a calendar date", ErrInvalidRange, d)
		}
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, start, end)
	}

	info := &RangeInfo{
		Start: start,
		End:   end,
		Days:  make([]DayInfo, 0, start.DaysUntil(end)+1),
	}

	for date := start; !date.After(end); date = date.AddDays(1) {
		sunday := date.IsSunday()
		if sunday {
			info.SundayCount++
		}
		info.Days = append(info.Days, DayInfo{Date: date, IsSunday: sunday})
	}

	info.TotalDays = len(info.Days)
	info.WorkingDays = info.TotalDays - info.SundayCount
	return info, nil
}

// EnumerateStrings parses two YYYY-MM-DD strings and enumerates the range between them
func EnumerateStrings(start, end string) (*RangeInfo, error) {
	startDate, err := dateutil.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	endDate, err := dateutil.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	return Enumerate(startDate, endDate)
}
