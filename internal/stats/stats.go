package stats

import (
	"github.com/username/attendance-tracker/internal/attendance"
	"github.com/username/attendance-tracker/internal/calendar"
	"github.com/username/attendance-tracker/pkg/dateutil"
)

// WorkerStats are the attendance counts of one worker over a range.
// WorkingDays and SundayCount are range-level values, the same for every worker.
type WorkerStats struct {
	Name        string
	PresentDays int
	AbsentDays  int
	LateDays    int
	WorkingDays int
	SundayCount int
}

// DayStats summarizes one calendar day across the whole roster
type DayStats struct {
	Date     dateutil.Date
	IsSunday bool
	Present  int
	Late     int
	Absent   int // never counted on Sundays
}

// Result is the output of Compute
type Result struct {
	Range   calendar.RangeInfo
	Workers []WorkerStats // roster order
	Daily   []DayStats    // ascending date order
}

// ComputeStrings parses YYYY-MM-DD bounds and computes statistics.
// Parse failures and inverted ranges return calendar.ErrInvalidRange.
func ComputeStrings(roster attendance.Roster, start, end string) (*Result, error) {
	info, err := calendar.EnumerateStrings(start, end)
	if err != nil {
		return nil, err
	}
	return compute(roster, info), nil
}

// Compute walks every day in [start, end] for every worker in roster.
//
// A Present record counts as present, and also as late when the arrival is not 09:00.
// Anything else (no record, or Absent) counts as absent unless the day is a Sunday.
// Present records on Sundays are still counted.
func Compute(roster attendance.Roster, start, end dateutil.Date) (*Result, error) {
	info, err := calendar.Enumerate(start, end)
	if err != nil {
		return nil, err
	}
	return compute(roster, info), nil
}

func compute(roster attendance.Roster, info *calendar.RangeInfo) *Result {
	result := &Result{
		Range:   *info,
		Workers: make([]WorkerStats, 0, roster.Len()),
		Daily:   make([]DayStats, len(info.Days)),
	}

	for i, day := range info.Days {
		result.Daily[i] = DayStats{Date: day.Date, IsSunday: day.IsSunday}
	}

	for _, worker := range roster.Workers() {
		ws := WorkerStats{
			Name:        worker.Name(),
			WorkingDays: info.WorkingDays,
			SundayCount: info.SundayCount,
		}

		for i, day := range info.Days {
			rec, ok := worker.Record(day.Date)
			switch {
			case ok && rec.Status == attendance.Present:
				ws.PresentDays++
				result.Daily[i].Present++
				if rec.IsLate() {
					ws.LateDays++
					result.Daily[i].Late++
				}
			case !day.IsSunday:
				ws.AbsentDays++
				result.Daily[i].Absent++
			}
		}

		result.Workers = append(result.Workers, ws)
	}

	return result
}
