package attendance

import (
	"fmt"
	"sort"

	"github.com/username/attendance-tracker/pkg/dateutil"
)

// Status is the attendance status of a worker on a single date
type Status int

const (
	// Absent is the zero value, so an unset status reads as Absent
	Absent Status = iota
	Present
)

// String returns "Present" or "Absent"
func (s Status) String() string {
	if s == Present {
		return "Present"
	}
	return "Absent"
}

// Toggle flips Present and Absent
func (s Status) Toggle() Status {
	if s == Present {
		return Absent
	}
	return Present
}

// ParseStatus parses "Present" or "Absent"
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Present":
		return Present, nil
	case "Absent":
		return Absent, nil
	}
	return Absent, fmt.Errorf("unknown status %q", s)
}

// Record is the attendance of one worker on one date
type Record struct {
	Status Status
	Time   dateutil.Clock // arrival time, 09:00 unless edited
}

// NewRecord returns an Absent record with the on-time arrival
func NewRecord() Record {
	return Record{Status: Absent, Time: dateutil.OnTime}
}

// IsLate reports whether the record is Present with an arrival other than 09:00
func (r Record) IsLate() bool {
	return r.Status == Present && !r.Time.IsOnTime()
}

// Worker is a named roster entry with sparse per-date records.
// A date without a record means Absent.
type Worker struct {
	name    string
	records map[dateutil.Date]Record
}

// NewWorker creates a worker owning a copy of records
func NewWorker(name string, records map[dateutil.Date]Record) Worker {
	w := Worker{name: name, records: make(map[dateutil.Date]Record, len(records))}
	for date, rec := range records {
		w.records[date] = rec
	}
	return w
}

// Name returns the worker's name
func (w Worker) Name() string {
	return w.name
}

// Record returns the record for date, if one was ever materialized
func (w Worker) Record(date dateutil.Date) (Record, bool) {
	rec, ok := w.records[date]
	return rec, ok
}

// Records returns a copy of the worker's records
func (w Worker) Records() map[dateutil.Date]Record {
	out := make(map[dateutil.Date]Record, len(w.records))
	for date, rec := range w.records {
		out[date] = rec
	}
	return out
}

// RecordCount returns how many dates have a record
func (w Worker) RecordCount() int {
	return len(w.records)
}

// Dates returns the dates that have a record, ascending
func (w Worker) Dates() []dateutil.Date {
	dates := make([]dateutil.Date, 0, len(w.records))
	for date := range w.records {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// withRecord returns a copy of w with date set to rec. w itself is not touched.
func (w Worker) withRecord(date dateutil.Date, rec Record) Worker {
	next := NewWorker(w.name, w.records)
	next.records[date] = rec
	return next
}
