package attendance

import (
	"fmt"
	"strings"

	"github.com/username/attendance-tracker/pkg/dateutil"
)

// Roster is an immutable, ordered list of workers. Every transition returns a new
// Roster and never modifies the receiver, so a Roster value can be handed out as a snapshot.
type Roster struct {
	workers []Worker
}

// NewRoster builds a roster from workers, preserving their order
func NewRoster(workers ...Worker) Roster {
	r := Roster{workers: make([]Worker, len(workers))}
	copy(r.workers, workers)
	return r
}

// Len returns the number of workers
func (r Roster) Len() int {
	return len(r.workers)
}

// Worker returns the worker at index
func (r Roster) Worker(index int) (Worker, error) {
	if err := r.checkIndex(index); err != nil {
		return Worker{}, err
	}
	return r.workers[index], nil
}

// Workers returns the workers in roster order
func (r Roster) Workers() []Worker {
	out := make([]Worker, len(r.workers))
	copy(out, r.workers)
	return out
}

// IndexOf returns the index of the worker with exactly this name, or -1
func (r Roster) IndexOf(name string) int {
	for i, w := range r.workers {
		if w.name == name {
			return i
		}
	}
	return -1
}

// AddWorker appends a worker with no records. The name is trimmed; empty and
// duplicate (case-sensitive) names are rejected.
func (r Roster) AddWorker(name string) (Roster, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r, ErrEmptyName
	}
	if r.IndexOf(name) >= 0 {
		return r, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	next := make([]Worker, len(r.workers), len(r.workers)+1)
	copy(next, r.workers)
	next = append(next, NewWorker(name, nil))
	return Roster{workers: next}, nil
}

// RemoveWorker drops the worker at index and all of its records
func (r Roster) RemoveWorker(index int) (Roster, error) {
	if err := r.checkIndex(index); err != nil {
		return r, err
	}

	next := make([]Worker, 0, len(r.workers)-1)
	next = append(next, r.workers[:index]...)
	next = append(next, r.workers[index+1:]...)
	return Roster{workers: next}, nil
}

// SetStatus toggles Present/Absent for the worker on date. A missing record is
// first materialized as Absent at 09:00, so the first toggle yields Present.
func (r Roster) SetStatus(index int, date dateutil.Date) (Roster, error) {
	if err := r.checkIndex(index); err != nil {
		return r, err
	}

	w := r.workers[index]
	rec, ok := w.Record(date)
	if !ok {
		rec = NewRecord()
	}
	rec.Status = rec.Status.Toggle()

	return r.replace(index, w.withRecord(date, rec)), nil
}

// SetArrivalTime sets the arrival time for the worker on date. A missing record
// is materialized as Absent with the given time; otherwise the status is kept.
func (r Roster) SetArrivalTime(index int, date dateutil.Date, at dateutil.Clock) (Roster, error) {
	if err := r.checkIndex(index); err != nil {
		return r, err
	}

	w := r.workers[index]
	rec, ok := w.Record(date)
	if !ok {
		rec = NewRecord()
	}
	rec.Time = at

	return r.replace(index, w.withRecord(date, rec)), nil
}

func (r Roster) replace(index int, w Worker) Roster {
	next := make([]Worker, len(r.workers))
	copy(next, r.workers)
	next[index] = w
	return Roster{workers: next}
}

func (r Roster) checkIndex(index int) error {
	if index < 0 || index >= len(r.workers) {
		return fmt.Errorf("%w: %d (roster has %d workers)", ErrWorkerIndex, index, len(r.workers))
	}
	return nil
}
