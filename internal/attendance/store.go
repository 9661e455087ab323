package attendance

import (
	"context"
	"fmt"

	"github.com/username/attendance-tracker/pkg/dateutil"
	"go.uber.org/zap"
)

// Saver persists a roster snapshot
type Saver interface {
	Save(ctx context.Context, roster Roster) error
}

// Transition is a pure roster transformation such as AddWorker or SetStatus
type Transition func(Roster) (Roster, error)

// Store holds the current roster and saves it after every accepted transition
type Store struct {
	roster Roster
	saver  Saver
	logger *zap.Logger
}

// NewStore creates a store starting from roster
func NewStore(roster Roster, saver Saver, logger *zap.Logger) *Store {
	return &Store{
		roster: roster,
		saver:  saver,
		logger: logger,
	}
}

// Snapshot returns the current roster
func (s *Store) Snapshot() Roster {
	return s.roster
}

// Apply runs a transition against the current roster. A rejected transition keeps
// the current roster and is not saved. If saving fails the new roster is still
// current and the error is returned so the caller can retry Save.
func (s *Store) Apply(ctx context.Context, name string, t Transition) error {
	next, err := t(s.roster)
	if err != nil {
		s.logger.Info("Transition rejected",
			zap.String("transition", name),
			zap.Error(err))
		return err
	}

	s.roster = next
	s.logger.Info("Transition applied",
		zap.String("transition", name),
		zap.Int("workers", next.Len()))

	return s.Save(ctx)
}

// Save persists the current roster
func (s *Store) Save(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	if err := s.saver.Save(ctx, s.roster); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return nil
}

// AddWorker applies Roster.AddWorker
func (s *Store) AddWorker(ctx context.Context, name string) error {
	return s.Apply(ctx, "add_worker", func(r Roster) (Roster, error) {
		return r.AddWorker(name)
	})
}

// RemoveWorker applies Roster.RemoveWorker
func (s *Store) RemoveWorker(ctx context.Context, index int) error {
	return s.Apply(ctx, "remove_worker", func(r Roster) (Roster, error) {
		return r.RemoveWorker(index)
	})
}

// SetStatus applies Roster.SetStatus
func (s *Store) SetStatus(ctx context.Context, index int, date dateutil.Date) error {
	return s.Apply(ctx, "set_status", func(r Roster) (Roster, error) {
		return r.SetStatus(index, date)
	})
}

// SetArrivalTime applies Roster.SetArrivalTime
func (s *Store) SetArrivalTime(ctx context.Context, index int, date dateutil.Date, at dateutil.Clock) error {
	return s.Apply(ctx, "set_arrival_time", func(r Roster) (Roster, error) {
		return r.SetArrivalTime(index, date, at)
	})
}
