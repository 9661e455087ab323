package storage

import (
	"context"
	"fmt"

	"github.com/username/attendance-tracker/internal/attendance"
	"go.uber.org/zap"
)

// StateManager loads and saves the roster through a Backend
type StateManager struct {
	backend Backend
	logger  *zap.Logger
}

// NewStateManager creates a new state manager
func NewStateManager(backend Backend, logger *zap.Logger) *StateManager {
	return &StateManager{
		backend: backend,
		logger:  logger,
	}
}

// Load reads the stored roster; nothing stored yet means an empty roster
func (m *StateManager) Load(ctx context.Context) (attendance.Roster, error) {
	data, err := m.backend.Get(ctx)
	if err != nil {
		return attendance.Roster{}, err
	}

	roster, err := Decode(data, m.logger)
	if err != nil {
		return attendance.Roster{}, fmt.Errorf("failed to parse stored roster: %w", err)
	}

	m.logger.Info("Roster loaded",
		zap.Int("workers", roster.Len()),
		zap.Int("bytes", len(data)))

	return roster, nil
}

// Save stores the roster, replacing what was there
func (m *StateManager) Save(ctx context.Context, roster attendance.Roster) error {
	data, err := Encode(roster)
	if err != nil {
		return err
	}

	if err := m.backend.Put(ctx, data); err != nil {
		return err
	}

	m.logger.Info("Roster saved",
		zap.Int("workers", roster.Len()),
		zap.Int("bytes", len(data)))

	return nil
}

// Close releases the backend
func (m *StateManager) Close() error {
	return m.backend.Close()
}
