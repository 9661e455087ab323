package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Backend stores the roster blob under a single key
type Backend interface {
	// Get returns nil data and no error when nothing has been stored yet
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, data []byte) error
	Close() error
}

// FileBackend keeps the blob in a JSON file
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for path
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Get reads the file
func (b *FileBackend) Get(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist yet - will be created on first save
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	return data, nil
}

// Put replaces the file contents through a temp file and rename
func (b *FileBackend) Put(_ context.Context, data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Close is a no-op
func (b *FileBackend) Close() error {
	return nil
}

// Path returns the state file path
func (b *FileBackend) Path() string {
	return b.path
}
