package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jakechorley/volunteer-manager/pkg/db"
)

// Store keeps the latest snapshot in a single indented JSON document
type Store struct {
	path string
}

// NewStore returns a store reading and writing path
// The file is only created on the first save
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the data file path
func (s *Store) Path() string {
	return s.path
}

// LoadSnapshot reads the data file, returning nil if it does not exist yet
func (s *Store) LoadSnapshot(ctx context.Context) (*db.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var snapshot db.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", s.path, err)
	}

	return &snapshot, nil
}

// SaveSnapshot writes the snapshot to a temporary file and renames it over the data file,
// so a failed write never leaves a truncated document behind
func (s *Store) SaveSnapshot(ctx context.Context, snapshot *db.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
