// Package filestore persists ledger snapshots as a JSON file on disk, the
// desktop analog of the browser's local storage.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kuldeep2822k/meal_planner_app/internal/apperrors"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	portsrepo "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/repositories"
	"github.com/Kuldeep2822k/meal_planner_app/internal/models"
	"github.com/Kuldeep2822k/meal_planner_app/internal/utils/mapping"
)

// Store reads and writes one snapshot file.
type Store struct {
	path string
}

var _ portsrepo.SnapshotRepository = (*Store)(nil)

// New returns a store over the given file path. The file is created on first
// save.
func New(path string) *Store {
	return &Store{path: path}
}

// LoadSnapshot reads and decodes the snapshot file. A missing file maps to
// ErrNotFound.
func (s *Store) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", s.path, err)
	}

	var stored models.StoredSnapshot
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file %s: %w", s.path, err)
	}
	snap := mapping.ToDomainSnapshot(stored)
	return &snap, nil
}

// SaveSnapshot encodes the snapshot and writes it via a temp file and rename,
// so a crash mid-write never leaves a truncated snapshot behind.
func (s *Store) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	raw, err := json.MarshalIndent(mapping.ToStoredSnapshot(snap), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp snapshot file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot file %s: %w", s.path, err)
	}
	return nil
}
