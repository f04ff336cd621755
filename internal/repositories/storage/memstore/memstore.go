// Package memstore is an in-memory snapshot store for tests and ephemeral
// sessions that should not touch disk.
package memstore

import (
	"context"
	"sync"

	"github.com/Kuldeep2822k/meal_planner_app/internal/apperrors"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	portsrepo "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/repositories"
	"github.com/Kuldeep2822k/meal_planner_app/internal/models"
	"github.com/Kuldeep2822k/meal_planner_app/internal/utils/mapping"
)

// Store keeps the latest snapshot in memory. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	saved *models.StoredSnapshot
}

var _ portsrepo.SnapshotRepository = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// LoadSnapshot returns the last saved snapshot, or ErrNotFound before the
// first save.
func (s *Store) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.saved == nil {
		return nil, apperrors.ErrNotFound
	}
	snap := mapping.ToDomainSnapshot(*s.saved)
	return &snap, nil
}

// SaveSnapshot replaces the stored snapshot.
func (s *Store) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	stored := mapping.ToStoredSnapshot(snap)
	s.mu.Lock()
	s.saved = &stored
	s.mu.Unlock()
	return nil
}
