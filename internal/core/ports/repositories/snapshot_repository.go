// Package repositories defines the outbound ports of the core: the
// persistent snapshot store and the food-lookup backend. Adapters live under
// internal/repositories.
package repositories

import (
	"context"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
)

// SnapshotRepository persists and restores full ledger snapshots. Save/Load
// must round-trip exactly. Load returns apperrors.ErrNotFound when no
// snapshot has ever been saved.
//
// Writes are best-effort from the ledger's point of view: a failed save is
// logged and swallowed, and in-memory state stays authoritative for the
// session.
type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
	SaveSnapshot(ctx context.Context, snap domain.Snapshot) error
}
