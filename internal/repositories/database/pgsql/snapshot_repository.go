// Package pgsql persists ledger snapshots in PostgreSQL, one JSON payload per
// ledger key.
package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kuldeep2822k/meal_planner_app/internal/apperrors"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	portsrepo "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/repositories"
	"github.com/Kuldeep2822k/meal_planner_app/internal/models"
	"github.com/Kuldeep2822k/meal_planner_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultLedgerKey is used when the caller does not partition snapshots by
// user or device.
const DefaultLedgerKey = "default"

// PgxSnapshotRepository stores snapshots in the meal_snapshots table.
type PgxSnapshotRepository struct {
	pool *pgxpool.Pool
	key  string
}

var _ portsrepo.SnapshotRepository = (*PgxSnapshotRepository)(nil)

// NewPgxSnapshotRepository creates a repository writing under the given
// ledger key.
func NewPgxSnapshotRepository(pool *pgxpool.Pool, key string) *PgxSnapshotRepository {
	if key == "" {
		key = DefaultLedgerKey
	}
	return &PgxSnapshotRepository{pool: pool, key: key}
}

// EnsureSchema creates the snapshot table if it does not exist yet.
func (r *PgxSnapshotRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS meal_snapshots (
			ledger_key TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure meal_snapshots schema: %w", err)
	}
	return nil
}

// SaveSnapshot upserts the full snapshot payload for this ledger key.
func (r *PgxSnapshotRepository) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	payload, err := json.Marshal(mapping.ToStoredSnapshot(snap))
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO meal_snapshots (ledger_key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (ledger_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.pool.Exec(ctx, query, r.key, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save snapshot for key %s: %w", r.key, err)
	}
	return nil
}

// LoadSnapshot fetches and decodes the payload for this ledger key.
func (r *PgxSnapshotRepository) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	query := `SELECT payload FROM meal_snapshots WHERE ledger_key = $1;`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, r.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot for key %s: %w", r.key, err)
	}

	var stored models.StoredSnapshot
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for key %s: %w", r.key, err)
	}
	snap := mapping.ToDomainSnapshot(stored)
	return &snap, nil
}
