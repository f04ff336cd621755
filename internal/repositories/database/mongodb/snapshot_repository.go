// Package mongodb persists ledger snapshots in MongoDB, one document per
// ledger key.
package mongodb

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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLedgerKey is used when the caller does not partition snapshots by
// user or device.
const DefaultLedgerKey = "default"

type snapshotDocument struct {
	LedgerKey string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// SnapshotRepository stores snapshots in the snapshots collection.
type SnapshotRepository struct {
	collection *mongo.Collection
	key        string
}

var _ portsrepo.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a repository over the given database, writing
// under the given ledger key.
func NewSnapshotRepository(db *mongo.Database, key string) *SnapshotRepository {
	if key == "" {
		key = DefaultLedgerKey
	}
	return &SnapshotRepository{collection: db.Collection("snapshots"), key: key}
}

// SaveSnapshot upserts the snapshot document for this ledger key.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	payload, err := json.Marshal(mapping.ToStoredSnapshot(snap))
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	doc := snapshotDocument{
		LedgerKey: r.key,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": r.key}, doc, opts); err != nil {
		return fmt.Errorf("failed to save snapshot for key %s: %w", r.key, err)
	}
	return nil
}

// LoadSnapshot fetches and decodes the snapshot document for this ledger key.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var doc snapshotDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": r.key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot for key %s: %w", r.key, err)
	}

	var stored models.StoredSnapshot
	if err := json.Unmarshal([]byte(doc.Payload), &stored); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for key %s: %w", r.key, err)
	}
	snap := mapping.ToDomainSnapshot(stored)
	return &snap, nil
}
