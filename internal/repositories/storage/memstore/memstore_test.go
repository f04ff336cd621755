package memstore_test

import (
	"context"
	"testing"

	"github.com/Kuldeep2822k/meal_planner_app/internal/apperrors"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/repositories/storage/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadBeforeFirstSave(t *testing.T) {
	store := memstore.New()

	_, err := store.LoadSnapshot(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	snap := domain.EmptySnapshot()
	snap.Meals[domain.Lunch] = []domain.FoodEntry{{
		ID: "e1", Name: "Dal Tadka", Portion: 1, Unit: domain.UnitCup,
		Nutrition: domain.Nutrition{Calories: 180, Protein: 12, Carbs: 24, Fats: 4},
	}}

	require.NoError(t, store.SaveSnapshot(ctx, snap))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, *loaded)
}

func TestStore_SaveIsolatesCaller(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	snap := domain.EmptySnapshot()
	snap.Meals[domain.Lunch] = []domain.FoodEntry{{ID: "e1", Name: "Dal Tadka"}}
	require.NoError(t, store.SaveSnapshot(ctx, snap))

	// Mutating the caller's snapshot after saving must not leak into the store.
	snap.Meals[domain.Lunch][0].Name = "changed"

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dal Tadka", loaded.Meals[domain.Lunch][0].Name)
}
