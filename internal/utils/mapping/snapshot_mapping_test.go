package mapping_test

import (
	"testing"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/models"
	"github.com/Kuldeep2822k/meal_planner_app/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() domain.Snapshot {
	snap := domain.EmptySnapshot()
	snap.Meals[domain.Lunch] = []domain.FoodEntry{
		{
			ID:      "e1",
			Name:    "Dal Tadka",
			Portion: 1,
			Unit:    domain.UnitCup,
			Nutrition: domain.Nutrition{
				Calories: 220, Protein: 12, Carbs: 30, Fats: 6,
			},
		},
	}
	snap.Goals = domain.Goals{Calories: 1800, Protein: 120, Carbs: 180, Fats: 60}
	return snap
}

func TestSnapshotMapping_RoundTrip(t *testing.T) {
	original := sampleSnapshot()

	restored := mapping.ToDomainSnapshot(mapping.ToStoredSnapshot(original))

	assert.Equal(t, original, restored)
}

func TestToDomainSnapshot_FillsMissingSlots(t *testing.T) {
	stored := models.StoredSnapshot{
		Meals: map[string][]models.StoredEntry{
			"breakfast": {{ID: "e1", Name: "Idli", Portion: 2, Unit: "piece", Calories: 78}},
		},
		Goals: &models.StoredGoals{Calories: 2000, Protein: 150, Carbs: 250, Fats: 67},
	}

	snap := mapping.ToDomainSnapshot(stored)

	for _, slot := range domain.MealSlots() {
		entries, ok := snap.Meals[slot]
		assert.True(t, ok, "slot %s should be present", slot)
		if slot == domain.Breakfast {
			assert.Len(t, entries, 1)
		} else {
			assert.Empty(t, entries)
		}
	}
}

func TestToDomainSnapshot_DropsUnknownSlots(t *testing.T) {
	stored := models.StoredSnapshot{
		Meals: map[string][]models.StoredEntry{
			"brunch": {{ID: "e1", Name: "Leftovers"}},
		},
	}

	snap := mapping.ToDomainSnapshot(stored)

	assert.Len(t, snap.Meals, len(domain.MealSlots()))
	for _, entries := range snap.Meals {
		assert.Empty(t, entries)
	}
}

func TestToDomainSnapshot_MissingGoalsFallBackToDefaults(t *testing.T) {
	snap := mapping.ToDomainSnapshot(models.StoredSnapshot{})

	assert.Equal(t, domain.DefaultGoals(), snap.Goals)
}

func TestSnapshotMapping_ZeroGoalsRoundTrip(t *testing.T) {
	original := domain.EmptySnapshot()
	original.Goals = domain.Goals{}

	restored := mapping.ToDomainSnapshot(mapping.ToStoredSnapshot(original))

	assert.Equal(t, domain.Goals{}, restored.Goals)
}
