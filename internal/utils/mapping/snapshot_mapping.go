package mapping

import (
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/models"
)

// ToStoredSnapshot converts ledger state into its persistence model.
func ToStoredSnapshot(snap domain.Snapshot) models.StoredSnapshot {
	meals := make(map[string][]models.StoredEntry, len(snap.Meals))
	for slot, entries := range snap.Meals {
		stored := make([]models.StoredEntry, 0, len(entries))
		for _, e := range entries {
			stored = append(stored, models.StoredEntry{
				ID:       e.ID,
				Name:     e.Name,
				Portion:  e.Portion,
				Unit:     string(e.Unit),
				Calories: e.Calories,
				Protein:  e.Protein,
				Carbs:    e.Carbs,
				Fats:     e.Fats,
			})
		}
		meals[string(slot)] = stored
	}
	goals := models.StoredGoals(snap.Goals)
	return models.StoredSnapshot{
		Meals: meals,
		Goals: &goals,
	}
}

// ToDomainSnapshot converts a persisted snapshot back into domain state.
// Slots missing from the stored data come back present and empty; slot keys
// that are no longer recognized are dropped. Absent goals fall back to the
// defaults; stored goals are restored as-is, all-zero included.
func ToDomainSnapshot(stored models.StoredSnapshot) domain.Snapshot {
	snap := domain.EmptySnapshot()
	for rawSlot, entries := range stored.Meals {
		slot := domain.MealSlot(rawSlot)
		if !slot.IsValid() {
			continue
		}
		restored := make([]domain.FoodEntry, 0, len(entries))
		for _, e := range entries {
			restored = append(restored, domain.FoodEntry{
				ID:      e.ID,
				Name:    e.Name,
				Portion: e.Portion,
				Unit:    domain.PortionUnit(e.Unit),
				Nutrition: domain.Nutrition{
					Calories: e.Calories,
					Protein:  e.Protein,
					Carbs:    e.Carbs,
					Fats:     e.Fats,
				},
			})
		}
		snap.Meals[slot] = restored
	}
	if stored.Goals != nil {
		snap.Goals = domain.Goals(*stored.Goals)
	}
	return snap
}
