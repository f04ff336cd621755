package domain

// Goals are the daily nutrient targets the ledger tracks progress against.
type Goals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// DefaultGoals returns the targets a fresh ledger starts with. These are also
// the per-field fallback when a goals update carries a missing or unusable
// value.
func DefaultGoals() Goals {
	return Goals{Calories: 2000, Protein: 150, Carbs: 250, Fats: 67}
}

// GoalPreset names a bundled goal profile.
type GoalPreset string

const (
	PresetWeightLoss  GoalPreset = "weight-loss"
	PresetMaintenance GoalPreset = "maintenance"
	PresetMuscleGain  GoalPreset = "muscle-gain"
	PresetAthletic    GoalPreset = "athletic"
)

// PresetGoals returns the targets for a named preset. The second return is
// false for an unknown preset name.
func PresetGoals(p GoalPreset) (Goals, bool) {
	switch p {
	case PresetWeightLoss:
		return Goals{Calories: 1500, Protein: 120, Carbs: 150, Fats: 50}, true
	case PresetMaintenance:
		return Goals{Calories: 2000, Protein: 150, Carbs: 250, Fats: 67}, true
	case PresetMuscleGain:
		return Goals{Calories: 2500, Protein: 200, Carbs: 300, Fats: 83}, true
	case PresetAthletic:
		return Goals{Calories: 3000, Protein: 250, Carbs: 375, Fats: 100}, true
	}
	return Goals{}, false
}
