package domain

// Snapshot is the full persisted state of a ledger: every slot's entries plus
// the goals. Saving and loading a snapshot must round-trip exactly.
type Snapshot struct {
	Meals map[MealSlot][]FoodEntry `json:"meals"`
	Goals Goals                    `json:"goals"`
}

// EmptySnapshot returns a snapshot with every slot present and empty, and
// default goals.
func EmptySnapshot() Snapshot {
	meals := make(map[MealSlot][]FoodEntry, len(MealSlots()))
	for _, slot := range MealSlots() {
		meals[slot] = []FoodEntry{}
	}
	return Snapshot{Meals: meals, Goals: DefaultGoals()}
}
