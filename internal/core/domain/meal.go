package domain

// MealSlot identifies one of the six fixed meal slots of a day.
type MealSlot string

const (
	Breakfast      MealSlot = "breakfast"
	MorningSnack   MealSlot = "morning-snack"
	Lunch          MealSlot = "lunch"
	AfternoonSnack MealSlot = "afternoon-snack"
	Dinner         MealSlot = "dinner"
	EveningSnack   MealSlot = "evening-snack"
)

// MealSlots lists every slot in display order (breakfast first). Aggregation
// does not depend on this order.
func MealSlots() []MealSlot {
	return []MealSlot{Breakfast, MorningSnack, Lunch, AfternoonSnack, Dinner, EveningSnack}
}

// IsValid reports whether s is one of the six known slots.
func (s MealSlot) IsValid() bool {
	switch s {
	case Breakfast, MorningSnack, Lunch, AfternoonSnack, Dinner, EveningSnack:
		return true
	}
	return false
}
