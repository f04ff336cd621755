package domain

// PlanItem is one food in a bundled meal plan, in the external lookup shape:
// a label, a quantity of some measure, and nutrient amounts already scaled to
// that quantity.
type PlanItem struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
	Measure  string  `json:"measure"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// MealPlan is a ready-made day of meals that can be loaded into a ledger
// wholesale.
type MealPlan struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Calories    float64                 `json:"calories"`
	Protein     float64                 `json:"protein"`
	Carbs       float64                 `json:"carbs"`
	Fat         float64                 `json:"fat"`
	Tags        []string                `json:"tags"`
	Meals       map[MealSlot][]PlanItem `json:"meals"`
}
