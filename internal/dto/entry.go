package dto

// NutrientSet carries Edamam-style per-portion nutrient amounts, as returned
// by the food-lookup collaborator and by recipe calculations.
type NutrientSet struct {
	EnergyKcal float64 `json:"ENERC_KCAL"`
	Protein    float64 `json:"PROCNT"`
	Carbs      float64 `json:"CHOCDF"`
	Fat        float64 `json:"FAT"`
}

// AddEntryRequest is the candidate record accepted by the ledger's AddEntry.
// Two shapes are accepted in one struct: the flat shape (Name/Portion/Unit
// and flat nutrient fields) and the external lookup shape
// (Label/Quantity/Measure/Nutrients). Both grew out of separate call sites
// (manual add vs. lookup/recipe add) and are normalized in a single mapping
// step, not handled as two code paths.
type AddEntryRequest struct {
	// Flat shape.
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Portion  float64 `json:"portion,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fats     float64 `json:"fats,omitempty"`

	// External lookup shape. When Nutrients is set it takes precedence over
	// the flat nutrient fields.
	Label     string       `json:"label,omitempty"`
	Quantity  float64      `json:"quantity,omitempty"`
	Measure   string       `json:"measure,omitempty"`
	Nutrients *NutrientSet `json:"nutrients,omitempty"`
}
