package domain

// PortionUnit is the display unit of a stored food entry. It also drives the
// portion-to-grams conversion used for nutrition previews; it does not affect
// stored nutrient values, which are scaled at insertion time.
type PortionUnit string

const (
	UnitGram       PortionUnit = "gram"
	UnitCup        PortionUnit = "cup"
	UnitOunce      PortionUnit = "ounce"
	UnitPiece      PortionUnit = "piece"
	UnitTablespoon PortionUnit = "tablespoon"
	UnitTeaspoon   PortionUnit = "teaspoon"
	UnitServing    PortionUnit = "serving"
)

// MaxEntryNameLength is the cap applied to entry names. Longer names are
// truncated, not rejected.
const MaxEntryNameLength = 100

// FoodEntry is one item placed into a meal slot. Entries are immutable once
// stored; an edit is a remove followed by a re-add.
type FoodEntry struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Portion float64     `json:"portion"`
	Unit    PortionUnit `json:"unit"`
	Nutrition
}

// FoodCandidate is a food-lookup result carrying nutrients per 100 g (or
// 100 ml for liquids), before any portion scaling.
type FoodCandidate struct {
	ID        string           `json:"foodId"`
	Label     string           `json:"label"`
	Nutrients NutrientsPer100g `json:"nutrients"`
	Measure   string           `json:"measure"`
}

// NutrientsPer100g uses the Edamam-style nutrient keys the rest of the
// system speaks.
type NutrientsPer100g struct {
	EnergyKcal float64 `json:"ENERC_KCAL"`
	Protein    float64 `json:"PROCNT"`
	Carbs      float64 `json:"CHOCDF"`
	Fat        float64 `json:"FAT"`
}
