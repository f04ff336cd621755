// Package portions converts user-facing portion sizes into a common gram
// basis and scales per-100g nutrient data to a chosen portion. The gram
// equivalents are approximations used for preview scaling only; stored
// entries keep their pre-scaled nutrient values.
package portions

import (
	"math"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
)

// gramsPerUnit holds the approximate mass equivalent of one unit.
var gramsPerUnit = map[domain.PortionUnit]float64{
	domain.UnitGram:       1,
	domain.UnitCup:        240,
	domain.UnitOunce:      28.35,
	domain.UnitPiece:      100,
	domain.UnitTablespoon: 15,
	domain.UnitTeaspoon:   5,
	domain.UnitServing:    100,
}

// ToGrams converts a portion amount in the given unit to grams. Unknown
// units are treated as grams; negative and non-finite amounts convert to
// zero, matching the ledger's clamp policy.
func ToGrams(amount float64, unit domain.PortionUnit) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	factor, ok := gramsPerUnit[unit]
	if !ok {
		factor = 1
	}
	return amount * factor
}

// ScalePer100 scales nutrients defined per 100 g (or 100 ml) to the given
// portion and rounds to display precision: calories to whole kcal, macros to
// one decimal.
func ScalePer100(per100 domain.NutrientsPer100g, amount float64, unit domain.PortionUnit) domain.Nutrition {
	multiplier := ToGrams(amount, unit) / 100
	return domain.Nutrition{
		Calories: per100.EnergyKcal,
		Protein:  per100.Protein,
		Carbs:    per100.Carbs,
		Fats:     per100.Fat,
	}.Scale(multiplier).Rounded()
}
