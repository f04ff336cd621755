// Package mapping converts between the boundary shapes (dto, stored models)
// and the core domain types. Entry normalization, including the clamp and
// truncate rules, lives here so every insertion path shares it.
package mapping

import (
	"math"
	"strings"

	"github.com/Kuldeep2822k/meal_planner_app/internal/apperrors"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/dto"
)

// unitAliases maps the measure strings seen in lookup results and bundled
// plans onto the canonical portion units. Anything unmapped is kept verbatim;
// the conversion table treats unknown units as grams.
var unitAliases = map[string]domain.PortionUnit{
	"g":           domain.UnitGram,
	"gram":        domain.UnitGram,
	"grams":       domain.UnitGram,
	"100g":        domain.UnitGram,
	"cup":         domain.UnitCup,
	"cups":        domain.UnitCup,
	"oz":          domain.UnitOunce,
	"ounce":       domain.UnitOunce,
	"ounces":      domain.UnitOunce,
	"piece":       domain.UnitPiece,
	"pieces":      domain.UnitPiece,
	"tbsp":        domain.UnitTablespoon,
	"tablespoon":  domain.UnitTablespoon,
	"tablespoons": domain.UnitTablespoon,
	"tsp":         domain.UnitTeaspoon,
	"teaspoon":    domain.UnitTeaspoon,
	"teaspoons":   domain.UnitTeaspoon,
	"serving":     domain.UnitServing,
	"servings":    domain.UnitServing,
}

// ToDomainFoodEntry normalizes an add-entry candidate into a storable entry.
//
// Which shape the request uses is keyed on the name source: a request with a
// flat Name is read in the flat shape, otherwise the external lookup fields
// (label/quantity/measure) are used, so an explicit zero Portion never
// inherits Quantity from the other shape. The nutrient keys
// ENERC_KCAL/PROCNT/CHOCDF/FAT take precedence over the flat nutrient fields
// whenever Nutrients is present. Numeric fields that are negative or not
// finite are clamped to zero; a name longer than the cap is truncated. Only a
// name that is empty after trimming fails the call.
//
// The entry ID is left as supplied; the ledger assigns one at insertion when
// it is empty.
func ToDomainFoodEntry(req dto.AddEntryRequest) (domain.FoodEntry, error) {
	name := strings.TrimSpace(req.Name)
	fromLookup := name == ""
	if fromLookup {
		name = strings.TrimSpace(req.Label)
	}
	if name == "" {
		return domain.FoodEntry{}, apperrors.ErrMissingName
	}
	if runes := []rune(name); len(runes) > domain.MaxEntryNameLength {
		name = string(runes[:domain.MaxEntryNameLength])
	}

	portion := req.Portion
	rawUnit := req.Unit
	if fromLookup {
		portion = req.Quantity
		rawUnit = req.Measure
	}

	nutrition := domain.Nutrition{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	}
	if req.Nutrients != nil {
		nutrition = domain.Nutrition{
			Calories: req.Nutrients.EnergyKcal,
			Protein:  req.Nutrients.Protein,
			Carbs:    req.Nutrients.Carbs,
			Fats:     req.Nutrients.Fat,
		}
	}

	return domain.FoodEntry{
		ID:      strings.TrimSpace(req.ID),
		Name:    name,
		Portion: clampAmount(portion),
		Unit:    NormalizeUnit(rawUnit),
		Nutrition: domain.Nutrition{
			Calories: clampAmount(nutrition.Calories),
			Protein:  clampAmount(nutrition.Protein),
			Carbs:    clampAmount(nutrition.Carbs),
			Fats:     clampAmount(nutrition.Fats),
		},
	}, nil
}

// PlanItemToRequest lifts a bundled plan item into the external add-entry
// shape so bulk loads run through the exact same normalization as single
// adds.
func PlanItemToRequest(item domain.PlanItem) dto.AddEntryRequest {
	return dto.AddEntryRequest{
		Label:    item.Label,
		Quantity: item.Quantity,
		Measure:  item.Measure,
		Nutrients: &dto.NutrientSet{
			EnergyKcal: item.Calories,
			Protein:    item.Protein,
			Carbs:      item.Carbs,
			Fat:        item.Fats,
		},
	}
}

// NormalizeUnit maps a raw measure string onto a canonical portion unit where
// an alias is known, and passes it through untouched otherwise.
func NormalizeUnit(raw string) domain.PortionUnit {
	trimmed := strings.TrimSpace(raw)
	if unit, ok := unitAliases[strings.ToLower(trimmed)]; ok {
		return unit
	}
	return domain.PortionUnit(trimmed)
}

// clampAmount turns negative and non-finite values into zero. Soft bad data
// never rejects an otherwise valid entry.
func clampAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
