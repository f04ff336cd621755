package portions_test

import (
	"math"
	"testing"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/utils/portions"
	"github.com/stretchr/testify/assert"
)

func TestToGrams(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		unit   domain.PortionUnit
		want   float64
	}{
		{"gram is identity", 150, domain.UnitGram, 150},
		{"one cup", 1, domain.UnitCup, 240},
		{"one ounce", 1, domain.UnitOunce, 28.35},
		{"one piece", 1, domain.UnitPiece, 100},
		{"one tablespoon", 1, domain.UnitTablespoon, 15},
		{"one teaspoon", 1, domain.UnitTeaspoon, 5},
		{"one serving", 1, domain.UnitServing, 100},
		{"half cup", 0.5, domain.UnitCup, 120},
		{"zero is zero regardless of unit", 0, domain.UnitCup, 0},
		{"unknown unit treated as grams", 75, domain.PortionUnit("handful"), 75},
		{"negative clamps to zero", -2, domain.UnitCup, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, portions.ToGrams(tt.amount, tt.unit), 0.01)
		})
	}

	assert.Zero(t, portions.ToGrams(math.NaN(), domain.UnitGram))
	assert.Zero(t, portions.ToGrams(math.Inf(1), domain.UnitGram))
}

func TestScalePer100(t *testing.T) {
	per100 := domain.NutrientsPer100g{EnergyKcal: 116, Protein: 9, Carbs: 20, Fat: 0.4}

	// One cup is 240 g, so the multiplier is 2.4.
	got := portions.ScalePer100(per100, 1, domain.UnitCup)

	assert.Equal(t, domain.Nutrition{Calories: 278, Protein: 21.6, Carbs: 48, Fats: 1}, got)
}

func TestScalePer100_ZeroPortion(t *testing.T) {
	per100 := domain.NutrientsPer100g{EnergyKcal: 500, Protein: 30, Carbs: 40, Fat: 20}

	assert.Equal(t, domain.Nutrition{}, portions.ScalePer100(per100, 0, domain.UnitServing))
}
