package mapping_test

import (
	"math"
	"strings"
	"testing"

	"github.com/Kuldeep2822k/meal_planner_app/internal/apperrors"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/dto"
	"github.com/Kuldeep2822k/meal_planner_app/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainFoodEntry_FlatShape(t *testing.T) {
	entry, err := mapping.ToDomainFoodEntry(dto.AddEntryRequest{
		Name:     "Oatmeal",
		Portion:  1,
		Unit:     "cup",
		Calories: 389,
		Protein:  17,
		Carbs:    66,
		Fats:     7,
	})

	require.NoError(t, err)
	assert.Equal(t, "Oatmeal", entry.Name)
	assert.Equal(t, 1.0, entry.Portion)
	assert.Equal(t, domain.UnitCup, entry.Unit)
	assert.Equal(t, domain.Nutrition{Calories: 389, Protein: 17, Carbs: 66, Fats: 7}, entry.Nutrition)
}

func TestToDomainFoodEntry_ExternalShape(t *testing.T) {
	entry, err := mapping.ToDomainFoodEntry(dto.AddEntryRequest{
		Label:    "X",
		Quantity: 1,
		Measure:  "serving",
		Nutrients: &dto.NutrientSet{
			EnergyKcal: 500,
			Protein:    30,
			Carbs:      40,
			Fat:        20,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "X", entry.Name)
	assert.Equal(t, 1.0, entry.Portion)
	assert.Equal(t, domain.UnitServing, entry.Unit)
	assert.Equal(t, domain.Nutrition{Calories: 500, Protein: 30, Carbs: 40, Fats: 20}, entry.Nutrition)
}

func TestToDomainFoodEntry_FlatShapeIgnoresLookupFields(t *testing.T) {
	// A flat-shape request with an explicit zero portion must not inherit
	// quantity or measure from the lookup fields.
	entry, err := mapping.ToDomainFoodEntry(dto.AddEntryRequest{
		Name:     "Black Coffee",
		Portion:  0,
		Unit:     "cup",
		Label:    "ignored",
		Quantity: 3,
		Measure:  "serving",
	})

	require.NoError(t, err)
	assert.Equal(t, "Black Coffee", entry.Name)
	assert.Zero(t, entry.Portion)
	assert.Equal(t, domain.UnitCup, entry.Unit)
}

func TestToDomainFoodEntry_ClampsNegativeNutrients(t *testing.T) {
	entry, err := mapping.ToDomainFoodEntry(dto.AddEntryRequest{
		Name:     "Mystery Bar",
		Portion:  1,
		Unit:     "piece",
		Calories: -100,
		Protein:  -10,
		Carbs:    20,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Nutrition{Calories: 0, Protein: 0, Carbs: 20, Fats: 0}, entry.Nutrition)
}

func TestToDomainFoodEntry_ClampsNonFiniteValues(t *testing.T) {
	entry, err := mapping.ToDomainFoodEntry(dto.AddEntryRequest{
		Name:     "Broken Import",
		Portion:  math.NaN(),
		Unit:     "gram",
		Calories: math.Inf(1),
		Protein:  5,
	})

	require.NoError(t, err)
	assert.Zero(t, entry.Portion)
	assert.Zero(t, entry.Calories)
	assert.Equal(t, 5.0, entry.Protein)
}

func TestToDomainFoodEntry_TruncatesLongName(t *testing.T) {
	long := strings.Repeat("a", 150)

	entry, err := mapping.ToDomainFoodEntry(dto.AddEntryRequest{
		Name:    long,
		Portion: 1,
		Unit:    "gram",
	})

	require.NoError(t, err)
	assert.Equal(t, long[:100], entry.Name)
}

func TestToDomainFoodEntry_MissingName(t *testing.T) {
	tests := []struct {
		name string
		req  dto.AddEntryRequest
	}{
		{"empty request", dto.AddEntryRequest{}},
		{"whitespace name", dto.AddEntryRequest{Name: "   "}},
		{"whitespace label", dto.AddEntryRequest{Label: "\t\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapping.ToDomainFoodEntry(tt.req)
			assert.ErrorIs(t, err, apperrors.ErrMissingName)
		})
	}
}

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.PortionUnit
	}{
		{"g", domain.UnitGram},
		{"grams", domain.UnitGram},
		{"tbsp", domain.UnitTablespoon},
		{"tsp", domain.UnitTeaspoon},
		{"pieces", domain.UnitPiece},
		{"Cup", domain.UnitCup},
		{"oz", domain.UnitOunce},
		{"serving", domain.UnitServing},
		// Unmapped measures pass through; conversion treats them as grams.
		{"medium", domain.PortionUnit("medium")},
		{"glass", domain.PortionUnit("glass")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, mapping.NormalizeUnit(tt.raw))
		})
	}
}

func TestPlanItemToRequest_RoundTripsThroughNormalization(t *testing.T) {
	item := domain.PlanItem{
		Label:    "Dal Tadka",
		Quantity: 1,
		Measure:  "cup",
		Calories: 220,
		Protein:  12,
		Carbs:    30,
		Fats:     6,
	}

	entry, err := mapping.ToDomainFoodEntry(mapping.PlanItemToRequest(item))

	require.NoError(t, err)
	assert.Equal(t, "Dal Tadka", entry.Name)
	assert.Equal(t, domain.UnitCup, entry.Unit)
	assert.Equal(t, domain.Nutrition{Calories: 220, Protein: 12, Carbs: 30, Fats: 6}, entry.Nutrition)
}
