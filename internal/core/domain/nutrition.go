package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Nutrition holds the four tracked nutrient amounts: calories in kcal, the
// macros in grams. All stored values are non-negative.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Add returns the elementwise sum of n and other.
func (n Nutrition) Add(other Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fats:     n.Fats + other.Fats,
	}
}

// Scale returns n multiplied by factor, unrounded.
func (n Nutrition) Scale(factor float64) Nutrition {
	return Nutrition{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fats:     n.Fats * factor,
	}
}

// Rounded applies the display precision: calories to the nearest integer,
// macros to one decimal place, halves rounding up.
func (n Nutrition) Rounded() Nutrition {
	return Nutrition{
		Calories: RoundCalories(n.Calories),
		Protein:  RoundMacro(n.Protein),
		Carbs:    RoundMacro(n.Carbs),
		Fats:     RoundMacro(n.Fats),
	}
}

// RoundCalories rounds a calorie amount to the nearest whole kcal, half-up.
func RoundCalories(v float64) float64 {
	return roundHalfUp(v, 0)
}

// RoundMacro rounds a macro amount (grams) to one decimal place, half-up.
func RoundMacro(v float64) float64 {
	return roundHalfUp(v, 1)
}

// roundHalfUp goes through decimal rather than math.Round on the raw float so
// that values like 2.675 land on 2.7 instead of the binary-float neighbour.
func roundHalfUp(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
