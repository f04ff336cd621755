package dto

import "github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"

// ExportData is the file-export view of a ledger: a dated snapshot of every
// meal, the aggregated totals, and the goals. It is a read-only projection of
// core state; document/PDF rendering consumes the same data.
type ExportData struct {
	Date   string                                 `json:"date"`
	Meals  map[domain.MealSlot][]domain.FoodEntry `json:"meals"`
	Totals domain.Nutrition                       `json:"totals"`
	Goals  domain.Goals                           `json:"goals"`
}

// NutritionPreview shows what a lookup candidate would contribute at a chosen
// portion, before the entry is confirmed and added.
type NutritionPreview struct {
	Food      domain.FoodCandidate `json:"food"`
	Portion   float64              `json:"portion"`
	Unit      domain.PortionUnit   `json:"unit"`
	Grams     float64              `json:"grams"`
	Nutrition domain.Nutrition     `json:"nutrition"`
}
