package services

import (
	"context"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/dto"
)

// FoodSvcFacade searches for foods and previews portion-scaled nutrition.
type FoodSvcFacade interface {
	// Search returns candidates for the query. Queries shorter than two
	// characters return empty without touching the backend; backend failures
	// fall back to the bundled food list.
	Search(ctx context.Context, query string) ([]domain.FoodCandidate, error)

	// Preview scales a candidate's per-100g nutrients to the chosen portion.
	Preview(candidate domain.FoodCandidate, amount float64, unit domain.PortionUnit) dto.NutritionPreview
}

// PlannerSvcFacade exposes the bundled sample meal plans.
type PlannerSvcFacade interface {
	ListPlans() []domain.MealPlan
	GetPlan(id string) (*domain.MealPlan, error)

	// ApplyPlan loads the identified plan into the ledger.
	ApplyPlan(ctx context.Context, id string) error
}
