package repositories

import (
	"context"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
)

// FoodSource is a food-database backend returning candidates with per-100g
// nutrients. Implementations may call out to the network; the caller decides
// what to do on failure (the food service falls back to the bundled list).
type FoodSource interface {
	SearchFoods(ctx context.Context, query string) ([]domain.FoodCandidate, error)
}
