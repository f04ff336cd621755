package services

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	portsrepo "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/repositories"
	portssvc "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/services"
	"github.com/Kuldeep2822k/meal_planner_app/internal/dto"
	"github.com/Kuldeep2822k/meal_planner_app/internal/utils/portions"
)

// minQueryLength is the shortest query treated as a real search. Anything
// shorter returns empty without touching the backend.
const minQueryLength = 2

// FoodService answers food searches through a pluggable backend, falling back
// to a bundled static food list when the backend fails, and scales lookup
// nutrients to a chosen portion for the preview/confirm-add flow.
type FoodService struct {
	source   portsrepo.FoodSource
	fallback []domain.FoodCandidate
	logger   *slog.Logger
}

var _ portssvc.FoodSvcFacade = (*FoodService)(nil)

// NewFoodService wires the backend and the fallback list. A nil fallback
// means "no fallback": backend failures then surface as empty results.
func NewFoodService(source portsrepo.FoodSource, fallback []domain.FoodCandidate, logger *slog.Logger) *FoodService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FoodService{source: source, fallback: fallback, logger: logger}
}

// Search returns candidates for the query. Backend errors never escape this
// boundary: they are logged and answered from the fallback list instead.
// Context cancellation is the exception — a cancelled search is abandoned and
// its error returned, so a partial lookup never reaches the ledger.
func (s *FoodService) Search(ctx context.Context, query string) ([]domain.FoodCandidate, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLength {
		return []domain.FoodCandidate{}, nil
	}

	results, err := s.source.SearchFoods(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("food lookup failed, using bundled food list",
			slog.String("query", query), slog.String("error", err.Error()))
		return s.searchFallback(query), nil
	}
	if results == nil {
		results = []domain.FoodCandidate{}
	}
	return results, nil
}

// Preview scales the candidate's per-100g nutrients to the chosen portion.
func (s *FoodService) Preview(candidate domain.FoodCandidate, amount float64, unit domain.PortionUnit) dto.NutritionPreview {
	return dto.NutritionPreview{
		Food:      candidate,
		Portion:   amount,
		Unit:      unit,
		Grams:     portions.ToGrams(amount, unit),
		Nutrition: portions.ScalePer100(candidate.Nutrients, amount, unit),
	}
}

func (s *FoodService) searchFallback(query string) []domain.FoodCandidate {
	needle := strings.ToLower(query)
	matches := []domain.FoodCandidate{}
	for _, food := range s.fallback {
		if strings.Contains(strings.ToLower(food.Label), needle) {
			matches = append(matches, food)
		}
	}
	return matches
}
