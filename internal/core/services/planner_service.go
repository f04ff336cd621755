package services

import (
	"context"
	"fmt"

	"github.com/Kuldeep2822k/meal_planner_app/internal/apperrors"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	portssvc "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/services"
)

// PlannerService exposes the bundled sample meal plans and loads them into
// the ledger. Plans are static data; the catalog lives in sample_plans.go.
type PlannerService struct {
	plans  []domain.MealPlan
	ledger portssvc.LedgerSvcFacade
}

var _ portssvc.PlannerSvcFacade = (*PlannerService)(nil)

// NewPlannerService builds a planner over the bundled plan catalog.
func NewPlannerService(ledger portssvc.LedgerSvcFacade) *PlannerService {
	return &PlannerService{plans: SamplePlans(), ledger: ledger}
}

// ListPlans returns every bundled plan in catalog order.
func (s *PlannerService) ListPlans() []domain.MealPlan {
	out := make([]domain.MealPlan, len(s.plans))
	copy(out, s.plans)
	return out
}

// GetPlan returns the plan with the given ID.
func (s *PlannerService) GetPlan(id string) (*domain.MealPlan, error) {
	for i := range s.plans {
		if s.plans[i].ID == id {
			plan := s.plans[i]
			return &plan, nil
		}
	}
	return nil, fmt.Errorf("meal plan %q: %w", id, apperrors.ErrNotFound)
}

// ApplyPlan replaces the ledger's meals with the identified plan's items.
func (s *PlannerService) ApplyPlan(ctx context.Context, id string) error {
	plan, err := s.GetPlan(id)
	if err != nil {
		return err
	}
	s.ledger.LoadPlan(ctx, *plan)
	return nil
}
