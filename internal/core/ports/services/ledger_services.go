// Package services defines the inbound facades of the core. The presentation
// layer holds these interfaces and re-renders from them after every change
// notification; nothing here is tied to any UI event bus.
package services

import (
	"context"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/dto"
)

// LedgerSvcFacade is the meal ledger: slot state, aggregation, goals and the
// change-notification hook.
type LedgerSvcFacade interface {
	// AddEntry validates and normalizes a candidate and appends it to the
	// target slot, or to the active slot when target is empty. The stored
	// entry is returned on success.
	AddEntry(ctx context.Context, req dto.AddEntryRequest, target domain.MealSlot) (*domain.FoodEntry, error)

	// RemoveEntry removes the matching entry and reports whether a removal
	// happened. Removing an absent entry is a no-op.
	RemoveEntry(ctx context.Context, slot domain.MealSlot, entryID string) bool

	// TotalNutrition sums every entry across every slot, rounded to display
	// precision. Pure with respect to ledger state.
	TotalNutrition() domain.Nutrition

	// NutrientTotal returns one component of TotalNutrition by kind
	// (calories, protein, carbs, fat); unknown kinds return 0.
	NutrientTotal(kind string) float64

	// SetGoals replaces the goals wholesale with per-field default fallback.
	SetGoals(ctx context.Context, req dto.UpdateGoalsRequest)

	// ApplyPreset applies a named goal preset, reporting whether the name was
	// known.
	ApplyPreset(ctx context.Context, preset domain.GoalPreset) bool

	Goals() domain.Goals

	// LoadPlan clears every slot and loads the plan's items through the
	// normal validation path, persisting once at the end.
	LoadPlan(ctx context.Context, plan domain.MealPlan)

	// ClearAllMeals empties every slot, keeping goals.
	ClearAllMeals(ctx context.Context)

	Entries(slot domain.MealSlot) []domain.FoodEntry
	Snapshot() domain.Snapshot

	SetActiveSlot(slot domain.MealSlot) error
	ClearActiveSlot()
	ActiveSlot() (domain.MealSlot, bool)

	// Subscribe registers a callback invoked synchronously after every
	// successful mutation; the returned function unsubscribes it.
	Subscribe(fn func()) (unsubscribe func())
}
