package services

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/Kuldeep2822k/meal_planner_app/internal/apperrors"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	portsrepo "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/repositories"
	portssvc "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/services"
	"github.com/Kuldeep2822k/meal_planner_app/internal/dto"
	"github.com/Kuldeep2822k/meal_planner_app/internal/utils/mapping"
	"github.com/google/uuid"
)

// LedgerService is the aggregate root of the planner: it owns the six meal
// slots, validates and normalizes incoming entries, aggregates nutrition and
// re-persists a full snapshot after every successful mutation.
//
// The service is built for a single-goroutine, event-driven caller (one
// user-triggered mutation in flight at a time) and takes no locks. Snapshot
// writes happen before the caller is notified of success; a failed write is
// logged and swallowed, leaving in-memory state authoritative for the rest of
// the session.
type LedgerService struct {
	slots      map[domain.MealSlot][]domain.FoodEntry
	goals      domain.Goals
	activeSlot domain.MealSlot

	repo        portsrepo.SnapshotRepository
	logger      *slog.Logger
	subscribers map[int]func()
	nextSubID   int
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// NewLedgerService constructs an empty ledger with default goals and
// immediately attempts to restore prior state from the snapshot store. A
// missing snapshot is a normal first run; any other load failure is logged
// and the ledger starts fresh.
func NewLedgerService(ctx context.Context, repo portsrepo.SnapshotRepository, logger *slog.Logger) *LedgerService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &LedgerService{
		slots:       domain.EmptySnapshot().Meals,
		goals:       domain.DefaultGoals(),
		repo:        repo,
		logger:      logger,
		subscribers: make(map[int]func()),
	}

	snap, err := repo.LoadSnapshot(ctx)
	switch {
	case err == nil && snap != nil:
		s.slots = snap.Meals
		s.goals = snap.Goals
	case errors.Is(err, apperrors.ErrNotFound):
		// First run, nothing to restore.
	case err != nil:
		logger.Error("failed to restore ledger snapshot", slog.String("error", err.Error()))
	}
	return s
}

// AddEntry validates and normalizes the candidate, appends it to the resolved
// slot, persists and notifies subscribers. On any error the ledger is
// unchanged.
func (s *LedgerService) AddEntry(ctx context.Context, req dto.AddEntryRequest, target domain.MealSlot) (*domain.FoodEntry, error) {
	slot, err := s.resolveSlot(target)
	if err != nil {
		return nil, err
	}

	entry, err := mapping.ToDomainFoodEntry(req)
	if err != nil {
		return nil, err
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	s.slots[slot] = append(s.slots[slot], entry)
	s.persist(ctx)
	s.notify()
	return &entry, nil
}

// RemoveEntry removes the entry with the given ID from the slot. The second
// removal of the same ID is a no-op returning false; nothing is persisted or
// notified unless a removal actually happened.
func (s *LedgerService) RemoveEntry(ctx context.Context, slot domain.MealSlot, entryID string) bool {
	entries, ok := s.slots[slot]
	if !ok {
		return false
	}
	for i, e := range entries {
		if e.ID == entryID {
			s.slots[slot] = append(entries[:i:i], entries[i+1:]...)
			s.persist(ctx)
			s.notify()
			return true
		}
	}
	return false
}

// TotalNutrition sums every entry across every slot and rounds to display
// precision. The sum is commutative, so entry order never matters.
func (s *LedgerService) TotalNutrition() domain.Nutrition {
	var total domain.Nutrition
	for _, entries := range s.slots {
		for _, e := range entries {
			total = total.Add(e.Nutrition)
		}
	}
	return total.Rounded()
}

// NutrientTotal returns a single component of TotalNutrition. Note the kind
// for fats is "fat", matching the chart layer's vocabulary.
func (s *LedgerService) NutrientTotal(kind string) float64 {
	totals := s.TotalNutrition()
	switch kind {
	case "calories":
		return totals.Calories
	case "protein":
		return totals.Protein
	case "carbs":
		return totals.Carbs
	case "fat":
		return totals.Fats
	default:
		return 0
	}
}

// SetGoals replaces the goals wholesale. Each missing or unusable field
// (negative, NaN, Inf) falls back to that field's default.
func (s *LedgerService) SetGoals(ctx context.Context, req dto.UpdateGoalsRequest) {
	defaults := domain.DefaultGoals()
	s.goals = domain.Goals{
		Calories: goalOrDefault(req.Calories, defaults.Calories),
		Protein:  goalOrDefault(req.Protein, defaults.Protein),
		Carbs:    goalOrDefault(req.Carbs, defaults.Carbs),
		Fats:     goalOrDefault(req.Fats, defaults.Fats),
	}
	s.persist(ctx)
	s.notify()
}

// ApplyPreset swaps the goals for a bundled preset profile.
func (s *LedgerService) ApplyPreset(ctx context.Context, preset domain.GoalPreset) bool {
	goals, ok := domain.PresetGoals(preset)
	if !ok {
		return false
	}
	s.goals = goals
	s.persist(ctx)
	s.notify()
	return true
}

// Goals returns the current daily targets.
func (s *LedgerService) Goals() domain.Goals {
	return s.goals
}

// LoadPlan clears every slot and loads the plan's items through the same
// normalization as AddEntry, so malformed items are clamped rather than
// aborting the load. The snapshot is persisted once at the end.
func (s *LedgerService) LoadPlan(ctx context.Context, plan domain.MealPlan) {
	s.slots = domain.EmptySnapshot().Meals

	for slot, items := range plan.Meals {
		if !slot.IsValid() {
			s.logger.Warn("skipping unknown slot in meal plan",
				slog.String("plan", plan.ID), slog.String("slot", string(slot)))
			continue
		}
		for _, item := range items {
			entry, err := mapping.ToDomainFoodEntry(mapping.PlanItemToRequest(item))
			if err != nil {
				s.logger.Warn("skipping unusable plan item",
					slog.String("plan", plan.ID), slog.String("error", err.Error()))
				continue
			}
			entry.ID = uuid.NewString()
			s.slots[slot] = append(s.slots[slot], entry)
		}
	}

	s.persist(ctx)
	s.notify()
}

// ClearAllMeals empties every slot, keeping the goals.
func (s *LedgerService) ClearAllMeals(ctx context.Context) {
	s.slots = domain.EmptySnapshot().Meals
	s.persist(ctx)
	s.notify()
}

// Entries returns a copy of the slot's entries in insertion order.
func (s *LedgerService) Entries(slot domain.MealSlot) []domain.FoodEntry {
	entries := s.slots[slot]
	out := make([]domain.FoodEntry, len(entries))
	copy(out, entries)
	return out
}

// Snapshot returns a deep copy of the full ledger state.
func (s *LedgerService) Snapshot() domain.Snapshot {
	meals := make(map[domain.MealSlot][]domain.FoodEntry, len(s.slots))
	for slot, entries := range s.slots {
		copied := make([]domain.FoodEntry, len(entries))
		copy(copied, entries)
		meals[slot] = copied
	}
	return domain.Snapshot{Meals: meals, Goals: s.goals}
}

// SetActiveSlot marks the slot pending insertions go to, mirroring the
// "open meal" action in the UI.
func (s *LedgerService) SetActiveSlot(slot domain.MealSlot) error {
	if !slot.IsValid() {
		return apperrors.ErrInvalidSlot
	}
	s.activeSlot = slot
	return nil
}

// ClearActiveSlot drops the selection, mirroring the "close selector" action.
func (s *LedgerService) ClearActiveSlot() {
	s.activeSlot = ""
}

// ActiveSlot returns the selected slot, if any.
func (s *LedgerService) ActiveSlot() (domain.MealSlot, bool) {
	return s.activeSlot, s.activeSlot != ""
}

// Subscribe registers a change callback, fired synchronously after every
// successful mutation. The returned function removes the subscription.
func (s *LedgerService) Subscribe(fn func()) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

func (s *LedgerService) resolveSlot(target domain.MealSlot) (domain.MealSlot, error) {
	if target != "" {
		if !target.IsValid() {
			return "", apperrors.ErrInvalidSlot
		}
		return target, nil
	}
	if s.activeSlot == "" {
		return "", apperrors.ErrNoActiveSlot
	}
	return s.activeSlot, nil
}

// persist writes the full snapshot to the store. Failures are logged and
// swallowed; the in-memory ledger remains ground truth.
func (s *LedgerService) persist(ctx context.Context) {
	if err := s.repo.SaveSnapshot(ctx, s.Snapshot()); err != nil {
		s.logger.Error("failed to persist ledger snapshot", slog.String("error", err.Error()))
	}
}

func (s *LedgerService) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}

func goalOrDefault(v *float64, fallback float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return fallback
	}
	return *v
}
