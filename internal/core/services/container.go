package services

import (
	"context"
	"log/slog"

	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	portsrepo "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/repositories"
	portssvc "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/services"
)

// ServiceContainer holds one instance of every core service. The
// presentation layer receives this container and hands the facades to the UI
// modules that need them; nothing reaches into shared globals.
type ServiceContainer struct {
	Ledger  portssvc.LedgerSvcFacade
	Food    portssvc.FoodSvcFacade
	Planner portssvc.PlannerSvcFacade
	Export  portssvc.ExportSvcFacade
}

// NewServiceContainer wires the services together: the ledger over the
// snapshot store, the food service over the lookup backend and fallback list,
// and the planner and exporter over the ledger.
func NewServiceContainer(
	ctx context.Context,
	snapshots portsrepo.SnapshotRepository,
	foods portsrepo.FoodSource,
	fallback []domain.FoodCandidate,
	logger *slog.Logger,
) *ServiceContainer {
	ledger := NewLedgerService(ctx, snapshots, logger)
	return &ServiceContainer{
		Ledger:  ledger,
		Food:    NewFoodService(foods, fallback, logger),
		Planner: NewPlannerService(ledger),
		Export:  NewExportService(ledger),
	}
}
