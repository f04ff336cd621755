// Package app composes the planner from configuration: it picks the snapshot
// store, builds the food-lookup backend and hands the embedding shell a ready
// service container.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portsrepo "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/repositories"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/services"
	"github.com/Kuldeep2822k/meal_planner_app/internal/platform/config"
	"github.com/Kuldeep2822k/meal_planner_app/internal/repositories/database/mongodb"
	"github.com/Kuldeep2822k/meal_planner_app/internal/repositories/database/pgsql"
	"github.com/Kuldeep2822k/meal_planner_app/internal/repositories/foodapi"
	"github.com/Kuldeep2822k/meal_planner_app/internal/repositories/storage/filestore"
	"github.com/Kuldeep2822k/meal_planner_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

// App is the assembled planner plus the resources it holds open.
type App struct {
	Services *services.ServiceContainer
	Config   *config.Config

	pgPool  *pgxpool.Pool
	mongoDB *mongo.Database
}

// New loads configuration and assembles the planner. Snapshot store selection
// follows the configuration: PostgreSQL when PGSQL_URL is set, else MongoDB
// when MONGO_URI is set, else the JSON file store.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := slog.LevelDebug
	if cfg.IsProduction {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	a := &App{Config: cfg}

	snapshots, err := a.openSnapshotStore(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	foods := foodapi.NewUSDAClient(cfg.FoodAPIBaseURL, cfg.FoodAPIKey, cfg.FoodAPITimeout)
	a.Services = services.NewServiceContainer(ctx, snapshots, foods, foodapi.StaticFoods(), logger)
	return a, nil
}

// Close releases any database connections the app holds.
func (a *App) Close() {
	database.ClosePgxPool(a.pgPool)
	database.CloseMongoDatabase(a.mongoDB)
}

func (a *App) openSnapshotStore(ctx context.Context, cfg *config.Config) (portsrepo.SnapshotRepository, error) {
	switch {
	case cfg.DatabaseURL != "":
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL snapshot store: %w", err)
		}
		a.pgPool = pool
		repo := pgsql.NewPgxSnapshotRepository(pool, cfg.LedgerKey)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil

	case cfg.MongoURI != "":
		db, err := database.NewMongoDatabase(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to open MongoDB snapshot store: %w", err)
		}
		a.mongoDB = db
		return mongodb.NewSnapshotRepository(db, cfg.LedgerKey), nil

	default:
		return filestore.New(cfg.SnapshotPath), nil
	}
}
