package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the adapter settings of the planner: where snapshots persist
// and how the food-lookup backend is reached. The core services take no
// configuration of their own.
type Config struct {
	// SnapshotPath is the JSON file the filestore writes. Used when neither
	// database URL is set.
	SnapshotPath string

	// DatabaseURL selects the PostgreSQL snapshot store when non-empty.
	DatabaseURL string

	// MongoURI and MongoDatabase select the MongoDB snapshot store when the
	// URI is non-empty.
	MongoURI      string
	MongoDatabase string

	// LedgerKey partitions snapshots in the database stores.
	LedgerKey string

	FoodAPIBaseURL string
	FoodAPIKey     string
	FoodAPITimeout time.Duration

	IsProduction bool
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Every setting has a usable default.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("SNAPSHOT_PATH", "mealplanner.json")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_DATABASE", "mealplanner")
	viper.SetDefault("LEDGER_KEY", "default")
	viper.SetDefault("FOOD_API_BASE_URL", "https://api.nal.usda.gov/fdc/v1")
	viper.SetDefault("FOOD_API_KEY", "DEMO_KEY")
	viper.SetDefault("FOOD_API_TIMEOUT", "10s")
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{
		SnapshotPath:   viper.GetString("SNAPSHOT_PATH"),
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		MongoURI:       viper.GetString("MONGO_URI"),
		MongoDatabase:  viper.GetString("MONGO_DATABASE"),
		LedgerKey:      viper.GetString("LEDGER_KEY"),
		FoodAPIBaseURL: viper.GetString("FOOD_API_BASE_URL"),
		FoodAPIKey:     viper.GetString("FOOD_API_KEY"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
	}

	timeoutStr := viper.GetString("FOOD_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for FOOD_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.FoodAPITimeout = timeout

	if cfg.FoodAPIKey == "DEMO_KEY" {
		log.Println("Warning: FOOD_API_KEY not set. Using the shared DEMO_KEY, which is heavily rate limited.")
	}

	return cfg, nil
}
