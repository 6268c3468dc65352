// config.go - Handles configuration for the project

package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string // Port the API server listens on
	DBPath      string // Path to the SQLite database file
	JWTSecret   string // Secret key for signing access tokens
	AppURL      string // Public base URL, used to resolve stored image paths
	StoragePath string // Directory for uploaded files (served under /storage)
	Seed        bool   // Seed sample products on startup if the table is empty
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "catalog.db"),
		JWTSecret:   getEnv("JWT_SECRET", "supersecret"),
		AppURL:      getEnv("APP_URL", "http://localhost:8080"),
		StoragePath: getEnv("STORAGE_PATH", "storage"),
		Seed:        getEnv("SEED", "false") == "true",
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
