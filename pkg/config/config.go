package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	DebounceInterval time.Duration
	TrendWeeks       int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	debounce := 300 * time.Millisecond
	if raw := os.Getenv("QUERY_DEBOUNCE"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			debounce = parsed
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=tasktracker port=5432 sslmode=disable"),
		DebounceInterval: debounce,
		TrendWeeks:       8,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
