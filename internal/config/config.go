package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/akverma/loanlens/internal/tree"
)

// Config holds the environment-driven application settings. Flags take
// precedence over these values, which in turn take precedence over the
// built-in defaults.
type Config struct {
	// DataPath is the loan-application CSV.
	DataPath string

	// DBPath is the decision-history SQLite file; empty means the
	// default XDG location.
	DBPath string

	// RulesetPath overrides the embedded deny rules; empty keeps them.
	RulesetPath string

	// Seed for the train/test partition.
	Seed int64

	// Addr is the listen address for `loanlens serve`.
	Addr string
}

// Load reads configuration from a .env file (if present) and the
// process environment.
func Load() *Config {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	return &Config{
		DataPath:    getEnv("LOANLENS_DATA", "data/loans.csv"),
		DBPath:      getEnv("LOANLENS_DB", ""),
		RulesetPath: getEnv("LOANLENS_RULESET", ""),
		Seed:        getEnvAsInt64("LOANLENS_SEED", tree.DefaultSeed),
		Addr:        getEnv("LOANLENS_ADDR", ":8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
