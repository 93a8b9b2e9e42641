package config

import (
	"testing"

	"github.com/akverma/loanlens/internal/tree"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LOANLENS_DATA", "LOANLENS_DB", "LOANLENS_RULESET", "LOANLENS_SEED", "LOANLENS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DataPath != "data/loans.csv" {
		t.Errorf("DataPath = %q", cfg.DataPath)
	}
	if cfg.Seed != tree.DefaultSeed {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LOANLENS_DATA", "/tmp/other.csv")
	t.Setenv("LOANLENS_SEED", "7")
	t.Setenv("LOANLENS_ADDR", ":9999")

	cfg := Load()
	if cfg.DataPath != "/tmp/other.csv" {
		t.Errorf("DataPath = %q", cfg.DataPath)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
}

func TestLoad_BadSeedFallsBack(t *testing.T) {
	t.Setenv("LOANLENS_SEED", "not-a-number")

	if cfg := Load(); cfg.Seed != tree.DefaultSeed {
		t.Errorf("Seed = %d, want default", cfg.Seed)
	}
}
