package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akverma/loanlens/internal/analysis"
	"github.com/akverma/loanlens/internal/app"
	"github.com/akverma/loanlens/internal/config"
	"github.com/akverma/loanlens/internal/decision"
	"github.com/akverma/loanlens/internal/history"
)

// runApp trains the model, builds the services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := config.Load()

	// The TUI owns the terminal, so training runs silently here.
	session, err := trainSession(cmd, cfg, zap.NewNop())
	if err != nil {
		return err
	}

	engine, err := buildEngine(cmd, cfg)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	return app.Run(app.Options{
		Session: session,
		Engine:  engine,
		Store:   store,
	})
}

// trainSession runs the analysis pipeline on the configured dataset.
func trainSession(cmd *cobra.Command, cfg *config.Config, log *zap.Logger) (*analysis.Session, error) {
	runCfg := analysis.DefaultConfig(resolveDataPath(cmd, cfg))
	runCfg.Seed = cfg.Seed

	session, err := analysis.Run(runCfg, log)
	if err != nil {
		return nil, fmt.Errorf("train model: %w", err)
	}
	return session, nil
}

// buildEngine compiles the deny rules, from the override file when one
// is configured, otherwise the embedded defaults.
func buildEngine(cmd *cobra.Command, cfg *config.Config) (*decision.Engine, error) {
	var (
		rs  *decision.Ruleset
		err error
	)
	if path := resolveRulesetPath(cmd, cfg); path != "" {
		rs, err = decision.LoadRuleset(path)
	} else {
		rs, err = decision.DefaultRuleset()
	}
	if err != nil {
		return nil, fmt.Errorf("load ruleset: %w", err)
	}

	engine, err := decision.NewEngine(rs)
	if err != nil {
		return nil, fmt.Errorf("compile ruleset: %w", err)
	}
	return engine, nil
}
