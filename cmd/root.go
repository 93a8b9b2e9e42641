package cmd

import (
	"github.com/spf13/cobra"

	"github.com/akverma/loanlens/internal/config"
	"github.com/akverma/loanlens/internal/history"
)

var rootCmd = &cobra.Command{
	Use:   "loanlens",
	Short: "Loan approval decision support",
	Long:  "Loanlens — terminal tool that screens loan applications with deny rules and a decision-tree classifier trained on historical data.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LOANLENS_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Path to the loan applications CSV (overrides LOANLENS_DATA env var)")
	rootCmd.PersistentFlags().String("ruleset", "", "Path to a JSON ruleset file (overrides LOANLENS_RULESET env var)")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(decideCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LOANLENS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, history.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, history.EnsureDir(cfg.DBPath)
	}
	return history.DefaultDBPath()
}

// resolveDataPath returns the dataset path, --data flag first.
func resolveDataPath(cmd *cobra.Command, cfg *config.Config) string {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p
	}
	return cfg.DataPath
}

// resolveRulesetPath returns the ruleset override path, empty for the
// embedded default rules.
func resolveRulesetPath(cmd *cobra.Command, cfg *config.Config) string {
	if p, _ := cmd.Flags().GetString("ruleset"); p != "" {
		return p
	}
	return cfg.RulesetPath
}
