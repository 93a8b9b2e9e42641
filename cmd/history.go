package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akverma/loanlens/internal/config"
	"github.com/akverma/loanlens/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past decisions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		store, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No decisions recorded yet.")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  income %.0f  loan %.0f  %-12s  %s\n",
				rec.CreatedAt.Format("2006-01-02 15:04"),
				rec.ApplicantIncome, rec.LoanAmount,
				rec.Verdict, strings.Join(rec.Reasons, ", "))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of decisions to show (0 for all)")
}
