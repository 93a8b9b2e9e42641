package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akverma/loanlens/internal/config"
	"github.com/akverma/loanlens/internal/export"
	"github.com/akverma/loanlens/internal/history"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the decision history to an XLSX workbook",
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

		records, err := store.List(cmd.Context(), 0)
		if err != nil {
			return err
		}

		data, err := export.DecisionsXLSX(records)
		if err != nil {
			return fmt.Errorf("build workbook: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		fmt.Printf("Exported %d decisions to %s\n", len(records), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "decisions.xlsx", "Output file path")
}
