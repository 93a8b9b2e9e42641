package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akverma/loanlens/internal/config"
	"github.com/akverma/loanlens/internal/history"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded decisions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete decision history without --yes")
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

		if err := store.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Decision history cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
