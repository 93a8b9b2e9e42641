package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akverma/loanlens/internal/config"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the classifier and print its evaluation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		log, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer log.Sync()

		session, err := trainSession(cmd, cfg, log)
		if err != nil {
			return err
		}

		fmt.Printf("Trained on %d applications (%d train, %d test)\n",
			session.Rows, session.TrainRows, session.TestRows)
		fmt.Println(session.Metrics.String())

		showTree, _ := cmd.Flags().GetBool("tree")
		if showTree {
			fmt.Println()
			fmt.Println(session.Model.Render())
		}
		return nil
	},
}

func init() {
	trainCmd.Flags().Bool("tree", false, "Also print the fitted decision tree")
}
