package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akverma/loanlens/internal/config"
	"github.com/akverma/loanlens/internal/encode"
	"github.com/akverma/loanlens/internal/history"
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Decide a single application from flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		session, err := trainSession(cmd, cfg, zap.NewNop())
		if err != nil {
			return err
		}
		engine, err := buildEngine(cmd, cfg)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		gender, _ := f.GetString("gender")
		married, _ := f.GetString("married")
		dependents, _ := f.GetString("dependents")
		education, _ := f.GetString("education")
		selfEmployed, _ := f.GetString("self-employed")
		propertyArea, _ := f.GetString("property-area")
		credit, _ := f.GetString("credit")
		applicantIncome, _ := f.GetFloat64("income")
		coapplicantIncome, _ := f.GetFloat64("coapplicant-income")
		loanAmount, _ := f.GetFloat64("loan")
		loanTerm, _ := f.GetFloat64("term")

		raw := encode.Application(gender, married, dependents, education,
			selfEmployed, propertyArea, credit,
			applicantIncome, coapplicantIncome, loanAmount, loanTerm)

		d, err := engine.Decide(raw, session.Model, session.Columns)
		if err != nil {
			return err
		}

		if noLog, _ := f.GetBool("no-log"); !noLog {
			dbPath, err := resolveDBPath(cmd, cfg)
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
			store, err := history.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()
			if err := store.Insert(cmd.Context(), history.NewRecord(raw, d)); err != nil {
				return fmt.Errorf("record decision: %w", err)
			}
		}

		fmt.Println("Loan", d.Verdict)
		fmt.Println(d.Reason())
		return nil
	},
}

func init() {
	f := decideCmd.Flags()
	f.String("gender", "Male", "Applicant gender (Male/Female)")
	f.String("married", "No", "Married (Yes/No)")
	f.String("dependents", "0", "Number of dependents (0/1/2/3+)")
	f.String("education", "Graduate", "Education (Graduate/Not Graduate)")
	f.String("self-employed", "No", "Self employed (Yes/No)")
	f.String("property-area", "Urban", "Property area (Urban/Semiurban/Rural)")
	f.String("credit", "Good", "Credit history (Good/Bad)")
	f.Float64("income", 0, "Applicant monthly income")
	f.Float64("coapplicant-income", 0, "Coapplicant monthly income")
	f.Float64("loan", 0, "Requested loan amount")
	f.Float64("term", 360, "Loan term in months")
	f.Bool("no-log", false, "Skip writing the decision to history")

	_ = decideCmd.MarkFlagRequired("income")
	_ = decideCmd.MarkFlagRequired("loan")
}
