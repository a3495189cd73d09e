package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gigtax/t2125-calculator/internal/calculation"
)

var (
	estInput string
	estYear  int
	estMonth int
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Print the running deduction breakdown and rough tax savings",
	Long: `Estimate computes the in-year deduction breakdown (meals at 50%,
motor vehicle, home office, CCA and the remainder) plus an
order-of-magnitude tax-savings figure. The savings number uses a
deliberately coarse rate ladder and is for motivation only, not a tax
calculation.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estInput, "input", "i", "", "YAML ledger file (default: read the database)")
	estimateCmd.Flags().IntVarP(&estYear, "year", "y", 0, "restrict records to one tax year (0 = all)")
	estimateCmd.Flags().IntVarP(&estMonth, "month", "m", 0, "restrict records to one month of --year")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if estMonth != 0 && estYear == 0 {
		return fmt.Errorf("--month requires --year")
	}

	ledger, err := loadLedger(cmd.Context(), estInput, estYear)
	if err != nil {
		return err
	}

	var filter *calculation.PeriodFilter
	switch {
	case estMonth != 0:
		filter = &calculation.PeriodFilter{Year: estYear, Month: estMonth}
	case estYear != 0:
		filter = calculation.YearFilter(estYear)
	}

	cfg := calculation.DefaultEstimatorConfig()
	cfg.HomeOfficePercent = ledger.HomeOfficePercent
	estimate := calculation.NewEstimator(cfg).
		Estimate(ledger.Expenses, ledger.Income, ledger.Mileage, ledger.Assets, filter)

	out, err := json.MarshalIndent(estimate, "", "  ")
	if err != nil {
		return fmt.Errorf("encode estimate: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
