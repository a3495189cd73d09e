package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/gigtax/t2125-calculator/internal/calculation"
	"github.com/gigtax/t2125-calculator/internal/domain"
	"github.com/gigtax/t2125-calculator/internal/output"
)

var (
	genInput       string
	genYear        int
	genFormat      string
	genOutput      string
	genCCAOverride string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the T2125 statement from the ledger",
	Long: `Generate assembles the full line-numbered T2125 statement: Part 3
income, Part 4 expenses with the 50% meals limit, the Chart A motor
vehicle schedule, capital cost allowance on line 9936 and the Part 5
net-income walk-down.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genInput, "input", "i", "", "YAML ledger file (default: read the database)")
	generateCmd.Flags().IntVarP(&genYear, "year", "y", 0, "restrict records to one tax year (0 = all)")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "console", "output format (see 't2125 formats')")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "write to this file ('-' or empty = stdout for console, timestamped file otherwise)")
	generateCmd.Flags().StringVar(&genCCAOverride, "cca", "", "override the computed line 9936 CCA total")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ledger, err := loadLedger(cmd.Context(), genInput, genYear)
	if err != nil {
		return err
	}

	expenses, income, mileage := ledger.Expenses, ledger.Income, ledger.Mileage
	settings := ledger.Settings
	if genYear != 0 {
		f := calculation.YearFilter(genYear)
		expenses = calculation.FilterByPeriod(expenses, f)
		income = calculation.FilterByPeriod(income, f)
		mileage = calculation.FilterByPeriod(mileage, f)
		if settings == nil {
			settings = &domain.MileageSettings{Year: genYear}
		}
	}

	var ccaOverride *decimal.Decimal
	if genCCAOverride != "" {
		d, err := decimal.NewFromString(genCCAOverride)
		if err != nil {
			return fmt.Errorf("invalid --cca value %q: %w", genCCAOverride, err)
		}
		ccaOverride = &d
	}

	mapper := calculation.NewMapper().
		WithHomeOfficePercent(ledger.HomeOfficePercent).
		WithLogger(log)
	report := mapper.GenerateT2125Data(ledger.Profile, expenses, income, mileage, ledger.Assets, settings, ccaOverride)

	for _, w := range report.Warnings {
		log.Warn(w)
	}

	formatter := output.GetFormatterByName(genFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %s)", genFormat,
			strings.Join(output.AvailableFormatterNames(), ", "))
	}

	switch {
	case genOutput != "" && genOutput != "-":
		data, err := formatter.Format(report)
		if err != nil {
			return fmt.Errorf("format report: %w", err)
		}
		if err := os.WriteFile(genOutput, data, 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.WithField("file", genOutput).Info("report written")
	case formatter.Name() == "console" || genOutput == "-":
		data, err := formatter.Format(report)
		if err != nil {
			return fmt.Errorf("format report: %w", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
	default:
		filename, err := output.WriteFormatted(formatter, report, extensionFor(formatter.Name()))
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.WithField("file", filename).Info("report written")
	}
	return nil
}

func extensionFor(format string) string {
	switch format {
	case "detailed-csv":
		return "csv"
	default:
		return format
	}
}
