package output

import (
	"bytes"
	"fmt"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

// ConsoleFormatter renders a plain-text statement for terminal use.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.T2125Data) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "T2125 — Statement of Business or Professional Activities")
	fmt.Fprintln(buf, "========================================================")

	id := report.Identification
	if id.YourName != "" {
		fmt.Fprintf(buf, "Name:            %s\n", id.YourName)
	}
	if id.BusinessName != "" {
		fmt.Fprintf(buf, "Business:        %s\n", id.BusinessName)
	}
	if id.IndustryCode != "" {
		fmt.Fprintf(buf, "Industry code:   %s\n", id.IndustryCode)
	}
	if id.FiscalPeriodFrom != "" || id.FiscalPeriodTo != "" {
		fmt.Fprintf(buf, "Fiscal period:   %s to %s\n", id.FiscalPeriodFrom, id.FiscalPeriodTo)
	}

	fmt.Fprintln(buf, "\nPart 3 — Business income")
	fmt.Fprintf(buf, "  3A   Gross sales (incl. GST/HST)     %14s\n", FormatCurrency(report.Part3.Line3A))
	fmt.Fprintf(buf, "  3B   GST/HST collected               %14s\n", FormatCurrency(report.Part3.Line3B))
	fmt.Fprintf(buf, "  3C   Adjusted gross sales            %14s\n", FormatCurrency(report.Part3.Line3C))
	fmt.Fprintf(buf, "  8230 Other income                    %14s\n", FormatCurrency(report.Part3.Line8230))
	fmt.Fprintf(buf, "  8299 Gross business income           %14s\n", FormatCurrency(report.Part3.Line8299))

	fmt.Fprintln(buf, "\nPart 4 — Business expenses")
	for _, item := range report.Part4.LineItems() {
		if item.Amount.IsZero() {
			continue
		}
		fmt.Fprintf(buf, "  %-42s %14s\n", item.Label, FormatCurrency(item.Amount))
	}
	fmt.Fprintf(buf, "  %-42s %14s\n", "Total expenses (9368)", FormatCurrency(report.Part4.Line9368))

	if !report.ChartA.TotalVehicle.IsZero() || !report.ChartA.TotalKm.IsZero() {
		fmt.Fprintln(buf, "\nChart A — Motor vehicle expenses")
		fmt.Fprintf(buf, "  Kilometres driven for business       %14s\n", FormatKm(report.ChartA.BusinessKm))
		fmt.Fprintf(buf, "  Total kilometres driven              %14s\n", FormatKm(report.ChartA.TotalKm))
		fmt.Fprintf(buf, "  Business use                         %14s\n", FormatPercentage(report.ChartA.BusinessUsePercent))
		fmt.Fprintf(buf, "  Total vehicle expenses               %14s\n", FormatCurrency(report.ChartA.TotalVehicle))
		fmt.Fprintf(buf, "  Allowable business portion           %14s\n", FormatCurrency(report.ChartA.BusinessPortion))
	}

	fmt.Fprintln(buf, "\nPart 5 — Net income")
	fmt.Fprintf(buf, "  9369 Net income before adjustments   %14s\n", FormatCurrency(report.Part5.Line9369))
	fmt.Fprintf(buf, "  9945 Business-use-of-home            %14s\n", FormatCurrency(report.Part5.Line9945))
	fmt.Fprintf(buf, "  9946 Your net income                 %14s\n", FormatCurrency(report.Part5.Line9946))

	if len(report.Warnings) > 0 {
		fmt.Fprintln(buf, "\nWarnings")
		for _, wrn := range report.Warnings {
			fmt.Fprintf(buf, "  ! %s\n", wrn)
		}
	}

	return buf.Bytes(), nil
}
