package output

import (
	"bytes"
	"encoding/csv"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

// CSVFormatter implements the summary CSV output: one row per form line in
// schedule order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.T2125Data) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Section", "Line", "Description", "Amount"}); err != nil {
		return nil, err
	}

	income := [][3]string{
		{"line3A_grossSales", "Gross sales including GST/HST", report.Part3.Line3A.StringFixed(2)},
		{"line3B_gstHstCollected", "GST/HST collected", report.Part3.Line3B.StringFixed(2)},
		{"line3C_adjustedGrossSales", "Adjusted gross sales", report.Part3.Line3C.StringFixed(2)},
		{"line8230_otherIncome", "Other income", report.Part3.Line8230.StringFixed(2)},
		{"line8299_grossBusinessIncome", "Gross business income", report.Part3.Line8299.StringFixed(2)},
	}
	for _, row := range income {
		if err := w.Write([]string{"Part 3", row[0], row[1], row[2]}); err != nil {
			return nil, err
		}
	}

	for _, item := range report.Part4.LineItems() {
		if err := w.Write([]string{"Part 4", string(item.Key), item.Label, item.Amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"Part 4", "line9368_totalExpenses", "Total expenses", report.Part4.Line9368.StringFixed(2)}); err != nil {
		return nil, err
	}

	closing := [][3]string{
		{"line9369_netIncomeBeforeAdjustments", "Net income before adjustments", report.Part5.Line9369.StringFixed(2)},
		{"line9945_businessUseOfHome", "Business-use-of-home expenses", report.Part5.Line9945.StringFixed(2)},
		{"line9946_yourNetIncome", "Your net income", report.Part5.Line9946.StringFixed(2)},
	}
	for _, row := range closing {
		if err := w.Write([]string{"Part 5", row[0], row[1], row[2]}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDetailedFormatter implements the audit-trail CSV: one row per
// expense, chronological, including expenses whose category maps to no
// form line.
type CSVDetailedFormatter struct{}

func (c CSVDetailedFormatter) Name() string { return "detailed-csv" }

func (c CSVDetailedFormatter) Format(report *domain.T2125Data) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Date", "Merchant", "Category", "CategoryLabel", "Line", "Amount", "Deductible"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, d := range report.ExpenseDetails {
		row := []string{
			d.Date,
			d.Merchant,
			string(d.Category),
			d.CategoryLabel,
			d.LineNumber,
			d.Amount.StringFixed(2),
			d.DeductibleAmount.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
