package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

// The aggregator functions in this file are pure: they depend only on the
// records and filter handed in, keep no state, and are safe to call
// concurrently.

// MileageSummary holds kilometre totals for a period.
type MileageSummary struct {
	TotalKm    decimal.Decimal `json:"totalKm"`
	BusinessKm decimal.Decimal `json:"businessKm"`
}

// CategorySummary is one row of a per-category expense breakdown.
type CategorySummary struct {
	Category   domain.Category `json:"category"`
	Label      string          `json:"label"`
	Total      decimal.Decimal `json:"total"`
	Deductible decimal.Decimal `json:"deductible"`
	Count      int             `json:"count"`
}

// SummaryTotals is the composite period summary consumed by dashboards
// and cross-checked against the mapper output.
type SummaryTotals struct {
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	TotalDeductible decimal.Decimal `json:"totalDeductible"`
	NetIncome       decimal.Decimal `json:"netIncome"`
	Mileage         MileageSummary  `json:"mileage"`
	ITCEligibleTax  decimal.Decimal `json:"itcEligibleTax"`
}

// TotalIncome sums gross income amounts for the period.
func TotalIncome(income []domain.IncomeEntry, f *PeriodFilter) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range FilterByPeriod(income, f) {
		total = total.Add(entry.GrossAmount)
	}
	return total
}

// TotalExpenses sums gross expense amounts for the period, preferring a
// stored tax-inclusive total over the bare amount when one is tracked.
func TotalExpenses(expenses []domain.Expense, f *PeriodFilter) decimal.Decimal {
	total := decimal.Zero
	for _, e := range FilterByPeriod(expenses, f) {
		total = total.Add(e.GrossTotal())
	}
	return total
}

// TotalDeductible sums deductible amounts for the period. Stored
// deductible figures take precedence over recomputation.
func TotalDeductible(expenses []domain.Expense, f *PeriodFilter) decimal.Decimal {
	total := decimal.Zero
	for _, e := range FilterByPeriod(expenses, f) {
		total = total.Add(e.Deductible())
	}
	return total
}

// MileageTotals sums all logged distance versus business distance for the
// period.
func MileageTotals(logs []domain.MileageLog, f *PeriodFilter) MileageSummary {
	var s MileageSummary
	s.TotalKm = decimal.Zero
	s.BusinessKm = decimal.Zero
	for _, l := range FilterByPeriod(logs, f) {
		s.TotalKm = s.TotalKm.Add(l.DistanceKm)
		if l.IsBusiness {
			s.BusinessKm = s.BusinessKm.Add(l.DistanceKm)
		}
	}
	return s
}

// ITCEligibleTax sums the GST/HST paid on expenses flagged eligible for an
// input tax credit.
func ITCEligibleTax(expenses []domain.Expense, f *PeriodFilter) decimal.Decimal {
	total := decimal.Zero
	for _, e := range FilterByPeriod(expenses, f) {
		if e.ITCEligible {
			total = total.Add(e.TaxAmount)
		}
	}
	return total
}

// CategoryTotals groups expenses by category code and sums total and
// deductible amounts per group, sorted descending by deductible amount.
// Ties break on category code so the ordering is deterministic.
func CategoryTotals(expenses []domain.Expense, f *PeriodFilter) []CategorySummary {
	byCategory := make(map[domain.Category]*CategorySummary)
	for _, e := range FilterByPeriod(expenses, f) {
		row, ok := byCategory[e.Category]
		if !ok {
			row = &CategorySummary{
				Category:   e.Category,
				Label:      e.Category.Label(),
				Total:      decimal.Zero,
				Deductible: decimal.Zero,
			}
			byCategory[e.Category] = row
		}
		row.Total = row.Total.Add(e.GrossTotal())
		row.Deductible = row.Deductible.Add(e.Deductible())
		row.Count++
	}

	out := make([]CategorySummary, 0, len(byCategory))
	for _, row := range byCategory {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Deductible.Equal(out[j].Deductible) {
			return out[i].Deductible.GreaterThan(out[j].Deductible)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Totals computes the composite period summary.
func Totals(expenses []domain.Expense, income []domain.IncomeEntry, logs []domain.MileageLog, f *PeriodFilter) SummaryTotals {
	totalIncome := TotalIncome(income, f)
	totalDeductible := TotalDeductible(expenses, f)
	return SummaryTotals{
		TotalIncome:     totalIncome,
		TotalExpenses:   TotalExpenses(expenses, f),
		TotalDeductible: totalDeductible,
		NetIncome:       totalIncome.Sub(totalDeductible),
		Mileage:         MileageTotals(logs, f),
		ITCEligibleTax:  ITCEligibleTax(expenses, f),
	}
}
