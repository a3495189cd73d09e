package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/gigtax/t2125-calculator/internal/domain"
	money "github.com/gigtax/t2125-calculator/pkg/decimal"
)

// Part 3 of the T2125 works on pre-aggregated integer cents, not raw
// records, so that no floating-point error accumulates across thousands
// of small payouts.

// Warning strings surfaced by the Part 3 calculator. These literals are an
// external contract checked by automated tests; do not reword them.
const (
	WarnGSTExceedsGross     = "GST/HST exceeds gross sales—check entries."
	WarnNegativeOtherIncome = "Other income is negative—verify adjustments are intentional."
	WarnNegativeGrossIncome = "Gross business income is negative—review income entries."
)

// Part3Input is the pre-aggregated cent totals feeding the Part 3C formula.
type Part3Input struct {
	Sum3A   int64 // gross sales including GST/HST collected, cents
	Sum3B   int64 // GST/HST collected, cents
	Sum8230 int64 // other income: tips, bonuses, referrals, cents
}

// Part3Result holds the computed Part 3 lines in cents, plus data-quality
// warnings. Warnings never abort the computation.
type Part3Result struct {
	Line3A   int64
	Line3B   int64
	Line3C   int64 // net sales: 3A - 3B
	Line8230 int64
	Line8299 int64 // gross business income: 3C + 8230

	HasWarning     bool
	WarningMessage string
	Warnings       []string
}

// ComputePart3 applies the GST/HST-aware gross-to-net income formula.
func ComputePart3(in Part3Input) Part3Result {
	r := Part3Result{
		Line3A:   in.Sum3A,
		Line3B:   in.Sum3B,
		Line3C:   in.Sum3A - in.Sum3B,
		Line8230: in.Sum8230,
	}
	r.Line8299 = r.Line3C + r.Line8230

	if in.Sum3B > in.Sum3A {
		r.Warnings = append(r.Warnings, WarnGSTExceedsGross)
	}
	if in.Sum8230 < 0 {
		r.Warnings = append(r.Warnings, WarnNegativeOtherIncome)
	}
	if r.Line8299 < 0 {
		r.Warnings = append(r.Warnings, WarnNegativeGrossIncome)
	}
	if len(r.Warnings) > 0 {
		r.HasWarning = true
		r.WarningMessage = r.Warnings[0]
	}
	return r
}

// Display converts the result to exact two-decimal dollar values for
// on-screen use. No rounding occurs.
func (r Part3Result) Display() domain.Part3Income {
	return domain.Part3Income{
		Line3A:   money.CentsToDisplay(r.Line3A).Decimal,
		Line3B:   money.CentsToDisplay(r.Line3B).Decimal,
		Line3C:   money.CentsToDisplay(r.Line3C).Decimal,
		Line8230: money.CentsToDisplay(r.Line8230).Decimal,
		Line8299: money.CentsToDisplay(r.Line8299).Decimal,
	}
}

// Export converts the result to the whole-dollar figures the official CRA
// export takes, rounding half-up per line. This is deliberately a
// different conversion from Display.
func (r Part3Result) Export() domain.Part3Income {
	whole := func(cents int64) decimal.Decimal {
		return decimal.NewFromInt(money.CentsToDollars(cents))
	}
	return domain.Part3Income{
		Line3A:   whole(r.Line3A),
		Line3B:   whole(r.Line3B),
		Line3C:   whole(r.Line3C),
		Line8230: whole(r.Line8230),
		Line8299: whole(r.Line8299),
	}
}

// SumIncomeCents aggregates raw income records into the cent totals the
// Part 3 calculator consumes. GST/HST counts toward 3B only on entries
// flagged tax-inclusive.
func SumIncomeCents(income []domain.IncomeEntry, f *PeriodFilter) Part3Input {
	var in Part3Input
	for _, entry := range FilterByPeriod(income, f) {
		in.Sum3A += money.NewMoneyFromDecimal(entry.GrossAmount).Cents()
		if entry.IncludesTax {
			in.Sum3B += money.NewMoneyFromDecimal(entry.GSTCollected).Cents()
		}
		in.Sum8230 += money.NewMoneyFromDecimal(entry.OtherTotal()).Cents()
	}
	return in
}
