package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

// RateBracket maps an income threshold to a coarse marginal rate. The
// first bracket whose threshold the income exceeds wins.
type RateBracket struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// EstimatorConfig carries the tunable pieces of the estimator: the
// home-office-use percentage (0-100) and the marginal-rate brackets.
type EstimatorConfig struct {
	HomeOfficePercent decimal.Decimal
	Brackets          []RateBracket
}

// DefaultEstimatorConfig returns the stock configuration: no home-office
// claim and the simplified 30/25/20 rate ladder. These brackets are a
// deliberately coarse simplification, not real Canadian marginal rates.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		HomeOfficePercent: decimal.Zero,
		Brackets: []RateBracket{
			{Threshold: decimal.NewFromInt(50000), Rate: decimal.NewFromFloat(0.30)},
			{Threshold: decimal.NewFromInt(25000), Rate: decimal.NewFromFloat(0.25)},
			{Threshold: decimal.Zero, Rate: decimal.NewFromFloat(0.20)},
		},
	}
}

// TaxEstimate is the CRA-flavored deduction breakdown layered on top of
// the aggregator. Meals50Percent, MotorVehicle, HomeOffice, CCA and
// OtherDeductions sum exactly to TotalDeductions by construction.
type TaxEstimate struct {
	Meals50Percent      decimal.Decimal `json:"meals50Percent"`
	MotorVehicle        decimal.Decimal `json:"motorVehicleExpenses"`
	HomeOffice          decimal.Decimal `json:"homeOfficeDeduction"`
	CCA                 decimal.Decimal `json:"ccaDeduction"`
	OtherDeductions     decimal.Decimal `json:"otherDeductions"`
	TotalDeductions     decimal.Decimal `json:"totalDeductions"`
	BusinessUsePercent  decimal.Decimal `json:"businessUsePercent"`
	MarginalRate        decimal.Decimal `json:"marginalRate"`
	EstimatedTaxSavings decimal.Decimal `json:"estimatedTaxSavings"`
}

// Estimator derives the deduction breakdown and a rough savings figure.
// EstimatedTaxSavings is an order-of-magnitude estimate for motivation in
// the UI, not a tax calculation; callers must present it as such.
type Estimator struct {
	cfg EstimatorConfig
}

// NewEstimator creates an estimator with the given configuration.
func NewEstimator(cfg EstimatorConfig) *Estimator {
	if len(cfg.Brackets) == 0 {
		cfg.Brackets = DefaultEstimatorConfig().Brackets
	}
	return &Estimator{cfg: cfg}
}

// Estimate computes the deduction components for the period.
//
// The residual OtherDeductions is derived by subtraction from the
// aggregate deductible total, never by re-summing categories, so the five
// components always reconcile exactly with TotalDeductions.
func (e *Estimator) Estimate(expenses []domain.Expense, income []domain.IncomeEntry, logs []domain.MileageLog, assets []domain.Asset, f *PeriodFilter) TaxEstimate {
	totalDeductible := TotalDeductible(expenses, f)

	mealsFull := decimal.Zero
	motorVehicle := decimal.Zero
	homeOfficeFull := decimal.Zero
	for _, exp := range FilterByPeriod(expenses, f) {
		switch {
		case exp.Category.IsMeal():
			mealsFull = mealsFull.Add(exp.Deductible())
		case exp.Category.IsMotorVehicle():
			motorVehicle = motorVehicle.Add(exp.Deductible())
		case exp.Category.IsHomeOffice():
			homeOfficeFull = homeOfficeFull.Add(exp.Deductible())
		}
	}

	// The 50% limit composes with each expense's own business-use
	// percentage: Deductible() already applied the latter.
	meals50 := mealsFull.Div(decimal.NewFromInt(2))
	homeOffice := homeOfficeFull.Mul(e.cfg.HomeOfficePercent).Div(decimal.NewFromInt(100))

	// Meals enter the total through the halved component and home-office
	// through the scaled one, so the residual removes the full class sums.
	other := totalDeductible.Sub(mealsFull).Sub(motorVehicle).Sub(homeOfficeFull)

	cca := TotalCCADeduction(assets)
	totalDeductions := meals50.Add(motorVehicle).Add(homeOffice).Add(cca).Add(other)

	mileage := MileageTotals(logs, f)
	rate := e.marginalRate(TotalIncome(income, f))

	return TaxEstimate{
		Meals50Percent:      meals50,
		MotorVehicle:        motorVehicle,
		HomeOffice:          homeOffice,
		CCA:                 cca,
		OtherDeductions:     other,
		TotalDeductions:     totalDeductions,
		BusinessUsePercent:  BusinessUsePercent(mileage.BusinessKm, mileage.TotalKm),
		MarginalRate:        rate,
		EstimatedTaxSavings: totalDeductions.Mul(rate),
	}
}

// marginalRate picks the bracket rate for an income level.
func (e *Estimator) marginalRate(income decimal.Decimal) decimal.Decimal {
	for _, b := range e.cfg.Brackets {
		if income.GreaterThan(b.Threshold) {
			return b.Rate
		}
	}
	// Income at or below every threshold lands in the last bracket.
	return e.cfg.Brackets[len(e.cfg.Brackets)-1].Rate
}

// BusinessUsePercent derives business km over total km as a percentage
// clamped to [0, 100]. Logged business kilometres can exceed the implied
// annual total when odometer anchors and trip logs disagree, so the clamp
// is a data-quality guard, not dead code. Zero total km yields zero.
func BusinessUsePercent(businessKm, totalKm decimal.Decimal) decimal.Decimal {
	if totalKm.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pct := businessKm.Div(totalKm).Mul(decimal.NewFromInt(100))
	if pct.IsNegative() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
