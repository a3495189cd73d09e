package calculation

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

// ErrInvalidCCACost is returned when an asset's cost is zero or negative.
// A non-positive cost is a data-entry mistake and must be rejected rather
// than silently zeroed.
var ErrInvalidCCACost = errors.New("cca: cost before tax must be positive")

// ccaClassRates holds the prescribed rate per CCA class. Classes 10, 10.1
// and 54 all carry 30% for the vehicles this domain deals with.
var ccaClassRates = map[string]decimal.Decimal{
	"10":   decimal.NewFromFloat(0.30),
	"10.1": decimal.NewFromFloat(0.30),
	"54":   decimal.NewFromFloat(0.30),
}

// RateForClass returns the prescribed rate for a CCA class, or zero for an
// unknown class.
func RateForClass(class string) decimal.Decimal {
	if r, ok := ccaClassRates[class]; ok {
		return r
	}
	return decimal.Zero
}

// CCAInput is one year's depreciation inputs for a single asset.
type CCAInput struct {
	CostBeforeTax decimal.Decimal
	OpeningUCC    decimal.Decimal
	Rate          decimal.Decimal // fraction, e.g. 0.30
	HalfYearRule  bool
}

// CCAResult is the computed depreciation schedule entry. Deduction and
// closing UCC are never negative.
type CCAResult struct {
	Base       decimal.Decimal
	Deduction  decimal.Decimal
	ClosingUCC decimal.Decimal
}

// ComputeCCA computes one year's capital cost allowance. The half-year
// rule halves the deduction base; it applies only to year one and must be
// elected explicitly by the caller, never inferred from dates. This is a
// pure recompute-on-demand function: when any input changes the caller
// simply invokes it again.
func ComputeCCA(in CCAInput) (CCAResult, error) {
	if in.CostBeforeTax.LessThanOrEqual(decimal.Zero) {
		return CCAResult{}, ErrInvalidCCACost
	}

	base := in.CostBeforeTax
	if in.HalfYearRule {
		base = base.Div(decimal.NewFromInt(2))
	}
	deduction := base.Mul(in.Rate)
	closing := in.OpeningUCC.Sub(deduction)
	if closing.IsNegative() {
		closing = decimal.Zero
	}
	return CCAResult{Base: base, Deduction: deduction, ClosingUCC: closing}, nil
}

// ComputeAssetCCA computes the current-year deduction for a ledger asset,
// resolving the rate from the CCA class when the asset carries none.
func ComputeAssetCCA(a domain.Asset) (CCAResult, error) {
	rate := a.Rate
	if rate.IsZero() {
		rate = RateForClass(a.CCAClass)
	}
	return ComputeCCA(CCAInput{
		CostBeforeTax: a.CostBeforeTax,
		OpeningUCC:    a.OpeningUCC,
		Rate:          rate,
		HalfYearRule:  a.HalfYearRule,
	})
}

// TotalCCADeduction sums the recomputed current-year deduction across all
// assets. Assets that fail validation contribute zero; the mapper must
// stay resilient to partially-filled ledgers.
func TotalCCADeduction(assets []domain.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		res, err := ComputeAssetCCA(a)
		if err != nil {
			continue
		}
		total = total.Add(res.Deduction)
	}
	return total
}
