package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

func TestComputeCCAHalfYearRule(t *testing.T) {
	// Year-one vehicle purchase: $30,000 at 30% with the half-year rule.
	res, err := ComputeCCA(CCAInput{
		CostBeforeTax: decimal.NewFromInt(30000),
		OpeningUCC:    decimal.NewFromInt(30000),
		Rate:          decimal.NewFromFloat(0.30),
		HalfYearRule:  true,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15000).Equal(res.Base), "base got %s", res.Base)
	assert.True(t, decimal.NewFromInt(4500).Equal(res.Deduction), "deduction got %s", res.Deduction)
	assert.True(t, decimal.NewFromInt(25500).Equal(res.ClosingUCC), "closing got %s", res.ClosingUCC)
}

func TestComputeCCAFullBase(t *testing.T) {
	res, err := ComputeCCA(CCAInput{
		CostBeforeTax: decimal.NewFromInt(20000),
		OpeningUCC:    decimal.NewFromInt(14000),
		Rate:          decimal.NewFromFloat(0.30),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20000).Equal(res.Base))
	assert.True(t, decimal.NewFromInt(6000).Equal(res.Deduction))
	assert.True(t, decimal.NewFromInt(8000).Equal(res.ClosingUCC))
}

func TestComputeCCAClosingUCCNeverNegative(t *testing.T) {
	res, err := ComputeCCA(CCAInput{
		CostBeforeTax: decimal.NewFromInt(30000),
		OpeningUCC:    decimal.NewFromInt(1000),
		Rate:          decimal.NewFromFloat(0.30),
	})
	require.NoError(t, err)
	assert.True(t, res.ClosingUCC.IsZero(), "closing got %s", res.ClosingUCC)
	assert.False(t, res.Deduction.IsNegative())
}

func TestComputeCCARejectsNonPositiveCost(t *testing.T) {
	for _, cost := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5000)} {
		_, err := ComputeCCA(CCAInput{CostBeforeTax: cost, Rate: decimal.NewFromFloat(0.30)})
		assert.ErrorIs(t, err, ErrInvalidCCACost)
	}
}

func TestRateForClass(t *testing.T) {
	rate := decimal.NewFromFloat(0.30)
	for _, class := range []string{"10", "10.1", "54"} {
		assert.True(t, rate.Equal(RateForClass(class)), "class %s", class)
	}
	assert.True(t, RateForClass("8").IsZero())
}

func TestComputeAssetCCAResolvesClassRate(t *testing.T) {
	res, err := ComputeAssetCCA(domain.Asset{
		Name:          "2022 Corolla",
		CCAClass:      "10.1",
		CostBeforeTax: decimal.NewFromInt(30000),
		OpeningUCC:    decimal.NewFromInt(30000),
		HalfYearRule:  true,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(4500).Equal(res.Deduction))
}

func TestTotalCCADeductionSkipsInvalidAssets(t *testing.T) {
	assets := []domain.Asset{
		{CCAClass: "10", CostBeforeTax: decimal.NewFromInt(30000), OpeningUCC: decimal.NewFromInt(30000), HalfYearRule: true},
		{CCAClass: "10", CostBeforeTax: decimal.Zero}, // data-entry mistake, contributes nothing
	}
	got := TotalCCADeduction(assets)
	assert.True(t, decimal.NewFromInt(4500).Equal(got), "got %s", got)
}

// Recompute-on-demand: the same inputs always give the same schedule, and
// nothing inside the calculator mutates state between calls.
func TestComputeCCAIsPure(t *testing.T) {
	in := CCAInput{
		CostBeforeTax: decimal.NewFromInt(30000),
		OpeningUCC:    decimal.NewFromInt(25500),
		Rate:          decimal.NewFromFloat(0.30),
	}
	first, err := ComputeCCA(in)
	require.NoError(t, err)
	second, err := ComputeCCA(in)
	require.NoError(t, err)
	assert.True(t, first.Deduction.Equal(second.Deduction))
	assert.True(t, first.ClosingUCC.Equal(second.ClosingUCC))
}
