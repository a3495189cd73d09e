package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

func TestComputePart3NetSales(t *testing.T) {
	// $1,000.00 gross with $130.00 GST/HST collected.
	r := ComputePart3(Part3Input{Sum3A: 100000, Sum3B: 13000})
	assert.Equal(t, int64(87000), r.Line3C)
	assert.Equal(t, "870.00", r.Display().Line3C.StringFixed(2))
	assert.False(t, r.HasWarning)
}

func TestComputePart3WithOtherIncome(t *testing.T) {
	r := ComputePart3(Part3Input{Sum3A: 100000, Sum3B: 13000, Sum8230: 15000})
	assert.Equal(t, int64(102000), r.Line8299)
	assert.Equal(t, "1020.00", r.Display().Line8299.StringFixed(2))
	assert.Equal(t, r.Line3C+r.Line8230, r.Line8299)
}

func TestComputePart3FullExample(t *testing.T) {
	r := ComputePart3(Part3Input{Sum3A: 500000, Sum3B: 65000, Sum8230: 50000})
	d := r.Display()
	assert.Equal(t, "5000.00", d.Line3A.StringFixed(2))
	assert.Equal(t, "650.00", d.Line3B.StringFixed(2))
	assert.Equal(t, "4350.00", d.Line3C.StringFixed(2))
	assert.Equal(t, "500.00", d.Line8230.StringFixed(2))
	assert.Equal(t, "4850.00", d.Line8299.StringFixed(2))
	// line8299 == (line3A - line3B) + line8230
	assert.Equal(t, r.Line3A-r.Line3B+r.Line8230, r.Line8299)
	assert.False(t, r.HasWarning)
	assert.Empty(t, r.Warnings)
}

func TestComputePart3GSTExceedsGrossWarning(t *testing.T) {
	r := ComputePart3(Part3Input{Sum3A: 100000, Sum3B: 150000})
	assert.True(t, r.HasWarning)
	assert.Equal(t, "GST/HST exceeds gross sales—check entries.", r.WarningMessage)
}

func TestComputePart3NegativeOtherIncomeWarning(t *testing.T) {
	r := ComputePart3(Part3Input{Sum3A: 100000, Sum3B: 13000, Sum8230: -5000})
	assert.Contains(t, r.Warnings, "Other income is negative—verify adjustments are intentional.")
	// The computation proceeds despite the warning.
	assert.Equal(t, int64(82000), r.Line8299)
}

func TestComputePart3NegativeGrossIncomeWarning(t *testing.T) {
	r := ComputePart3(Part3Input{Sum3A: 10000, Sum3B: 0, Sum8230: -20000})
	assert.True(t, r.HasWarning)
	assert.Contains(t, r.Warnings, WarnNegativeGrossIncome)
	assert.Contains(t, r.Warnings, WarnNegativeOtherIncome)
	// First warning wins the headline slot.
	assert.Equal(t, WarnNegativeOtherIncome, r.WarningMessage)
}

func TestPart3ExportRoundsToWholeDollars(t *testing.T) {
	// 12350 cents rounds half-up to $124; 12349 rounds down to $123.
	r := ComputePart3(Part3Input{Sum3A: 12350, Sum3B: 0, Sum8230: 12349})
	e := r.Export()
	assert.Equal(t, "124", e.Line3A.String())
	assert.Equal(t, "123", e.Line8230.String())

	// Display keeps cent precision on the same result.
	d := r.Display()
	assert.Equal(t, "123.50", d.Line3A.StringFixed(2))
	assert.Equal(t, "123.49", d.Line8230.StringFixed(2))
}

func TestSumIncomeCents(t *testing.T) {
	income := []domain.IncomeEntry{
		{
			Date:         "2024-01-31",
			Platform:     "Uber",
			GrossAmount:  decimal.NewFromFloat(1130.55),
			GSTCollected: decimal.NewFromFloat(130.55),
			IncludesTax:  true,
			Tips:         decimal.NewFromFloat(45.25),
		},
		{
			Date:        "2024-02-15",
			Platform:    "DoorDash",
			GrossAmount: decimal.NewFromFloat(500.00),
			// GST present but not flagged tax-inclusive: excluded from 3B.
			GSTCollected: decimal.NewFromFloat(65.00),
			Bonuses:      decimal.NewFromFloat(20.00),
		},
		{Date: "2025-03-01", Platform: "Uber", GrossAmount: decimal.NewFromFloat(999.99)},
	}

	in := SumIncomeCents(income, YearFilter(2024))
	assert.Equal(t, int64(163055), in.Sum3A)
	assert.Equal(t, int64(13055), in.Sum3B)
	assert.Equal(t, int64(6525), in.Sum8230)
}
