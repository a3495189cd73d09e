package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gigtax/t2125-calculator/internal/calculation"
	"github.com/gigtax/t2125-calculator/internal/domain"
)

func main() {
	// First-year class 10.1 vehicle with the half-year rule.
	vehicle := domain.Asset{
		Name:          "2022 Corolla",
		CCAClass:      "10.1",
		CostBeforeTax: decimal.NewFromInt(34000),
		OpeningUCC:    decimal.NewFromInt(34000),
		Rate:          decimal.NewFromFloat(0.30),
		HalfYearRule:  true,
	}
	res, err := calculation.ComputeAssetCCA(vehicle)
	if err != nil {
		panic(err)
	}
	fmt.Println("First-year class 10.1 (half-year rule):")
	fmt.Printf("  base:       %s\n", res.Base.StringFixed(2))
	fmt.Printf("  deduction:  %s\n", res.Deduction.StringFixed(2))
	fmt.Printf("  closingUCC: %s\n", res.ClosingUCC.StringFixed(2))

	// Second-year continuation: full rate on the carried-forward UCC.
	vehicle.OpeningUCC = res.ClosingUCC
	vehicle.HalfYearRule = false
	res2, err := calculation.ComputeAssetCCA(vehicle)
	if err != nil {
		panic(err)
	}
	fmt.Println("Second-year continuation:")
	fmt.Printf("  base:       %s\n", res2.Base.StringFixed(2))
	fmt.Printf("  deduction:  %s\n", res2.Deduction.StringFixed(2))
	fmt.Printf("  closingUCC: %s\n", res2.ClosingUCC.StringFixed(2))

	// Pool total across a mixed fleet.
	fleet := []domain.Asset{
		vehicle,
		{Name: "e-bike", CCAClass: "54", CostBeforeTax: decimal.NewFromInt(4000), OpeningUCC: decimal.NewFromInt(4000), HalfYearRule: true},
	}
	fmt.Printf("Fleet CCA total: %s\n", calculation.TotalCCADeduction(fleet).StringFixed(2))
}
