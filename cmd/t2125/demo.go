package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gigtax/t2125-calculator/internal/domain"
	"github.com/gigtax/t2125-calculator/internal/storage"
)

var demoYear int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed the database with a realistic demo ledger",
	Long: `Demo seeds one year of plausible rideshare records under the
--user identifier: weekly platform payouts, fuel and maintenance
expenses, meals, phone costs, a mileage log with odometer anchors and a
class 10.1 vehicle. Useful for trying the generate and estimate
commands without entering data.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVarP(&demoYear, "year", "y", 2025, "tax year to seed")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := storage.NewStore(flagDB, log)
	if err != nil {
		return fmt.Errorf("open ledger database: %w", err)
	}
	defer store.Close()

	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	date := func(month, day int) string { return fmt.Sprintf("%04d-%02d-%02d", demoYear, month, day) }

	profile := domain.Profile{
		Name:             "Sam Driver",
		BusinessName:     "Sam's Deliveries",
		City:             "Toronto",
		Province:         "ON",
		IndustryCode:     "485310",
		FiscalYearStart:  date(1, 1),
		FiscalYearEnd:    date(12, 31),
		AccountingMethod: "cash",
		GSTRegistered:    true,
		GSTNumber:        "123456789RT0001",
	}
	if err := store.UpsertProfile(ctx, flagUser, profile); err != nil {
		return err
	}

	jan1 := d("41200")
	current := d("74200")
	settings := domain.MileageSettings{
		UserID:          flagUser,
		Year:            demoYear,
		Jan1Odometer:    &jan1,
		CurrentOdometer: &current,
	}
	if err := store.UpsertMileageSettings(ctx, settings); err != nil {
		return err
	}

	income := []domain.IncomeEntry{
		{Date: date(1, 15), Platform: "Uber", GrossAmount: d("2373.00"), GSTCollected: d("273.00"), IncludesTax: true, Tips: d("182.40"), TripCount: 96},
		{Date: date(3, 15), Platform: "Uber", GrossAmount: d("2938.00"), GSTCollected: d("338.00"), IncludesTax: true, Tips: d("240.10"), TripCount: 118},
		{Date: date(5, 15), Platform: "DoorDash", GrossAmount: d("1640.00"), Tips: d("310.75"), TripCount: 84},
		{Date: date(7, 15), Platform: "Uber", GrossAmount: d("3164.00"), GSTCollected: d("364.00"), IncludesTax: true, Tips: d("265.00"), Bonuses: d("150.00"), TripCount: 131},
		{Date: date(9, 15), Platform: "DoorDash", GrossAmount: d("1825.00"), Tips: d("342.20"), TripCount: 92},
		{Date: date(11, 15), Platform: "Uber", GrossAmount: d("2712.00"), GSTCollected: d("312.00"), IncludesTax: true, Tips: d("201.90"), TripCount: 107},
	}
	for i := range income {
		income[i].UserID = flagUser
		if err := store.SaveIncome(ctx, &income[i]); err != nil {
			return err
		}
	}

	expenses := []domain.Expense{
		{Date: date(1, 8), Merchant: "Petro-Canada", Amount: d("78.40"), TaxAmount: d("10.19"), Category: domain.CategoryFuel, BusinessPercent: d("85"), ITCEligible: true},
		{Date: date(2, 3), Merchant: "Canadian Tire", Amount: d("312.50"), TaxAmount: d("40.63"), Category: domain.CategoryVehicleMaint, BusinessPercent: d("85"), ITCEligible: true},
		{Date: date(2, 20), Merchant: "Rogers", Amount: d("95.00"), TaxAmount: d("12.35"), Category: domain.CategoryPhone, BusinessPercent: d("70")},
		{Date: date(3, 12), Merchant: "Tim Hortons", Amount: d("18.75"), Category: domain.CategoryMeals, BusinessPercent: d("100")},
		{Date: date(4, 1), Merchant: "Intact Insurance", Amount: d("186.00"), Category: domain.CategoryVehicleInsurance, BusinessPercent: d("85")},
		{Date: date(5, 9), Merchant: "Shell", Amount: d("82.10"), TaxAmount: d("10.67"), Category: domain.CategoryFuel, BusinessPercent: d("85"), ITCEligible: true},
		{Date: date(6, 17), Merchant: "Green P Parking", Amount: d("14.00"), Category: domain.CategoryParking, BusinessPercent: d("100")},
		{Date: date(7, 22), Merchant: "ServiceOntario", Amount: d("120.00"), Category: domain.CategoryVehicleLicence, BusinessPercent: d("85")},
		{Date: date(8, 30), Merchant: "Esso", Amount: d("75.60"), TaxAmount: d("9.83"), Category: domain.CategoryFuel, BusinessPercent: d("85"), ITCEligible: true},
		{Date: date(10, 5), Merchant: "Staples", Amount: d("64.20"), TaxAmount: d("8.35"), Category: domain.CategorySupplies, BusinessPercent: d("100"), ITCEligible: true},
		{Date: date(12, 2), Merchant: "Sparkle Car Wash", Amount: d("22.00"), Category: domain.CategoryCarWash, BusinessPercent: d("85")},
	}
	for i := range expenses {
		expenses[i].UserID = flagUser
		if err := store.SaveExpense(ctx, &expenses[i]); err != nil {
			return err
		}
	}

	mileage := []domain.MileageLog{
		{Date: date(1, 8), DistanceKm: d("142.5"), IsBusiness: true, Purpose: "rideshare shift"},
		{Date: date(3, 14), DistanceKm: d("188.0"), IsBusiness: true, Purpose: "rideshare shift"},
		{Date: date(5, 21), DistanceKm: d("94.3"), IsBusiness: true, Purpose: "delivery shift"},
		{Date: date(6, 11), DistanceKm: d("60.0"), IsBusiness: false, Purpose: "personal"},
		{Date: date(8, 2), DistanceKm: d("201.7"), IsBusiness: true, Purpose: "rideshare shift"},
		{Date: date(10, 19), DistanceKm: d("156.2"), IsBusiness: true, Purpose: "rideshare shift"},
	}
	for i := range mileage {
		mileage[i].UserID = flagUser
		if err := store.SaveMileage(ctx, &mileage[i]); err != nil {
			return err
		}
	}

	vehicle := domain.Asset{
		UserID:          flagUser,
		Name:            "2022 Toyota Corolla",
		CCAClass:        "10.1",
		CostBeforeTax:   d("34000"),
		PurchaseDate:    date(1, 20),
		BusinessPercent: d("85"),
		OpeningUCC:      d("34000"),
		Rate:            d("0.30"),
		HalfYearRule:    true,
	}
	if err := store.SaveAsset(ctx, &vehicle); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"user": flagUser,
		"year": demoYear,
		"db":   flagDB,
	}).Info("demo ledger seeded")
	fmt.Printf("Seeded demo ledger for %d. Try:\n\n  t2125 generate --year %d\n  t2125 estimate --year %d\n", demoYear, demoYear, demoYear)
	return nil
}
