package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gigtax/t2125-calculator/internal/config"
	"github.com/gigtax/t2125-calculator/internal/domain"
	"github.com/gigtax/t2125-calculator/internal/storage"
)

// ledgerData is the assembled input bundle handed to the calculation
// engine, regardless of whether it came from a YAML file or the database.
type ledgerData struct {
	Profile           *domain.Profile
	Settings          *domain.MileageSettings
	Expenses          []domain.Expense
	Income            []domain.IncomeEntry
	Mileage           []domain.MileageLog
	Assets            []domain.Asset
	HomeOfficePercent decimal.Decimal
}

// loadLedger reads the ledger from the YAML file when inputPath is set,
// otherwise from the SQLite database. year selects which year's odometer
// settings to fetch from the database; zero skips them.
func loadLedger(ctx context.Context, inputPath string, year int) (*ledgerData, error) {
	if inputPath != "" {
		parsed, err := config.NewInputParser().LoadFromFile(inputPath)
		if err != nil {
			return nil, err
		}
		return &ledgerData{
			Profile:           parsed.Profile,
			Settings:          parsed.MileageSettings,
			Expenses:          parsed.Expenses,
			Income:            parsed.Income,
			Mileage:           parsed.Mileage,
			Assets:            parsed.Assets,
			HomeOfficePercent: parsed.Estimator.HomeOfficePercent,
		}, nil
	}

	store, err := storage.NewStore(flagDB, log)
	if err != nil {
		return nil, fmt.Errorf("open ledger database: %w", err)
	}
	defer store.Close()

	data := &ledgerData{}
	if data.Profile, err = store.GetProfile(ctx, flagUser); err != nil {
		return nil, err
	}
	if data.Expenses, err = store.ListExpenses(ctx, flagUser); err != nil {
		return nil, err
	}
	if data.Income, err = store.ListIncome(ctx, flagUser); err != nil {
		return nil, err
	}
	if data.Mileage, err = store.ListMileage(ctx, flagUser); err != nil {
		return nil, err
	}
	if data.Assets, err = store.ListAssets(ctx, flagUser); err != nil {
		return nil, err
	}
	if year != 0 {
		if data.Settings, err = store.GetMileageSettings(ctx, flagUser, year); err != nil {
			return nil, err
		}
	}
	return data, nil
}
