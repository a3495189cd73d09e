package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gigtax/t2125-calculator/internal/config"
	"github.com/gigtax/t2125-calculator/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <ledger.yaml>",
	Short: "Import a YAML ledger file into the database",
	Long: `Import validates the YAML ledger and appends its records to the
SQLite database under the --user identifier. The profile and odometer
settings replace any stored version; expenses, income, mileage and
assets are appended.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ledger, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}

	store, err := storage.NewStore(flagDB, log)
	if err != nil {
		return fmt.Errorf("open ledger database: %w", err)
	}
	defer store.Close()

	if ledger.Profile != nil {
		if err := store.UpsertProfile(ctx, flagUser, *ledger.Profile); err != nil {
			return err
		}
	}
	if ledger.MileageSettings != nil {
		set := *ledger.MileageSettings
		set.UserID = flagUser
		if err := store.UpsertMileageSettings(ctx, set); err != nil {
			return err
		}
	}
	for i := range ledger.Expenses {
		ledger.Expenses[i].UserID = flagUser
		if err := store.SaveExpense(ctx, &ledger.Expenses[i]); err != nil {
			return err
		}
	}
	for i := range ledger.Income {
		ledger.Income[i].UserID = flagUser
		if err := store.SaveIncome(ctx, &ledger.Income[i]); err != nil {
			return err
		}
	}
	for i := range ledger.Mileage {
		ledger.Mileage[i].UserID = flagUser
		if err := store.SaveMileage(ctx, &ledger.Mileage[i]); err != nil {
			return err
		}
	}
	for i := range ledger.Assets {
		ledger.Assets[i].UserID = flagUser
		if err := store.SaveAsset(ctx, &ledger.Assets[i]); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"expenses": len(ledger.Expenses),
		"income":   len(ledger.Income),
		"mileage":  len(ledger.Mileage),
		"assets":   len(ledger.Assets),
		"user":     flagUser,
	}).Info("ledger imported")
	return nil
}
