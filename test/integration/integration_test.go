package integration

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigtax/t2125-calculator/internal/calculation"
	"github.com/gigtax/t2125-calculator/internal/config"
	"github.com/gigtax/t2125-calculator/internal/output"
)

func TestLedgerToReportEndToEnd(t *testing.T) {
	parser := config.NewInputParser()
	ledger, err := parser.LoadFromFile("../testdata/example_ledger.yaml")
	require.NoError(t, err)
	require.NotNil(t, ledger)
	require.NotNil(t, ledger.Profile)
	require.Len(t, ledger.Expenses, 4)
	require.Len(t, ledger.Income, 1)

	mapper := calculation.NewMapper().WithHomeOfficePercent(ledger.Estimator.HomeOfficePercent)
	report := mapper.GenerateT2125Data(ledger.Profile, ledger.Expenses, ledger.Income, ledger.Mileage, ledger.Assets, ledger.MileageSettings, nil)

	// Identification flows straight from the profile.
	assert.Equal(t, "Sam Driver", report.Identification.YourName)
	assert.Equal(t, "2025-01-01", report.Identification.FiscalPeriodFrom)

	// Part 3: tax-inclusive gross backs out GST, tips land on 8230.
	assert.Equal(t, "1130.00", report.Part3.Line3A.StringFixed(2))
	assert.Equal(t, "130.00", report.Part3.Line3B.StringFixed(2))
	assert.Equal(t, "1000.00", report.Part3.Line3C.StringFixed(2))
	assert.Equal(t, "100.00", report.Part3.Line8230.StringFixed(2))
	assert.Equal(t, "1100.00", report.Part3.Line8299.StringFixed(2))

	// Chart A: odometer anchors give 1000 total km against 800 business km.
	assert.Equal(t, "1000.0", report.ChartA.TotalKm.StringFixed(1))
	assert.Equal(t, "800.0", report.ChartA.BusinessKm.StringFixed(1))
	assert.Equal(t, "80.00", report.ChartA.BusinessUsePercent.StringFixed(2))
	assert.Equal(t, "100.00", report.ChartA.TotalVehicle.StringFixed(2))
	assert.Equal(t, "80.00", report.ChartA.BusinessPortion.StringFixed(2))

	// Part 4: meals halved, phone at 50% business use, vehicle prorated.
	assert.Equal(t, "25.00", report.Part4.Line8523.StringFixed(2))
	assert.Equal(t, "40.00", report.Part4.Line9220.StringFixed(2))
	assert.Equal(t, "80.00", report.Part4.Line9281.StringFixed(2))
	assert.Equal(t, "145.00", report.Part4.Line9368.StringFixed(2))

	// Part 5: home office scaled to 10% of the pool, off the Part 4 total.
	assert.Equal(t, "955.00", report.Part5.Line9369.StringFixed(2))
	assert.Equal(t, "20.00", report.Part5.Line9945.StringFixed(2))
	assert.Equal(t, "935.00", report.Part5.Line9946.StringFixed(2))

	assert.Empty(t, report.Warnings)
	assert.Len(t, report.ExpenseDetails, 4)
}

func TestReportFormatsEndToEnd(t *testing.T) {
	parser := config.NewInputParser()
	ledger, err := parser.LoadFromFile("../testdata/example_ledger.yaml")
	require.NoError(t, err)

	mapper := calculation.NewMapper().WithHomeOfficePercent(ledger.Estimator.HomeOfficePercent)
	report := mapper.GenerateT2125Data(ledger.Profile, ledger.Expenses, ledger.Income, ledger.Mileage, ledger.Assets, ledger.MileageSettings, nil)

	for _, name := range output.AvailableFormatterNames() {
		f := output.GetFormatterByName(name)
		require.NotNil(t, f, "formatter %s", name)
		data, err := f.Format(report)
		require.NoError(t, err, "formatter %s", name)
		assert.NotEmpty(t, data, "formatter %s", name)
	}

	jsonOut, err := output.JSONFormatter{}.Format(report)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(jsonOut, &decoded))
	assert.Contains(t, decoded, "part4_expenses")

	csvOut, err := output.CSVFormatter{}.Format(report)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(csvOut), "line9368_totalExpenses"))
}

func TestReportReproducible(t *testing.T) {
	parser := config.NewInputParser()
	ledger, err := parser.LoadFromFile("../testdata/example_ledger.yaml")
	require.NoError(t, err)

	mapper := calculation.NewMapper().WithHomeOfficePercent(ledger.Estimator.HomeOfficePercent)
	a := mapper.GenerateT2125Data(ledger.Profile, ledger.Expenses, ledger.Income, ledger.Mileage, ledger.Assets, ledger.MileageSettings, nil)
	b := mapper.GenerateT2125Data(ledger.Profile, ledger.Expenses, ledger.Income, ledger.Mileage, ledger.Assets, ledger.MileageSettings, nil)

	aj, err := json.Marshal(a)
	require.NoError(t, err)
	bj, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(aj), string(bj))
}
