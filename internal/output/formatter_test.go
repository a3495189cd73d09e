package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

func buildTestReport() *domain.T2125Data {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return &domain.T2125Data{
		Identification: domain.Identification{
			YourName:         "Sam Driver",
			BusinessName:     "Sam's Deliveries",
			IndustryCode:     "492110",
			FiscalPeriodFrom: "2025-01-01",
			FiscalPeriodTo:   "2025-12-31",
		},
		Part3: domain.Part3Income{
			Line3A:   d("11300.00"),
			Line3B:   d("1300.00"),
			Line3C:   d("10000.00"),
			Line8230: d("500.00"),
			Line8299: d("10500.00"),
		},
		Part4: domain.Part4Expenses{
			Line8523: d("125.00"),
			Line9281: d("2400.00"),
			Line9368: d("2525.00"),
		},
		ChartA: domain.ChartAMotor{
			TotalKm:            d("20000"),
			BusinessKm:         d("16000"),
			BusinessUsePercent: d("80"),
			Fuel:               d("3000.00"),
			TotalVehicle:       d("3000.00"),
			BusinessPortion:    d("2400.00"),
		},
		Part5: domain.Part5NetIncome{
			Line9369: d("7975.00"),
			Line9945: d("300.00"),
			Line9946: d("7675.00"),
		},
		ExpenseDetails: []domain.ExpenseDetail{
			{Date: "2025-02-14", Merchant: "Petro", Category: domain.CategoryFuel, CategoryLabel: "Fuel and oil", LineNumber: "9281", Amount: d("80.00"), DeductibleAmount: d("64.00")},
			{Date: "2025-03-02", Merchant: "Diner", Category: domain.CategoryMeals, CategoryLabel: "Meals and entertainment", LineNumber: "8523", Amount: d("50.00"), DeductibleAmount: d("25.00")},
		},
		Warnings: []string{"GST/HST exceeds gross sales—check entries."},
	}
}

func TestConsoleFormatterContent(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"Sam Driver",
		"8299 Gross business income",
		"$10500.00",
		"Total expenses (9368)",
		"$2525.00",
		"9946 Your net income",
		"! GST/HST exceeds gross sales—check entries.",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("console output missing %q, got:\n%s", want, content)
		}
	}
}

func TestConsoleFormatterSkipsZeroLines(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "Advertising") {
		t.Fatalf("zero-amount line should be omitted from console output")
	}
}

func TestCSVFormatterRowOrder(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	// header + 5 income rows + 20 expense lines + total + 3 closing rows
	if len(lines) != 30 {
		t.Fatalf("expected 30 CSV rows, got %d", len(lines))
	}
	if lines[0] != "Section,Line,Description,Amount" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Part 3,line3A_grossSales,") {
		t.Fatalf("expected line 3A first, got: %s", lines[1])
	}
	if !strings.Contains(lines[26], "line9368_totalExpenses") {
		t.Fatalf("expected 9368 total after expense lines, got: %s", lines[26])
	}
}

func TestCSVDetailedFormatterIncludesAllDetails(t *testing.T) {
	out, err := CSVDetailedFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 detail rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "Petro") || !strings.Contains(lines[2], "Diner") {
		t.Fatalf("detail rows out of order: %v", lines[1:])
	}
}

func TestJSONFormatterLineKeysAndNumbers(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"identification", "part3_income", "part4_expenses", "chartA_motorVehicle", "part5_netIncome", "expenseDetails"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing top-level key %q", key)
		}
	}
	// currency must export as a bare JSON number, not a quoted string
	if !bytes.Contains(out, []byte(`"line9368_totalExpenses": 2525`)) {
		t.Fatalf("expected unquoted numeric total, got:\n%s", out)
	}
}

func TestJSONFormatterDeterministic(t *testing.T) {
	a, err := JSONFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := JSONFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("JSON output is not deterministic")
	}
}

func TestHTMLFormatterRenders(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Part 3",
		"Chart A",
		"$2400.00",
		"Sam&#39;s Deliveries",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("html output missing %q", want)
		}
	}
}

func TestGetFormatterByName(t *testing.T) {
	cases := map[string]string{
		"console":      "console",
		"text":         "console",
		"CSV":          "csv",
		"summary-csv":  "csv",
		"audit-csv":    "detailed-csv",
		"csv-detailed": "detailed-csv",
		"html-report":  "html",
		"json-pretty":  "json",
		"  JSON  ":     "json",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		if f == nil {
			t.Fatalf("no formatter for %q", in)
		}
		if f.Name() != want {
			t.Fatalf("GetFormatterByName(%q) = %s, want %s", in, f.Name(), want)
		}
	}
	if GetFormatterByName("yaml") != nil {
		t.Fatalf("expected nil for unknown format")
	}
}

func TestAvailableFormatterNamesSorted(t *testing.T) {
	names := AvailableFormatterNames()
	if len(names) != 5 {
		t.Fatalf("expected 5 formatters, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
