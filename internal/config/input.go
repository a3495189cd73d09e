package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/gigtax/t2125-calculator/internal/domain"
	"github.com/gigtax/t2125-calculator/pkg/dateutil"
)

// Ledger is the file-based input bundle: one taxpayer's profile plus the
// raw record collections the calculation engine consumes.
type Ledger struct {
	Profile         *domain.Profile         `yaml:"profile,omitempty"`
	MileageSettings *domain.MileageSettings `yaml:"mileage_settings,omitempty"`
	Expenses        []domain.Expense        `yaml:"expenses,omitempty"`
	Income          []domain.IncomeEntry    `yaml:"income,omitempty"`
	Mileage         []domain.MileageLog     `yaml:"mileage,omitempty"`
	Assets          []domain.Asset          `yaml:"assets,omitempty"`
	Estimator       EstimatorSettings       `yaml:"estimator,omitempty"`
}

// EstimatorSettings carries the tunable estimator inputs from the file.
type EstimatorSettings struct {
	HomeOfficePercent decimal.Decimal `yaml:"home_office_percent,omitempty"`
}

// InputParser handles parsing of ledger input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a ledger from a YAML file and validates it. Records
// rejected here never reach the calculation engine: validation happens at
// the boundary, once.
func (ip *InputParser) LoadFromFile(filename string) (*Ledger, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var ledger Ledger
	if err := yaml.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateLedger(&ledger); err != nil {
		return nil, fmt.Errorf("ledger validation failed: %w", err)
	}

	return &ledger, nil
}

// ValidateLedger validates every record collection in the ledger.
func (ip *InputParser) ValidateLedger(l *Ledger) error {
	for i, e := range l.Expenses {
		if err := ip.validateExpense(&e); err != nil {
			return fmt.Errorf("expense %d (%s): %w", i, e.Merchant, err)
		}
	}
	for i, entry := range l.Income {
		if err := ip.validateIncome(&entry); err != nil {
			return fmt.Errorf("income %d (%s): %w", i, entry.Platform, err)
		}
	}
	for i, m := range l.Mileage {
		if err := ip.validateMileage(&m); err != nil {
			return fmt.Errorf("mileage %d: %w", i, err)
		}
	}
	for i, a := range l.Assets {
		if err := ip.validateAsset(&a); err != nil {
			return fmt.Errorf("asset %d (%s): %w", i, a.Name, err)
		}
	}
	if s := l.MileageSettings; s != nil {
		if s.Year < 0 {
			return fmt.Errorf("mileage settings: year cannot be negative")
		}
	}
	if l.Estimator.HomeOfficePercent.IsNegative() || l.Estimator.HomeOfficePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("estimator: home office percent must be between 0 and 100")
	}
	return nil
}

// validateExpense checks a single expense record.
func (ip *InputParser) validateExpense(e *domain.Expense) error {
	if !dateutil.IsISO(e.Date) {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", e.Date)
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive")
	}
	if e.BusinessPercent.IsNegative() || e.BusinessPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("business percent must be between 0 and 100")
	}
	if e.DeductibleAmount != nil && e.DeductibleAmount.GreaterThan(e.Amount.Add(e.TaxAmount)) {
		return fmt.Errorf("deductible amount cannot exceed amount plus tax")
	}
	return nil
}

// validateIncome checks a single income record. The tax-inclusive
// consistency rule (GST collected positive and no larger than gross) is a
// data-quality warning downstream, not a hard failure here; only
// structurally broken records are rejected.
func (ip *InputParser) validateIncome(entry *domain.IncomeEntry) error {
	if !dateutil.IsISO(entry.Date) {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", entry.Date)
	}
	if entry.GrossAmount.IsNegative() {
		return fmt.Errorf("gross amount cannot be negative")
	}
	if entry.GSTCollected.IsNegative() {
		return fmt.Errorf("GST/HST collected cannot be negative")
	}
	if entry.TripCount < 0 {
		return fmt.Errorf("trip count cannot be negative")
	}
	return nil
}

// validateMileage checks a single mileage log.
func (ip *InputParser) validateMileage(m *domain.MileageLog) error {
	if !dateutil.IsISO(m.Date) {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", m.Date)
	}
	if m.DistanceKm.IsNegative() {
		return fmt.Errorf("distance cannot be negative")
	}
	if m.StartOdometer != nil && m.EndOdometer != nil && m.EndOdometer.LessThan(*m.StartOdometer) {
		return fmt.Errorf("end odometer cannot be below start odometer")
	}
	return nil
}

// validateAsset checks a single depreciable asset.
func (ip *InputParser) validateAsset(a *domain.Asset) error {
	if a.CostBeforeTax.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("cost before tax must be positive")
	}
	if a.OpeningUCC.IsNegative() {
		return fmt.Errorf("opening UCC cannot be negative")
	}
	if a.BusinessPercent.IsNegative() || a.BusinessPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("business percent must be between 0 and 100")
	}
	switch a.CCAClass {
	case "10", "10.1", "54":
	default:
		return fmt.Errorf("unknown CCA class %q", a.CCAClass)
	}
	if a.PurchaseDate != "" && !dateutil.IsISO(a.PurchaseDate) {
		return fmt.Errorf("purchase date must be YYYY-MM-DD, got %q", a.PurchaseDate)
	}
	return nil
}
