package domain

import (
	"github.com/shopspring/decimal"
)

// Expense represents one business expenditure recorded by a driver.
// Records are read-only inputs to the calculation engine; they are created
// by user entry or the demo seeder and only ever mutated by explicit
// update at the application boundary.
type Expense struct {
	ID              string          `yaml:"id,omitempty" json:"id,omitempty"`
	UserID          string          `yaml:"user_id,omitempty" json:"userId,omitempty"`
	Date            string          `yaml:"date" json:"date"` // YYYY-MM-DD
	Merchant        string          `yaml:"merchant" json:"merchant"`
	Amount          decimal.Decimal `yaml:"amount" json:"amount"`
	TaxAmount       decimal.Decimal `yaml:"tax_amount,omitempty" json:"taxAmount"`
	Total           decimal.Decimal `yaml:"total,omitempty" json:"total"` // optional tax-inclusive total
	Category        Category        `yaml:"category" json:"category"`
	BusinessPercent decimal.Decimal `yaml:"business_percent" json:"businessPercent"` // 0-100
	// DeductibleAmount is the stored deductible figure. When present it
	// takes precedence over recomputation from Amount and BusinessPercent.
	DeductibleAmount *decimal.Decimal `yaml:"deductible_amount,omitempty" json:"deductibleAmount,omitempty"`
	ITCEligible      bool             `yaml:"itc_eligible,omitempty" json:"itcEligible"`
	Notes            string           `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Deductible returns the deductible portion of the expense: the stored
// amount when one exists, otherwise Amount scaled by BusinessPercent.
func (e Expense) Deductible() decimal.Decimal {
	if e.DeductibleAmount != nil {
		return *e.DeductibleAmount
	}
	return e.Amount.Mul(e.BusinessPercent).Div(decimal.NewFromInt(100))
}

// GrossTotal returns the tax-inclusive total when tracked, otherwise the
// gross amount.
func (e Expense) GrossTotal() decimal.Decimal {
	if !e.Total.IsZero() {
		return e.Total
	}
	return e.Amount
}

// DateString implements the Dated contract used by the period filter.
func (e Expense) DateString() string { return e.Date }

// IncomeEntry represents one income event: a platform payout, tips,
// bonuses or other business income.
type IncomeEntry struct {
	ID           string          `yaml:"id,omitempty" json:"id,omitempty"`
	UserID       string          `yaml:"user_id,omitempty" json:"userId,omitempty"`
	Date         string          `yaml:"date" json:"date"`
	Platform     string          `yaml:"platform" json:"platform"`
	GrossAmount  decimal.Decimal `yaml:"gross_amount" json:"grossAmount"`
	GSTCollected decimal.Decimal `yaml:"gst_collected,omitempty" json:"gstCollected"`
	IncludesTax  bool            `yaml:"includes_tax,omitempty" json:"includesTax"`
	Tips         decimal.Decimal `yaml:"tips,omitempty" json:"tips"`
	Bonuses      decimal.Decimal `yaml:"bonuses,omitempty" json:"bonuses"`
	OtherIncome  decimal.Decimal `yaml:"other_income,omitempty" json:"otherIncome"`
	TripCount    int             `yaml:"trip_count,omitempty" json:"tripCount"`
}

// NetSales returns the gross amount with collected GST/HST backed out when
// the entry is flagged tax-inclusive.
func (i IncomeEntry) NetSales() decimal.Decimal {
	if i.IncludesTax {
		return i.GrossAmount.Sub(i.GSTCollected)
	}
	return i.GrossAmount
}

// OtherTotal returns the tips, bonuses and other-income sub-amounts that
// land on line 8230.
func (i IncomeEntry) OtherTotal() decimal.Decimal {
	return i.Tips.Add(i.Bonuses).Add(i.OtherIncome)
}

// DateString implements the Dated contract used by the period filter.
func (i IncomeEntry) DateString() string { return i.Date }

// MileageLog represents one trip or odometer interval.
type MileageLog struct {
	ID            string           `yaml:"id,omitempty" json:"id,omitempty"`
	UserID        string           `yaml:"user_id,omitempty" json:"userId,omitempty"`
	Date          string           `yaml:"date" json:"date"`
	StartOdometer *decimal.Decimal `yaml:"start_odometer,omitempty" json:"startOdometer,omitempty"`
	EndOdometer   *decimal.Decimal `yaml:"end_odometer,omitempty" json:"endOdometer,omitempty"`
	DistanceKm    decimal.Decimal  `yaml:"distance_km" json:"distanceKm"`
	IsBusiness    bool             `yaml:"is_business" json:"isBusiness"`
	Purpose       string           `yaml:"purpose,omitempty" json:"purpose,omitempty"`
}

// DateString implements the Dated contract used by the period filter.
func (m MileageLog) DateString() string { return m.Date }

// MileageSettings holds the per-year odometer anchors used to derive the
// vehicle's total kilometres for the tax year.
type MileageSettings struct {
	UserID          string           `yaml:"user_id,omitempty" json:"userId,omitempty"`
	Year            int              `yaml:"year" json:"year"`
	Jan1Odometer    *decimal.Decimal `yaml:"jan1_odometer,omitempty" json:"jan1Odometer,omitempty"`
	CurrentOdometer *decimal.Decimal `yaml:"current_odometer,omitempty" json:"currentOdometer,omitempty"`
}

// TotalKm returns the implied total kilometres for the year, or zero when
// either anchor is missing or the readings run backwards.
func (s MileageSettings) TotalKm() decimal.Decimal {
	if s.Jan1Odometer == nil || s.CurrentOdometer == nil {
		return decimal.Zero
	}
	if s.CurrentOdometer.LessThan(*s.Jan1Odometer) {
		return decimal.Zero
	}
	return s.CurrentOdometer.Sub(*s.Jan1Odometer)
}

// Asset represents one depreciable capital asset, primarily the driver's
// vehicle. Opening and closing UCC are tracked externally across years;
// the current-year deduction is recomputed on demand, never accumulated.
type Asset struct {
	ID              string          `yaml:"id,omitempty" json:"id,omitempty"`
	UserID          string          `yaml:"user_id,omitempty" json:"userId,omitempty"`
	Name            string          `yaml:"name" json:"name"`
	CCAClass        string          `yaml:"cca_class" json:"ccaClass"` // "10", "10.1" or "54"
	CostBeforeTax   decimal.Decimal `yaml:"cost_before_tax" json:"costBeforeTax"`
	PurchaseDate    string          `yaml:"purchase_date,omitempty" json:"purchaseDate,omitempty"`
	BusinessPercent decimal.Decimal `yaml:"business_percent" json:"businessPercent"`
	OpeningUCC      decimal.Decimal `yaml:"opening_ucc" json:"openingUCC"`
	Rate            decimal.Decimal `yaml:"rate" json:"rate"` // fraction, e.g. 0.30
	CCADeduction    decimal.Decimal `yaml:"cca_deduction,omitempty" json:"ccaDeduction"`
	ClosingUCC      decimal.Decimal `yaml:"closing_ucc,omitempty" json:"closingUCC"`
	LuxuryCap       bool            `yaml:"luxury_cap,omitempty" json:"luxuryCap"`
	ZeroEmission    bool            `yaml:"zero_emission,omitempty" json:"zeroEmission"`
	HalfYearRule    bool            `yaml:"half_year_rule,omitempty" json:"halfYearRule"`
	SalePrice       *decimal.Decimal `yaml:"sale_price,omitempty" json:"salePrice,omitempty"`
}

// Profile is the taxpayer identification block. It is a read-only input to
// the mapper and never computed.
type Profile struct {
	ID               string `yaml:"id,omitempty" json:"id,omitempty"`
	Name             string `yaml:"name" json:"name"`
	SIN              string `yaml:"sin,omitempty" json:"sin,omitempty"`
	BusinessName     string `yaml:"business_name,omitempty" json:"businessName,omitempty"`
	BusinessAddress  string `yaml:"business_address,omitempty" json:"businessAddress,omitempty"`
	City             string `yaml:"city,omitempty" json:"city,omitempty"`
	Province         string `yaml:"province,omitempty" json:"province,omitempty"`
	PostalCode       string `yaml:"postal_code,omitempty" json:"postalCode,omitempty"`
	IndustryCode     string `yaml:"industry_code,omitempty" json:"industryCode,omitempty"`
	FiscalYearStart  string `yaml:"fiscal_year_start,omitempty" json:"fiscalYearStart,omitempty"`
	FiscalYearEnd    string `yaml:"fiscal_year_end,omitempty" json:"fiscalYearEnd,omitempty"`
	AccountingMethod string `yaml:"accounting_method,omitempty" json:"accountingMethod,omitempty"`
	GSTRegistered    bool   `yaml:"gst_registered,omitempty" json:"gstRegistered"`
	GSTNumber        string `yaml:"gst_number,omitempty" json:"gstNumber,omitempty"`
}
