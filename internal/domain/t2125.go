package domain

import (
	"github.com/shopspring/decimal"
)

// T2125Data is the fully-computed, line-numbered statement handed to the
// export formatters. It is recomputed fresh from ledger state on every
// request and never persisted. The JSON keys mirror the literal CRA line
// numbers and are consumed by external serializers; renaming any of them
// is a breaking change.
type T2125Data struct {
	Identification Identification  `json:"identification"`
	Part3          Part3Income     `json:"part3_income"`
	Part4          Part4Expenses   `json:"part4_expenses"`
	ChartA         ChartAMotor     `json:"chartA_motorVehicle"`
	Part5          Part5NetIncome  `json:"part5_netIncome"`
	ExpenseDetails []ExpenseDetail `json:"expenseDetails"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// Identification is the taxpayer/business block at the top of the form.
// Every field degrades to an empty string when the profile is absent.
type Identification struct {
	YourName         string `json:"yourName"`
	SIN              string `json:"sin"`
	BusinessName     string `json:"businessName"`
	BusinessAddress  string `json:"businessAddress"`
	City             string `json:"city"`
	Province         string `json:"province"`
	PostalCode       string `json:"postalCode"`
	FiscalPeriodFrom string `json:"fiscalPeriodFrom"`
	FiscalPeriodTo   string `json:"fiscalPeriodTo"`
	IndustryCode     string `json:"industryCode"`
	AccountingMethod string `json:"accountingMethod"`
	GSTNumber        string `json:"gstNumber"`
}

// Part3Income carries the business income lines.
type Part3Income struct {
	Line3A   decimal.Decimal `json:"line3A_grossSales"`
	Line3B   decimal.Decimal `json:"line3B_gstHstCollected"`
	Line3C   decimal.Decimal `json:"line3C_adjustedGrossSales"`
	Line8230 decimal.Decimal `json:"line8230_otherIncome"`
	Line8299 decimal.Decimal `json:"line8299_grossBusinessIncome"`
}

// Part4Expenses carries the expense lines keyed by CRA line number.
type Part4Expenses struct {
	Line8521 decimal.Decimal `json:"line8521_advertising"`
	Line8523 decimal.Decimal `json:"line8523_mealsEntertainment"`
	Line8690 decimal.Decimal `json:"line8690_insurance"`
	Line8710 decimal.Decimal `json:"line8710_interestBankCharges"`
	Line8760 decimal.Decimal `json:"line8760_businessTaxesLicences"`
	Line8810 decimal.Decimal `json:"line8810_officeExpenses"`
	Line8811 decimal.Decimal `json:"line8811_supplies"`
	Line8860 decimal.Decimal `json:"line8860_professionalFees"`
	Line8871 decimal.Decimal `json:"line8871_managementFees"`
	Line8910 decimal.Decimal `json:"line8910_rent"`
	Line8960 decimal.Decimal `json:"line8960_repairsMaintenance"`
	Line9060 decimal.Decimal `json:"line9060_salaries"`
	Line9180 decimal.Decimal `json:"line9180_propertyTaxes"`
	Line9200 decimal.Decimal `json:"line9200_travel"`
	Line9220 decimal.Decimal `json:"line9220_utilities"`
	Line9224 decimal.Decimal `json:"line9224_fuel"`
	Line9270 decimal.Decimal `json:"line9270_otherExpenses"`
	Line9275 decimal.Decimal `json:"line9275_deliveryFreight"`
	Line9281 decimal.Decimal `json:"line9281_motorVehicle"`
	Line9936 decimal.Decimal `json:"line9936_cca"`
	Line9368 decimal.Decimal `json:"line9368_totalExpenses"`
}

// LineItem pairs a line key with its label and computed amount, for
// formatters that iterate the schedule in form order.
type LineItem struct {
	Key    LineKey
	Label  string
	Amount decimal.Decimal
}

// LineItems returns the individual Part 4 lines in form order, excluding
// the 9368 total. The sum of the returned amounts always equals Line9368.
func (p Part4Expenses) LineItems() []LineItem {
	return []LineItem{
		{Line8521Advertising, "Advertising", p.Line8521},
		{Line8523Meals, "Meals and entertainment (allowable)", p.Line8523},
		{Line8690Insurance, "Insurance", p.Line8690},
		{Line8710Interest, "Interest and bank charges", p.Line8710},
		{Line8760Licences, "Business taxes, licences and memberships", p.Line8760},
		{Line8810Office, "Office expenses", p.Line8810},
		{Line8811Supplies, "Office stationery and supplies", p.Line8811},
		{Line8860Professional, "Professional fees", p.Line8860},
		{Line8871Management, "Management and administration fees", p.Line8871},
		{Line8910Rent, "Rent", p.Line8910},
		{Line8960Repairs, "Repairs and maintenance", p.Line8960},
		{Line9060Salaries, "Salaries, wages and benefits", p.Line9060},
		{Line9180PropertyTax, "Property taxes", p.Line9180},
		{Line9200Travel, "Travel expenses", p.Line9200},
		{Line9220Utilities, "Utilities", p.Line9220},
		{Line9224Fuel, "Fuel costs (except motor vehicle)", p.Line9224},
		{Line9270Other, "Other expenses", p.Line9270},
		{Line9275Delivery, "Delivery, freight and express", p.Line9275},
		{Line9281MotorVehicle, "Motor vehicle expenses (not including CCA)", p.Line9281},
		{Line9936CCA, "Capital cost allowance", p.Line9936},
	}
}

// ChartAMotor is the motor-vehicle sub-schedule: kilometre totals, the
// vehicle cost pool and the allowable business portion.
type ChartAMotor struct {
	TotalKm             decimal.Decimal `json:"totalKm"`
	BusinessKm          decimal.Decimal `json:"businessKm"`
	BusinessUsePercent  decimal.Decimal `json:"businessUsePercent"`
	Fuel                decimal.Decimal `json:"fuel"`
	Maintenance         decimal.Decimal `json:"maintenance"`
	Insurance           decimal.Decimal `json:"insurance"`
	LicenceRegistration decimal.Decimal `json:"licenceRegistration"`
	LoanInterest        decimal.Decimal `json:"loanInterest"`
	Leasing             decimal.Decimal `json:"leasing"`
	OtherVehicle        decimal.Decimal `json:"otherVehicle"`
	TotalVehicle        decimal.Decimal `json:"totalVehicle"`
	BusinessPortion     decimal.Decimal `json:"businessPortion"`
}

// Part5NetIncome carries the closing net-income lines.
type Part5NetIncome struct {
	Line9369 decimal.Decimal `json:"line9369_netIncomeBeforeAdjustments"`
	Line9945 decimal.Decimal `json:"line9945_businessUseOfHome"`
	Line9946 decimal.Decimal `json:"line9946_yourNetIncome"`
}

// ExpenseDetail is one row of the flat chronological audit trail included
// with every export. Unmapped categories still appear here, carrying their
// raw category code as the line number.
type ExpenseDetail struct {
	Date             string          `json:"date"`
	Merchant         string          `json:"merchant"`
	Category         Category        `json:"category"`
	CategoryLabel    string          `json:"categoryLabel"`
	LineNumber       string          `json:"lineNumber"`
	Amount           decimal.Decimal `json:"amount"`
	DeductibleAmount decimal.Decimal `json:"deductibleAmount"`
}
