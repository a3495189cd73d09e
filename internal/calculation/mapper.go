package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gigtax/t2125-calculator/internal/domain"
	"github.com/gigtax/t2125-calculator/pkg/dateutil"
)

// WarnBusinessUseClamped is surfaced when logged business kilometres imply
// a business-use share above 100% and the percentage is capped.
const WarnBusinessUseClamped = "Business-use percentage exceeds 100%—capped at 100%."

// Mapper assembles the full T2125 statement from ledger records. It is a
// pure transformation: two calls with identical inputs produce
// byte-identical output, which the exporters rely on for reproducibility.
type Mapper struct {
	homeOfficePercent decimal.Decimal
	log               Logger
}

// NewMapper creates a mapper with the default zero home-office percentage
// and no logging.
func NewMapper() *Mapper {
	return &Mapper{homeOfficePercent: decimal.Zero, log: NopLogger{}}
}

// WithHomeOfficePercent sets the home-office-use percentage (0-100)
// applied to home-office-eligible expenses on line 9945.
func (m *Mapper) WithHomeOfficePercent(pct decimal.Decimal) *Mapper {
	m.homeOfficePercent = pct
	return m
}

// WithLogger installs a diagnostic logger.
func (m *Mapper) WithLogger(l Logger) *Mapper {
	if l != nil {
		m.log = l
	}
	return m
}

// GenerateT2125Data computes the complete line-numbered statement.
//
// Every input is optional: a nil profile degrades to empty identification
// fields, missing mileage settings fall back to logged kilometres, and an
// empty ledger yields a structurally complete all-zero report. Missing or
// malformed numerics on individual records count as zero; nothing here is
// fatal, because users fill their ledgers incrementally over the year.
//
// ccaOverride, when non-nil, replaces the recomputed asset CCA total on
// line 9936 (used when the caller carries an externally tracked schedule).
func (m *Mapper) GenerateT2125Data(
	profile *domain.Profile,
	expenses []domain.Expense,
	income []domain.IncomeEntry,
	mileage []domain.MileageLog,
	assets []domain.Asset,
	settings *domain.MileageSettings,
	ccaOverride *decimal.Decimal,
) *domain.T2125Data {
	data := &domain.T2125Data{}

	data.Identification = resolveIdentification(profile)

	// Part 3: income across all records, computed in integer cents.
	part3 := ComputePart3(SumIncomeCents(income, nil))
	data.Part3 = part3.Display()
	data.Warnings = append(data.Warnings, part3.Warnings...)

	// Part 4: route every expense to its line and pool the raw totals.
	lineTotals := make(map[domain.LineKey]decimal.Decimal)
	details := make([]domain.ExpenseDetail, 0, len(expenses))
	for _, e := range expenses {
		deductible := e.Deductible()
		lineNumber := string(e.Category)
		if key, ok := domain.LineForCategory(e.Category); ok {
			lineNumber = string(key)
			lineTotals[key] = lineTotals[key].Add(deductible)
		} else {
			// Unmapped codes are excluded from line totals but kept in
			// the audit trail under their raw category code.
			m.log.Warnf("expense category %q has no T2125 line, excluded from totals", e.Category)
		}
		details = append(details, domain.ExpenseDetail{
			Date:             e.Date,
			Merchant:         e.Merchant,
			Category:         e.Category,
			CategoryLabel:    e.Category.Label(),
			LineNumber:       lineNumber,
			Amount:           e.Amount.Round(2),
			DeductibleAmount: deductible.Round(2),
		})
	}

	// The 50% meals limit is applied to the line total after summing,
	// composing with each expense's own business-use percentage.
	lineTotals[domain.Line8523Meals] = lineTotals[domain.Line8523Meals].Div(decimal.NewFromInt(2))

	// Chart A: kilometres and the motor-vehicle cost pool for the fiscal
	// year. The year filter here is independent of whatever period the
	// caller queried expenses for.
	fiscalYear := m.fiscalYear(profile, settings, expenses, income)
	chartA, clamped := m.buildChartA(expenses, mileage, settings, fiscalYear)
	data.ChartA = chartA
	if clamped {
		data.Warnings = append(data.Warnings, WarnBusinessUseClamped)
	}

	// Line 9281 carries only the business-use portion of the vehicle pool.
	lineTotals[domain.Line9281MotorVehicle] = chartA.BusinessPortion

	// Line 9936: recomputed CCA unless the caller supplied a schedule.
	if ccaOverride != nil {
		lineTotals[domain.Line9936CCA] = *ccaOverride
	} else {
		lineTotals[domain.Line9936CCA] = TotalCCADeduction(assets)
	}

	// Line 9945 sits in Part 5 on the form; the home-office pool is scaled
	// by the configured home-office-use percentage.
	home := lineTotals[domain.Line9945BusinessUseHome].Mul(m.homeOfficePercent).Div(decimal.NewFromInt(100))
	delete(lineTotals, domain.Line9945BusinessUseHome)

	data.Part4 = buildPart4(lineTotals)

	// Part 5: net income walks down from gross business income.
	data.Part5.Line9369 = data.Part3.Line8299.Sub(data.Part4.Line9368).Round(2)
	data.Part5.Line9945 = home.Round(2)
	data.Part5.Line9946 = data.Part5.Line9369.Sub(data.Part5.Line9945).Round(2)

	// Audit trail, oldest first. The sort is stable so equal dates keep
	// their ledger order and output stays reproducible.
	sort.SliceStable(details, func(i, j int) bool { return details[i].Date < details[j].Date })
	data.ExpenseDetails = details

	return data
}

// resolveIdentification maps the profile onto the identification block,
// degrading to empty fields when no profile exists.
func resolveIdentification(p *domain.Profile) domain.Identification {
	if p == nil {
		return domain.Identification{}
	}
	return domain.Identification{
		YourName:         p.Name,
		SIN:              p.SIN,
		BusinessName:     p.BusinessName,
		BusinessAddress:  p.BusinessAddress,
		City:             p.City,
		Province:         p.Province,
		PostalCode:       p.PostalCode,
		FiscalPeriodFrom: p.FiscalYearStart,
		FiscalPeriodTo:   p.FiscalYearEnd,
		IndustryCode:     p.IndustryCode,
		AccountingMethod: p.AccountingMethod,
		GSTNumber:        p.GSTNumber,
	}
}

// fiscalYear picks the tax year for the mileage window: explicit settings
// win, then the profile's fiscal start, then the latest dated record. The
// derivation avoids the wall clock so identical inputs always produce
// identical output.
func (m *Mapper) fiscalYear(profile *domain.Profile, settings *domain.MileageSettings, expenses []domain.Expense, income []domain.IncomeEntry) int {
	if settings != nil && settings.Year != 0 {
		return settings.Year
	}
	if profile != nil {
		if y := dateutil.YearOf(profile.FiscalYearStart); y != 0 {
			return y
		}
	}
	latest := 0
	for _, e := range expenses {
		if y := dateutil.YearOf(e.Date); y > latest {
			latest = y
		}
	}
	for _, i := range income {
		if y := dateutil.YearOf(i.Date); y > latest {
			latest = y
		}
	}
	return latest
}

// chartAPool accumulates the per-line vehicle cost breakdown.
type chartAPool struct {
	fuel, maintenance, insurance, licence, interest, lease, other decimal.Decimal
}

func (m *Mapper) buildChartA(expenses []domain.Expense, mileage []domain.MileageLog, settings *domain.MileageSettings, fiscalYear int) (domain.ChartAMotor, bool) {
	var yearFilter *PeriodFilter
	if fiscalYear != 0 {
		yearFilter = YearFilter(fiscalYear)
	}
	km := MileageTotals(mileage, yearFilter)

	// Odometer anchors give the authoritative annual total; logged trips
	// are the fallback when anchors are missing or inconsistent.
	totalKm := km.TotalKm
	if settings != nil {
		if t := settings.TotalKm(); t.IsPositive() {
			totalKm = t
		}
	}

	var pool chartAPool
	for _, e := range FilterByPeriod(expenses, yearFilter) {
		if !e.Category.IsMotorVehicle() {
			continue
		}
		d := e.Deductible()
		switch e.Category {
		case domain.CategoryFuel:
			pool.fuel = pool.fuel.Add(d)
		case domain.CategoryVehicleMaint, domain.CategoryCarWash:
			pool.maintenance = pool.maintenance.Add(d)
		case domain.CategoryVehicleInsurance:
			pool.insurance = pool.insurance.Add(d)
		case domain.CategoryVehicleLicence:
			pool.licence = pool.licence.Add(d)
		case domain.CategoryVehicleInterest:
			pool.interest = pool.interest.Add(d)
		case domain.CategoryVehicleLease:
			pool.lease = pool.lease.Add(d)
		default: // parking, tolls
			pool.other = pool.other.Add(d)
		}
	}
	totalVehicle := pool.fuel.Add(pool.maintenance).Add(pool.insurance).
		Add(pool.licence).Add(pool.interest).Add(pool.lease).Add(pool.other)

	rawPct := decimal.Zero
	clamped := false
	if totalKm.IsPositive() {
		rawPct = km.BusinessKm.Div(totalKm).Mul(decimal.NewFromInt(100))
		if rawPct.GreaterThan(decimal.NewFromInt(100)) {
			clamped = true
		}
	}
	pct := BusinessUsePercent(km.BusinessKm, totalKm)

	return domain.ChartAMotor{
		TotalKm:             totalKm,
		BusinessKm:          km.BusinessKm,
		BusinessUsePercent:  pct.Round(2),
		Fuel:                pool.fuel.Round(2),
		Maintenance:         pool.maintenance.Round(2),
		Insurance:           pool.insurance.Round(2),
		LicenceRegistration: pool.licence.Round(2),
		LoanInterest:        pool.interest.Round(2),
		Leasing:             pool.lease.Round(2),
		OtherVehicle:        pool.other.Round(2),
		TotalVehicle:        totalVehicle.Round(2),
		BusinessPortion:     totalVehicle.Mul(pct).Div(decimal.NewFromInt(100)).Round(2),
	}, clamped
}

// buildPart4 materializes the line totals into the fixed Part 4 structure
// and sums line 9368. The total is the sum of the assigned line values, so
// conservation holds by construction.
func buildPart4(totals map[domain.LineKey]decimal.Decimal) domain.Part4Expenses {
	get := func(k domain.LineKey) decimal.Decimal { return totals[k].Round(2) }
	p := domain.Part4Expenses{
		Line8521: get(domain.Line8521Advertising),
		Line8523: get(domain.Line8523Meals),
		Line8690: get(domain.Line8690Insurance),
		Line8710: get(domain.Line8710Interest),
		Line8760: get(domain.Line8760Licences),
		Line8810: get(domain.Line8810Office),
		Line8811: get(domain.Line8811Supplies),
		Line8860: get(domain.Line8860Professional),
		Line8871: get(domain.Line8871Management),
		Line8910: get(domain.Line8910Rent),
		Line8960: get(domain.Line8960Repairs),
		Line9060: get(domain.Line9060Salaries),
		Line9180: get(domain.Line9180PropertyTax),
		Line9200: get(domain.Line9200Travel),
		Line9220: get(domain.Line9220Utilities),
		Line9224: get(domain.Line9224Fuel),
		Line9270: get(domain.Line9270Other),
		Line9275: get(domain.Line9275Delivery),
		Line9281: get(domain.Line9281MotorVehicle),
		Line9936: get(domain.Line9936CCA),
	}
	total := decimal.Zero
	for _, item := range p.LineItems() {
		total = total.Add(item.Amount)
	}
	p.Line9368 = total
	return p
}
