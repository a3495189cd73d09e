package storage

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

// Store persists ledger records in a local SQLite database. All monetary
// and kilometre figures are stored as exact decimal strings; they are
// never written back after calculation, so a record read out is always the
// record written in.
type Store struct {
	db  *sql.DB
	log logrus.FieldLogger
}

// NewStore opens (creating if needed) the database at dbPath and applies
// pending migrations.
func NewStore(dbPath string, log logrus.FieldLogger) (*Store, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(os.Stderr)
		log = l
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("read random id bytes: %v", err))
	}
	return hex.EncodeToString(b[:])
}

func decNull(d *decimal.Decimal) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func parseDec(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func parseDecNull(ns sql.NullString) (*decimal.Decimal, error) {
	if !ns.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SaveExpense inserts the expense, assigning an ID when none is set.
func (s *Store) SaveExpense(ctx context.Context, e *domain.Expense) error {
	if e.ID == "" {
		e.ID = newID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, date, merchant, amount, tax_amount, total,
			category, business_percent, deductible_amount, itc_eligible, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Date, e.Merchant,
		e.Amount.String(), e.TaxAmount.String(), e.Total.String(),
		string(e.Category), e.BusinessPercent.String(),
		decNull(e.DeductibleAmount), e.ITCEligible, e.Notes)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"id":       e.ID,
		"user_id":  e.UserID,
		"category": e.Category,
		"amount":   e.Amount.String(),
	}).Debug("expense saved")
	return nil
}

// ListExpenses returns all of the user's expenses in chronological order.
func (s *Store) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, date, merchant, amount, tax_amount, total,
			category, business_percent, deductible_amount, itc_eligible, notes
		FROM expenses WHERE user_id = ? ORDER BY date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []domain.Expense
	for rows.Next() {
		var (
			e                                         domain.Expense
			amount, tax, total, category, businessPct string
			deductible                                sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Merchant, &amount, &tax, &total,
			&category, &businessPct, &deductible, &e.ITCEligible, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if e.Amount, err = parseDec(amount); err != nil {
			return nil, fmt.Errorf("expense %s amount: %w", e.ID, err)
		}
		if e.TaxAmount, err = parseDec(tax); err != nil {
			return nil, fmt.Errorf("expense %s tax amount: %w", e.ID, err)
		}
		if e.Total, err = parseDec(total); err != nil {
			return nil, fmt.Errorf("expense %s total: %w", e.ID, err)
		}
		if e.BusinessPercent, err = parseDec(businessPct); err != nil {
			return nil, fmt.Errorf("expense %s business percent: %w", e.ID, err)
		}
		if e.DeductibleAmount, err = parseDecNull(deductible); err != nil {
			return nil, fmt.Errorf("expense %s deductible: %w", e.ID, err)
		}
		e.Category = domain.Category(category)
		out = append(out, e)
	}
	return out, rows.Err()
}

// DeleteExpense removes one expense owned by the user.
func (s *Store) DeleteExpense(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("expense %s not found", id)
	}
	return nil
}

// SaveIncome inserts the income entry, assigning an ID when none is set.
func (s *Store) SaveIncome(ctx context.Context, in *domain.IncomeEntry) error {
	if in.ID == "" {
		in.ID = newID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO income_entries (id, user_id, date, platform, gross_amount,
			gst_collected, includes_tax, tips, bonuses, other_income, trip_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.UserID, in.Date, in.Platform,
		in.GrossAmount.String(), in.GSTCollected.String(), in.IncludesTax,
		in.Tips.String(), in.Bonuses.String(), in.OtherIncome.String(), in.TripCount)
	if err != nil {
		return fmt.Errorf("insert income entry: %w", err)
	}
	return nil
}

// ListIncome returns all of the user's income entries in chronological order.
func (s *Store) ListIncome(ctx context.Context, userID string) ([]domain.IncomeEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, date, platform, gross_amount, gst_collected,
			includes_tax, tips, bonuses, other_income, trip_count
		FROM income_entries WHERE user_id = ? ORDER BY date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query income entries: %w", err)
	}
	defer rows.Close()

	var out []domain.IncomeEntry
	for rows.Next() {
		var (
			in                               domain.IncomeEntry
			gross, gst, tips, bonuses, other string
		)
		if err := rows.Scan(&in.ID, &in.UserID, &in.Date, &in.Platform, &gross, &gst,
			&in.IncludesTax, &tips, &bonuses, &other, &in.TripCount); err != nil {
			return nil, fmt.Errorf("scan income entry: %w", err)
		}
		if in.GrossAmount, err = parseDec(gross); err != nil {
			return nil, fmt.Errorf("income %s gross: %w", in.ID, err)
		}
		if in.GSTCollected, err = parseDec(gst); err != nil {
			return nil, fmt.Errorf("income %s gst: %w", in.ID, err)
		}
		if in.Tips, err = parseDec(tips); err != nil {
			return nil, fmt.Errorf("income %s tips: %w", in.ID, err)
		}
		if in.Bonuses, err = parseDec(bonuses); err != nil {
			return nil, fmt.Errorf("income %s bonuses: %w", in.ID, err)
		}
		if in.OtherIncome, err = parseDec(other); err != nil {
			return nil, fmt.Errorf("income %s other income: %w", in.ID, err)
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

// SaveMileage inserts the mileage log, assigning an ID when none is set.
func (s *Store) SaveMileage(ctx context.Context, m *domain.MileageLog) error {
	if m.ID == "" {
		m.ID = newID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO mileage_logs (id, user_id, date, start_odometer, end_odometer,
			distance_km, is_business, purpose)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.Date, decNull(m.StartOdometer), decNull(m.EndOdometer),
		m.DistanceKm.String(), m.IsBusiness, m.Purpose)
	if err != nil {
		return fmt.Errorf("insert mileage log: %w", err)
	}
	return nil
}

// ListMileage returns all of the user's mileage logs in chronological order.
func (s *Store) ListMileage(ctx context.Context, userID string) ([]domain.MileageLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, date, start_odometer, end_odometer, distance_km, is_business, purpose
		FROM mileage_logs WHERE user_id = ? ORDER BY date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query mileage logs: %w", err)
	}
	defer rows.Close()

	var out []domain.MileageLog
	for rows.Next() {
		var (
			m          domain.MileageLog
			start, end sql.NullString
			distance   string
		)
		if err := rows.Scan(&m.ID, &m.UserID, &m.Date, &start, &end, &distance, &m.IsBusiness, &m.Purpose); err != nil {
			return nil, fmt.Errorf("scan mileage log: %w", err)
		}
		if m.StartOdometer, err = parseDecNull(start); err != nil {
			return nil, fmt.Errorf("mileage %s start odometer: %w", m.ID, err)
		}
		if m.EndOdometer, err = parseDecNull(end); err != nil {
			return nil, fmt.Errorf("mileage %s end odometer: %w", m.ID, err)
		}
		if m.DistanceKm, err = parseDec(distance); err != nil {
			return nil, fmt.Errorf("mileage %s distance: %w", m.ID, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SaveAsset inserts the asset, assigning an ID when none is set.
func (s *Store) SaveAsset(ctx context.Context, a *domain.Asset) error {
	if a.ID == "" {
		a.ID = newID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO assets (id, user_id, name, cca_class, cost_before_tax, purchase_date,
			business_percent, opening_ucc, rate, luxury_cap, zero_emission, half_year_rule, sale_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Name, a.CCAClass, a.CostBeforeTax.String(), a.PurchaseDate,
		a.BusinessPercent.String(), a.OpeningUCC.String(), a.Rate.String(),
		a.LuxuryCap, a.ZeroEmission, a.HalfYearRule, decNull(a.SalePrice))
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// ListAssets returns all of the user's depreciable assets.
func (s *Store) ListAssets(ctx context.Context, userID string) ([]domain.Asset, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, cca_class, cost_before_tax, purchase_date,
			business_percent, opening_ucc, rate, luxury_cap, zero_emission, half_year_rule, sale_price
		FROM assets WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	var out []domain.Asset
	for rows.Next() {
		var (
			a                                domain.Asset
			cost, businessPct, opening, rate string
			sale                             sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.CCAClass, &cost, &a.PurchaseDate,
			&businessPct, &opening, &rate, &a.LuxuryCap, &a.ZeroEmission, &a.HalfYearRule, &sale); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		if a.CostBeforeTax, err = parseDec(cost); err != nil {
			return nil, fmt.Errorf("asset %s cost: %w", a.ID, err)
		}
		if a.BusinessPercent, err = parseDec(businessPct); err != nil {
			return nil, fmt.Errorf("asset %s business percent: %w", a.ID, err)
		}
		if a.OpeningUCC, err = parseDec(opening); err != nil {
			return nil, fmt.Errorf("asset %s opening UCC: %w", a.ID, err)
		}
		if a.Rate, err = parseDec(rate); err != nil {
			return nil, fmt.Errorf("asset %s rate: %w", a.ID, err)
		}
		if a.SalePrice, err = parseDecNull(sale); err != nil {
			return nil, fmt.Errorf("asset %s sale price: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpsertProfile creates or replaces the user's identification profile.
func (s *Store) UpsertProfile(ctx context.Context, userID string, p domain.Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, name, sin, business_name, business_address, city,
			province, postal_code, industry_code, fiscal_year_start, fiscal_year_end,
			accounting_method, gst_registered, gst_number, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name, sin = excluded.sin,
			business_name = excluded.business_name,
			business_address = excluded.business_address,
			city = excluded.city, province = excluded.province,
			postal_code = excluded.postal_code,
			industry_code = excluded.industry_code,
			fiscal_year_start = excluded.fiscal_year_start,
			fiscal_year_end = excluded.fiscal_year_end,
			accounting_method = excluded.accounting_method,
			gst_registered = excluded.gst_registered,
			gst_number = excluded.gst_number,
			updated_at = datetime('now')`,
		userID, p.Name, p.SIN, p.BusinessName, p.BusinessAddress, p.City,
		p.Province, p.PostalCode, p.IndustryCode, p.FiscalYearStart, p.FiscalYearEnd,
		p.AccountingMethod, p.GSTRegistered, p.GSTNumber)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// GetProfile returns the user's profile, or nil when none is stored.
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p := domain.Profile{ID: userID}
	err := s.db.QueryRowContext(ctx, `
		SELECT name, sin, business_name, business_address, city, province, postal_code,
			industry_code, fiscal_year_start, fiscal_year_end, accounting_method,
			gst_registered, gst_number
		FROM profiles WHERE user_id = ?`, userID).
		Scan(&p.Name, &p.SIN, &p.BusinessName, &p.BusinessAddress, &p.City, &p.Province,
			&p.PostalCode, &p.IndustryCode, &p.FiscalYearStart, &p.FiscalYearEnd,
			&p.AccountingMethod, &p.GSTRegistered, &p.GSTNumber)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &p, nil
}

// UpsertMileageSettings creates or replaces the odometer anchors for one year.
func (s *Store) UpsertMileageSettings(ctx context.Context, set domain.MileageSettings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO mileage_settings (user_id, year, jan1_odometer, current_odometer, updated_at)
		VALUES (?, ?, ?, ?, datetime('now'))
		ON CONFLICT(user_id, year) DO UPDATE SET
			jan1_odometer = excluded.jan1_odometer,
			current_odometer = excluded.current_odometer,
			updated_at = datetime('now')`,
		set.UserID, set.Year, decNull(set.Jan1Odometer), decNull(set.CurrentOdometer))
	if err != nil {
		return fmt.Errorf("upsert mileage settings: %w", err)
	}
	return nil
}

// GetMileageSettings returns the odometer anchors for one year, or nil when
// none are stored.
func (s *Store) GetMileageSettings(ctx context.Context, userID string, year int) (*domain.MileageSettings, error) {
	set := domain.MileageSettings{UserID: userID, Year: year}
	var jan1, current sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT jan1_odometer, current_odometer
		FROM mileage_settings WHERE user_id = ? AND year = ?`, userID, year).
		Scan(&jan1, &current)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query mileage settings: %w", err)
	}
	if set.Jan1Odometer, err = parseDecNull(jan1); err != nil {
		return nil, fmt.Errorf("mileage settings jan1 odometer: %w", err)
	}
	if set.CurrentOdometer, err = parseDecNull(current); err != nil {
		return nil, fmt.Errorf("mileage settings current odometer: %w", err)
	}
	return &set, nil
}
