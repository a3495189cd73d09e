package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

func expenseOn(date string, amount float64) domain.Expense {
	return domain.Expense{
		Date:            date,
		Merchant:        "test",
		Amount:          decimal.NewFromFloat(amount),
		Category:        domain.CategoryFuel,
		BusinessPercent: decimal.NewFromInt(100),
	}
}

func TestFilterByPeriod(t *testing.T) {
	records := []domain.Expense{
		expenseOn("2023-12-31", 1),
		expenseOn("2024-01-01", 2),
		expenseOn("2024-03-15", 3),
		expenseOn("2024-12-31", 4),
		expenseOn("2025-01-01", 5),
	}

	tests := []struct {
		name      string
		filter    *PeriodFilter
		wantDates []string
	}{
		{
			name:      "nil filter is identity",
			filter:    nil,
			wantDates: []string{"2023-12-31", "2024-01-01", "2024-03-15", "2024-12-31", "2025-01-01"},
		},
		{
			name:      "year only",
			filter:    YearFilter(2024),
			wantDates: []string{"2024-01-01", "2024-03-15", "2024-12-31"},
		},
		{
			name:      "year and month",
			filter:    &PeriodFilter{Year: 2024, Month: 3},
			wantDates: []string{"2024-03-15"},
		},
		{
			name:      "date range inclusive on both bounds",
			filter:    &PeriodFilter{StartDate: "2024-01-01", EndDate: "2024-12-31"},
			wantDates: []string{"2024-01-01", "2024-03-15", "2024-12-31"},
		},
		{
			name:      "all criteria AND together",
			filter:    &PeriodFilter{Year: 2024, Month: 12, StartDate: "2024-01-01", EndDate: "2024-12-30"},
			wantDates: []string{},
		},
		{
			name:      "no match",
			filter:    YearFilter(2020),
			wantDates: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPeriod(records, tt.filter)
			dates := make([]string, 0, len(got))
			for _, r := range got {
				dates = append(dates, r.Date)
			}
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}

func TestPeriodFilterMalformedDate(t *testing.T) {
	// Records with unparseable dates match no year/month criterion.
	f := YearFilter(2024)
	assert.False(t, f.Matches("not-a-date"))
	assert.False(t, f.Matches(""))
}

func TestYearToDate(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	f := YearToDate(now)
	assert.Equal(t, "2025-01-01", f.StartDate)
	assert.Equal(t, "2025-08-30", f.EndDate)
	assert.True(t, f.Matches("2025-01-01"))
	assert.True(t, f.Matches("2025-08-30"))
	assert.False(t, f.Matches("2024-12-31"))
	assert.False(t, f.Matches("2025-08-31"))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := []domain.Expense{expenseOn("2024-01-01", 1), expenseOn("2025-01-01", 2)}
	_ = FilterByPeriod(records, YearFilter(2024))
	assert.Len(t, records, 2)
	assert.Equal(t, "2024-01-01", records[0].Date)
}
