package calculation

import (
	"time"

	"github.com/gigtax/t2125-calculator/pkg/dateutil"
)

// Dated is satisfied by any ledger record carrying an ISO YYYY-MM-DD date.
type Dated interface {
	DateString() string
}

// PeriodFilter selects records by calendar period. All set criteria must
// match (AND semantics); the zero value and a nil pointer match everything.
// StartDate and EndDate are inclusive ISO date bounds compared
// lexicographically, which is equivalent to chronological comparison for
// well-formed YYYY-MM-DD strings.
type PeriodFilter struct {
	Year      int
	Month     int // 1-12
	StartDate string
	EndDate   string
}

// YearFilter returns a filter matching one calendar year.
func YearFilter(year int) *PeriodFilter {
	return &PeriodFilter{Year: year}
}

// YearToDate returns the conventional Jan-1-to-today filter.
func YearToDate(now time.Time) *PeriodFilter {
	start, end := dateutil.YearToDateBounds(now)
	return &PeriodFilter{StartDate: start, EndDate: end}
}

// Matches reports whether an ISO date string satisfies every set criterion.
func (f *PeriodFilter) Matches(date string) bool {
	if f == nil {
		return true
	}
	if f.Year != 0 && dateutil.YearOf(date) != f.Year {
		return false
	}
	if f.Month != 0 && dateutil.MonthOf(date) != f.Month {
		return false
	}
	if f.StartDate != "" && date < f.StartDate {
		return false
	}
	if f.EndDate != "" && date > f.EndDate {
		return false
	}
	return true
}

// FilterByPeriod returns the subset of records matching the filter. A nil
// filter is the identity; the input slice is never mutated.
func FilterByPeriod[T Dated](records []T, f *PeriodFilter) []T {
	if f == nil {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if f.Matches(r.DateString()) {
			out = append(out, r)
		}
	}
	return out
}
