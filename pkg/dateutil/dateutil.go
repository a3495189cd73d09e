package dateutil

import (
	"fmt"
	"time"
)

// ISOLayout is the canonical date format carried on every ledger record.
// Records always store dates in this form, which makes lexicographic
// comparison of date strings equivalent to chronological comparison.
const ISOLayout = "2006-01-02"

// ParseISO parses a YYYY-MM-DD date string.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatISO renders a time as a YYYY-MM-DD string.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// IsISO reports whether s is a well-formed YYYY-MM-DD date.
func IsISO(s string) bool {
	_, err := time.Parse(ISOLayout, s)
	return err == nil
}

// YearOf extracts the four-digit year from an ISO date string. Returns 0
// for malformed input rather than an error; callers filtering partially
// entered ledgers treat an unparseable date as matching no period.
func YearOf(s string) int {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return 0
	}
	return t.Year()
}

// MonthOf extracts the month (1-12) from an ISO date string, or 0 for
// malformed input.
func MonthOf(s string) int {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return 0
	}
	return int(t.Month())
}

// YearBounds returns the inclusive first and last ISO dates of a calendar
// year, e.g. 2024 -> ("2024-01-01", "2024-12-31").
func YearBounds(year int) (string, string) {
	return fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year)
}

// YearToDateBounds returns Jan 1 of now's year and now itself as ISO
// strings, the conventional "year to date" reporting window.
func YearToDateBounds(now time.Time) (string, string) {
	return fmt.Sprintf("%04d-01-01", now.Year()), FormatISO(now)
}
