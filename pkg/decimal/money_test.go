package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}

	m4 := NewMoneyFromCents(12345)
	if m4.String() != "123.45" {
		t.Fatalf("NewMoneyFromCents got %s", m4.String())
	}
}

func TestCentsToDollars(t *testing.T) {
	// Whole-dollar export conversion rounds half-up.
	cases := []struct {
		cents int64
		want  int64
	}{
		{12350, 124},
		{12349, 123},
		{12345, 123},
		{50, 1},
		{49, 0},
		{0, 0},
		{-12350, -124},
	}
	for _, c := range cases {
		if got := CentsToDollars(c.cents); got != c.want {
			t.Fatalf("CentsToDollars(%d) got %d want %d", c.cents, got, c.want)
		}
	}
}

func TestCentsToDisplay(t *testing.T) {
	// Display conversion keeps cent precision and never rounds.
	if got := CentsToDisplay(12345).String(); got != "123.45" {
		t.Fatalf("CentsToDisplay(12345) got %s", got)
	}
	if got := CentsToDisplay(100).String(); got != "1.00" {
		t.Fatalf("CentsToDisplay(100) got %s", got)
	}
	if got := CentsToDisplay(-5000).String(); got != "-50.00" {
		t.Fatalf("CentsToDisplay(-5000) got %s", got)
	}
}

func TestCentsRoundTrip(t *testing.T) {
	if got := NewMoneyFromCents(9876).Cents(); got != 9876 {
		t.Fatalf("Cents round trip got %d", got)
	}
	if got := NewMoney(12.345).Cents(); got != 1235 {
		t.Fatalf("Cents with sub-cent residue got %d", got)
	}
}

func TestRounding(t *testing.T) {
	// shopspring Round(2) applies banker's rounding for display amounts.
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"2.365", "2.37"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		got := m.Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestPercentAndHalf(t *testing.T) {
	m := NewMoney(200)
	if got := m.Percent(stddec.NewFromInt(75)).String(); got != "150.00" {
		t.Fatalf("Percent got %s", got)
	}
	if got := m.Half().String(); got != "100.00" {
		t.Fatalf("Half got %s", got)
	}
	// Business-use scaling and the 50% meals limit compose multiplicatively.
	if got := m.Percent(stddec.NewFromInt(80)).Half().String(); got != "80.00" {
		t.Fatalf("composed reduction got %s", got)
	}
}

func TestArithmeticAndComparisons(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(4)
	if got := a.Sub(b).Add(b).String(); got != "10.00" {
		t.Fatalf("Add/Sub got %s", got)
	}
	if !a.GreaterThan(b) || !b.LessThan(a) || a.Equal(b) {
		t.Fatalf("comparison mismatch")
	}
	if !Min(a, b).Equal(b) || !Max(a, b).Equal(a) {
		t.Fatalf("Min/Max mismatch")
	}
	if !Zero().IsZero() || a.IsNegative() || !a.IsPositive() {
		t.Fatalf("sign checks mismatch")
	}
	if got := a.Format(); got != "$10.00" {
		t.Fatalf("Format got %s", got)
	}
}
