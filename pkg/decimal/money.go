package decimal

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// CentPlaces is the number of fractional digits kept for money amounts.
	CentPlaces = 2
	// RatePlaces is the number of fractional digits kept for solved rates.
	RatePlaces = 4
)

// Money represents a monetary amount with cent precision on display
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(CentPlaces)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// String returns the amount with exactly two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(CentPlaces)
}

// Format formats the amount as US currency with thousands separators, e.g. $1,234.56
func (m Money) Format() string {
	s := m.Decimal.Abs().StringFixed(CentPlaces)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if m.Decimal.Round(CentPlaces).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// RoundCents converts a float64 amount to a decimal rounded half away from zero
// to cents. The second result is false when value is NaN or infinite.
func RoundCents(value float64) (decimal.Decimal, bool) {
	return roundFloat(value, CentPlaces)
}

// RoundRate converts a float64 rate to a decimal rounded to four places.
func RoundRate(value float64) (decimal.Decimal, bool) {
	return roundFloat(value, RatePlaces)
}

func roundFloat(value float64, places int32) (decimal.Decimal, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(value).Round(places), true
}
