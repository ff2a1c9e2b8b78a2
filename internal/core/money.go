// Package core holds the household finance model: money with fixed-rate
// currency conversion, jobs, people and families.
//
// Nothing in this package returns errors for bad input. Unknown currencies
// degrade to USD or to a zero amount, and age-gated assignments are dropped
// silently. Callers that need to reject input up front use ParseCurrency.
//
// Integer results never wrap: money amounts saturate at the int64 bounds and
// incomes at the int bounds.
package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	USD Currency = "USD"
	GBP Currency = "GBP"
	EUR Currency = "EUR"
	CAN Currency = "CAN"
)

type (
	Currency string

	// Money is an integer amount in one of the supported currencies.
	// It is a value type; operations return new instances.
	Money struct {
		amount   int64
		currency Currency
	}

	// rate is a multiplier kept as a fraction so conversions multiply
	// before dividing.
	rate struct {
		num, den float64
	}
)

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// toUSD maps an amount in the keyed currency to its USD equivalent.
var toUSD = map[Currency]rate{
	USD: {1, 1},
	GBP: {2, 1},
	EUR: {2, 3},
	CAN: {4, 5},
}

// fromUSD maps a USD amount into the keyed currency.
var fromUSD = map[Currency]rate{
	USD: {1, 1},
	GBP: {1, 2},
	EUR: {3, 2},
	CAN: {5, 4},
}

// Currencies lists the supported codes in display order.
func Currencies() []Currency {
	return []Currency{USD, GBP, EUR, CAN}
}

// Supported reports whether c is one of the four known codes.
func (c Currency) Supported() bool {
	_, ok := toUSD[c]
	return ok
}

// ParseCurrency normalizes s and checks it against the supported codes.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Supported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	return c, nil
}

// ParseAmount reads a whole-unit amount such as "100", "+20" or "-15".
// Decimal separators are rejected: Money has no fractional part.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if digits == "" || len(s)-len(digits) > 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return v, nil
}

// NewMoney builds a Money value. An unsupported currency is stored as USD
// and the amount is kept as given.
func NewMoney(amount int64, currency Currency) Money {
	if !currency.Supported() {
		currency = USD
	}
	return Money{amount: amount, currency: currency}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

// Convert returns m expressed in target. The amount goes through its USD
// equivalent and is truncated toward zero once, at the end. An unknown
// currency on either side contributes zero. Results outside the int64 range
// saturate at its bounds.
func (m Money) Convert(target Currency) Money {
	return NewMoney(fromUSDAmount(m.usd(), target), target)
}

// Add sums the USD equivalents of m and other and labels the total with
// other's currency. The total is not converted again.
func (m Money) Add(other Money) Money {
	return NewMoney(addInt64(m.Convert(USD).amount, other.Convert(USD).amount), other.currency)
}

// Subtract is Add with other negated. The result may be negative.
func (m Money) Subtract(other Money) Money {
	return NewMoney(subInt64(m.Convert(USD).amount, other.Convert(USD).amount), other.currency)
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

func (m Money) usd() float64 {
	r, ok := toUSD[m.currency]
	if !ok {
		return 0
	}
	return float64(m.amount) * r.num / r.den
}

func fromUSDAmount(usd float64, target Currency) int64 {
	r, ok := fromUSD[target]
	if !ok {
		return 0
	}
	return saturateInt64(usd * r.num / r.den)
}

// saturateInt64 truncates v toward zero, pinning values outside the int64
// range to its bounds. NaN becomes 0.
func saturateInt64(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

func addInt64(a, b int64) int64 {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return math.MaxInt64
	case b < 0 && sum > a:
		return math.MinInt64
	}
	return sum
}

func subInt64(a, b int64) int64 {
	diff := a - b
	switch {
	case b < 0 && diff < a:
		return math.MaxInt64
	case b > 0 && diff > a:
		return math.MinInt64
	}
	return diff
}
