package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(100, USD)
	assert.Equal(t, int64(100), m.Amount())
	assert.Equal(t, USD, m.Currency())

	// unknown codes are stored as USD with the amount untouched
	assert.Equal(t, NewMoney(100, USD), NewMoney(100, "XXX"))
	assert.Equal(t, NewMoney(-7, USD), NewMoney(-7, ""))
}

func TestMoneyConvert(t *testing.T) {
	cases := []struct {
		name   string
		in     Money
		target Currency
		want   Money
	}{
		{"usd to gbp", NewMoney(100, USD), GBP, NewMoney(50, GBP)},
		{"gbp to usd", NewMoney(50, GBP), USD, NewMoney(100, USD)},
		{"usd to eur", NewMoney(100, USD), EUR, NewMoney(150, EUR)},
		{"eur to usd", NewMoney(150, EUR), USD, NewMoney(100, USD)},
		{"usd to can", NewMoney(100, USD), CAN, NewMoney(125, CAN)},
		{"can to usd", NewMoney(125, CAN), USD, NewMoney(100, USD)},
		{"gbp to eur", NewMoney(1, GBP), EUR, NewMoney(3, EUR)},
		{"eur to can", NewMoney(9, EUR), CAN, NewMoney(7, CAN)},
		{"truncates", NewMoney(5, USD), GBP, NewMoney(2, GBP)},
		{"truncates eur", NewMoney(10, EUR), USD, NewMoney(6, USD)},
		{"truncates toward zero", NewMoney(-5, USD), GBP, NewMoney(-2, GBP)},
		{"same currency", NewMoney(42, CAN), CAN, NewMoney(42, CAN)},
		{"unknown target", NewMoney(100, USD), "XXX", NewMoney(0, USD)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Convert(tc.target))
		})
	}
}

func TestMoneyConvertUnknownSource(t *testing.T) {
	// the zero value carries no currency and converts to nothing
	var m Money
	assert.Equal(t, NewMoney(0, GBP), m.Convert(GBP))
}

func TestMoneyRoundTrip(t *testing.T) {
	for _, amount := range []int64{0, 2, 10, 100, 1000} {
		m := NewMoney(amount, USD)
		assert.Equal(t, m, m.Convert(GBP).Convert(USD), "amount %d", amount)
	}

	// odd amounts lose the half unit on the way to GBP
	m := NewMoney(5, USD)
	assert.Equal(t, NewMoney(4, USD), m.Convert(GBP).Convert(USD))
}

func TestMoneyAdd(t *testing.T) {
	assert.Equal(t, NewMoney(200, USD), NewMoney(100, USD).Add(NewMoney(100, USD)))

	// the USD total is labelled with the second operand's currency as is
	assert.Equal(t, NewMoney(30, GBP), NewMoney(10, USD).Add(NewMoney(10, GBP)))
	assert.Equal(t, NewMoney(30, USD), NewMoney(10, GBP).Add(NewMoney(10, USD)))
	assert.Equal(t, NewMoney(166, EUR), NewMoney(100, USD).Add(NewMoney(100, EUR)))
	assert.Equal(t, NewMoney(180, CAN), NewMoney(100, USD).Add(NewMoney(100, CAN)))
}

func TestMoneySubtract(t *testing.T) {
	assert.Equal(t, NewMoney(0, USD), NewMoney(100, USD).Subtract(NewMoney(100, USD)))
	assert.Equal(t, NewMoney(-10, GBP), NewMoney(10, USD).Subtract(NewMoney(10, GBP)))
	assert.Equal(t, NewMoney(10, USD), NewMoney(10, GBP).Subtract(NewMoney(10, USD)))
}

func TestMoneySaturates(t *testing.T) {
	cases := []struct {
		name string
		got  Money
		want Money
	}{
		{"convert above max", NewMoney(math.MaxInt64, GBP).Convert(USD), NewMoney(math.MaxInt64, USD)},
		{"convert below min", NewMoney(math.MinInt64, GBP).Convert(USD), NewMoney(math.MinInt64, USD)},
		{"convert max to same currency", NewMoney(math.MaxInt64, USD).Convert(USD), NewMoney(math.MaxInt64, USD)},
		{"add past max", NewMoney(math.MaxInt64, USD).Add(NewMoney(1, USD)), NewMoney(math.MaxInt64, USD)},
		{"add past min", NewMoney(math.MinInt64, USD).Add(NewMoney(-1, USD)), NewMoney(math.MinInt64, USD)},
		{"subtract past min", NewMoney(math.MinInt64, USD).Subtract(NewMoney(1, USD)), NewMoney(math.MinInt64, USD)},
		{"subtract past max", NewMoney(math.MaxInt64, USD).Subtract(NewMoney(-1, USD)), NewMoney(math.MaxInt64, USD)},
		{"add large gbp", NewMoney(math.MaxInt64, GBP).Add(NewMoney(math.MaxInt64, GBP)), NewMoney(math.MaxInt64, GBP)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}

	// large values inside the range are untouched
	assert.Equal(t, NewMoney(1<<62, GBP), NewMoney(math.MaxInt64, USD).Convert(GBP))
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "100 USD", NewMoney(100, USD).String())
	assert.Equal(t, "-3 CAN", NewMoney(-3, CAN).String())
}

func TestParseCurrency(t *testing.T) {
	for _, in := range []string{"USD", "gbp", " Eur ", "CAN"} {
		c, err := ParseCurrency(in)
		require.NoError(t, err, in)
		assert.True(t, c.Supported())
	}

	for _, in := range []string{"", "CAD", "XXX", "US D"} {
		_, err := ParseCurrency(in)
		assert.ErrorIs(t, err, ErrUnsupportedCurrency, in)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 1, true},
		{"100", 100, true},
		{" 250 ", 250, true},
		{"+20", 20, true},
		{"-15", -15, true},
		{"0", 0, true},
		{"1.5", 0, false},
		{"1,5", 0, false},
		{"--1", 0, false},
		{"-", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
	}
}
