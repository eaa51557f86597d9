package currency_test

import (
	"testing"

	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDefaultRates(t *testing.T) {
	t.Parallel()
	rates := currency.DefaultRates()

	assert.Equal(t, []currency.Code{currency.EUR, currency.GBP, currency.SEK, currency.USD}, rates.Supported())

	usd, err := rates.Rate(currency.USD)
	require.NoError(t, err)
	assert.True(t, usd.Equal(dec("0.85")))

	_, err = rates.Rate("JPY")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
	assert.False(t, rates.Supports("JPY"))
}

func TestConvert(t *testing.T) {
	t.Parallel()
	rates := currency.DefaultRates()

	tests := []struct {
		name     string
		amount   string
		from, to currency.Code
		expected string
	}{
		{name: "USD to EUR", amount: "10", from: currency.USD, to: currency.EUR, expected: "8.5000"},
		{name: "EUR to USD", amount: "8.5", from: currency.EUR, to: currency.USD, expected: "10.0000"},
		{name: "GBP to SEK", amount: "1", from: currency.GBP, to: currency.SEK, expected: "12.2340"},
		{name: "SEK to USD", amount: "100", from: currency.SEK, to: currency.USD, expected: "11.0588"},
		{name: "identity", amount: "12.3456", from: currency.EUR, to: currency.EUR, expected: "12.3456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := rates.Convert(dec(tt.amount), tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.StringFixed(4))
		})
	}
}

func TestConvert_RoundTripStaysClose(t *testing.T) {
	t.Parallel()
	rates := currency.DefaultRates()
	tolerance := dec("0.0010")

	for _, from := range rates.Supported() {
		for _, to := range rates.Supported() {
			original := dec("123.4567")
			there, err := rates.Convert(original, from, to)
			require.NoError(t, err)
			back, err := rates.Convert(there, to, from)
			require.NoError(t, err)
			assert.True(t, back.Sub(original).Abs().LessThanOrEqual(tolerance),
				"%s -> %s -> %s drifted to %s", from, to, from, back)
		}
	}
}

func TestConvert_UnsupportedCurrency(t *testing.T) {
	t.Parallel()
	rates := currency.DefaultRates()

	_, err := rates.Convert(dec("1"), currency.EUR, "CHF")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
	_, err = rates.Convert(dec("1"), "CHF", currency.EUR)
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
}

func TestNewRateTable(t *testing.T) {
	t.Parallel()

	source := map[currency.Code]decimal.Decimal{currency.EUR: dec("1"), currency.USD: dec("0.5")}
	rates, err := currency.NewRateTable(source)
	require.NoError(t, err)

	source[currency.GBP] = dec("2")
	assert.False(t, rates.Supports(currency.GBP), "table must not alias the caller's map")

	got, err := rates.Convert(dec("3"), currency.USD, currency.EUR)
	require.NoError(t, err)
	assert.Equal(t, "1.5000", got.StringFixed(4))

	_, err = currency.NewRateTable(map[currency.Code]decimal.Decimal{currency.EUR: decimal.Zero})
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, currency.USD, currency.Normalize(" usd "))
	assert.Equal(t, "GBP", currency.Normalize("gbp").String())
}
