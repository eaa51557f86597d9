package currency

import (
	"fmt"
	"sort"

	"github.com/amirasaad/bankaccount/pkg/domain"
	"github.com/amirasaad/bankaccount/pkg/money"
	"github.com/shopspring/decimal"
)

// RateTable maps each supported currency to its value in EUR
// ("1 unit = factor EUR"). A RateTable is built once and never mutated;
// all conversions pivot through EUR.
type RateTable struct {
	toEUR map[Code]decimal.Decimal
}

// DefaultRates returns the fixed table used in production.
func DefaultRates() RateTable {
	return RateTable{toEUR: map[Code]decimal.Decimal{
		EUR: decimal.NewFromInt(1),
		USD: decimal.RequireFromString("0.85"),
		SEK: decimal.RequireFromString("0.094"),
		GBP: decimal.RequireFromString("1.15"),
	}}
}

// NewRateTable builds a table from the given factors. Every factor must be
// strictly positive.
func NewRateTable(rates map[Code]decimal.Decimal) (RateTable, error) {
	toEUR := make(map[Code]decimal.Decimal, len(rates))
	for code, factor := range rates {
		if !factor.IsPositive() {
			return RateTable{}, fmt.Errorf("rate for %s must be positive, got %s", code, factor)
		}
		toEUR[code] = factor
	}
	return RateTable{toEUR: toEUR}, nil
}

// Rate returns the EUR factor of code.
func (t RateTable) Rate(code Code) (decimal.Decimal, error) {
	factor, ok := t.toEUR[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, code)
	}
	return factor, nil
}

// Supports reports whether code has a rate.
func (t RateTable) Supports(code Code) bool {
	_, ok := t.toEUR[code]
	return ok
}

// Supported lists the known codes in alphabetical order.
func (t RateTable) Supported() []Code {
	codes := make([]Code, 0, len(t.toEUR))
	for code := range t.toEUR {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Convert turns amount of from into to. The EUR intermediate is unrounded,
// the division keeps money.ConversionScale digits and the result is brought
// back to money.Scale.
func (t RateTable) Convert(amount decimal.Decimal, from, to Code) (decimal.Decimal, error) {
	fromRate, err := t.Rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := t.Rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	eur := amount.Mul(fromRate)
	return money.Round(eur.DivRound(toRate, money.ConversionScale)), nil
}
