// Package money holds the rounding rules shared by every balance mutation.
//
// Invariants:
//   - Persisted amounts carry exactly Scale fractional digits.
//   - Rounding is half-up (away from zero on a tie).
package money

import (
	"fmt"
	"strings"

	"github.com/amirasaad/bankaccount/pkg/domain"
	"github.com/shopspring/decimal"
)

const (
	// Scale is the number of fractional digits kept on stored amounts.
	Scale int32 = 4
	// ConversionScale is the precision of the intermediate division in a
	// currency conversion, before the result is brought back to Scale.
	ConversionScale int32 = 8
)

// Round brings d to Scale fractional digits, half-up.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// IsPositive reports whether d is strictly greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.Sign() > 0
}

// Format renders d with exactly Scale fractional digits ("70.0000").
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// Parse reads a decimal amount from user input.
// Malformed input is reported as domain.ErrBadRequest.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", domain.ErrBadRequest, s)
	}
	return d, nil
}

// RequirePositive returns domain.ErrBadRequest unless amount > 0.
func RequirePositive(amount decimal.Decimal) error {
	if !IsPositive(amount) {
		return fmt.Errorf("%w: amount must be positive, got %s", domain.ErrBadRequest, amount.String())
	}
	return nil
}
