package currency

import (
	"strings"
)

// Code represents a currency code (e.g., "USD", "EUR")
type Code string

const (
	EUR Code = "EUR"
	USD Code = "USD"
	SEK Code = "SEK"
	GBP Code = "GBP"
)

// Normalize trims and upper-cases user input into a Code.
// It does not check that the code is supported; see RateTable.Supports.
func Normalize(s string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(s)))
}

// String returns the code as a string
func (c Code) String() string {
	return string(c)
}
