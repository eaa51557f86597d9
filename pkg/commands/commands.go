// Package commands contains command DTOs passed from the HTTP and CLI layers
// into the ledger service.
package commands

import (
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/shopspring/decimal"
)

// Deposit adds Amount of Currency to an account.
type Deposit struct {
	AccountID int64
	Amount    decimal.Decimal
	Currency  currency.Code
}

// Debit removes Amount of Currency from an account.
type Debit struct {
	AccountID int64
	Amount    decimal.Decimal
	Currency  currency.Code
}

// Exchange moves Amount of From into the account's To balance.
type Exchange struct {
	AccountID int64
	From      currency.Code
	To        currency.Code
	Amount    decimal.Decimal
}
