package dto

import (
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/shopspring/decimal"
)

// BalanceRead is the read model returned by balance queries.
type BalanceRead struct {
	Amount   decimal.Decimal
	Currency currency.Code
}
