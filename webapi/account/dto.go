package account

import (
	"github.com/amirasaad/bankaccount/pkg/dto"
	"github.com/amirasaad/bankaccount/pkg/money"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest represents the request body for opening an account.
type CreateAccountRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

// MoneyRequest is the body of deposit and debit requests.
type MoneyRequest struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" validate:"required,decimalgte=0.01"`
	Currency string          `json:"currency" validate:"required,len=3,alpha,uppercase"`
}

// ExchangeRequest moves value between two balances of the same account.
type ExchangeRequest struct {
	FromCurrency string          `json:"fromCurrency" validate:"required,len=3,alpha,uppercase"`
	ToCurrency   string          `json:"toCurrency" validate:"required,len=3,alpha,uppercase"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"number" validate:"required,decimalgte=0.01"`
}

// AccountResponse is returned when an account is created.
type AccountResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BalanceResponse renders one currency balance with four decimal places.
type BalanceResponse struct {
	Balance  string `json:"balance" example:"100.0000"`
	Currency string `json:"currency" example:"EUR"`
}

func toBalanceResponses(balances []dto.BalanceRead) []BalanceResponse {
	out := make([]BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, BalanceResponse{
			Balance:  money.Format(b.Amount),
			Currency: b.Currency.String(),
		})
	}
	return out
}
