package account

import (
	"strconv"

	"github.com/amirasaad/bankaccount/pkg/commands"
	"github.com/amirasaad/bankaccount/pkg/currency"
	accountsvc "github.com/amirasaad/bankaccount/pkg/service/account"
	"github.com/amirasaad/bankaccount/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the bank account endpoints under /api/v1/bankaccount.
//
// Routes:
//   - POST /api/v1/bankaccount               : Open an account.
//   - POST /api/v1/bankaccount/:id/deposit   : Credit a currency balance.
//   - POST /api/v1/bankaccount/:id/debit     : Debit a currency balance.
//   - GET  /api/v1/bankaccount/:id           : List balances.
//   - POST /api/v1/bankaccount/:id/currency  : Exchange between two balances.
func Routes(app *fiber.App, accountSvc *accountsvc.Service) {
	group := app.Group("/api/v1/bankaccount")
	group.Post("/", CreateAccount(accountSvc))
	group.Post("/:id/deposit", Deposit(accountSvc))
	group.Post("/:id/debit", Debit(accountSvc))
	group.Get("/:id", GetBalances(accountSvc))
	group.Post("/:id/currency", Exchange(accountSvc))
}

func parseAccountID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		log.Errorf("Invalid account ID %q", c.Params("id"))
		return 0, common.ProblemDetailsJSON(
			c, "Invalid account ID", err,
			"Account ID must be a positive integer", fiber.StatusBadRequest,
		)
	}
	return id, nil
}

// CreateAccount returns a Fiber handler that opens a new account with no balances.
// @Summary Create a bank account
// @Description Opens an account for the given holder name.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account holder"
// @Success 201 {object} common.Response{data=AccountResponse} "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/bankaccount [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.CreateAccount(c.Context(), input.Name)
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		log.Infof("Account created: %d", a.ID)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created",
			AccountResponse{ID: a.ID, Name: a.Name})
	}
}

// Deposit returns a Fiber handler that credits the given currency balance.
// @Summary Deposit funds
// @Description Credits amount to the currency balance, creating the balance on first use.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body MoneyRequest true "Deposit details"
// @Success 200 {object} common.Response "Deposit successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/bankaccount/{id}/deposit [post]
func Deposit(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == 0 {
			return err
		}
		input, err := common.BindAndValidate[MoneyRequest](c)
		if input == nil {
			return err
		}
		err = accountSvc.Deposit(c.Context(), commands.Deposit{
			AccountID: id,
			Amount:    input.Amount,
			Currency:  currency.Normalize(input.Currency),
		})
		if err != nil {
			log.Errorf("Failed to deposit into account %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", nil)
	}
}

// Debit returns a Fiber handler that debits the given currency balance once
// the external system allows it.
// @Summary Debit funds
// @Description Debits amount from an existing currency balance after the external system check.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body MoneyRequest true "Debit details"
// @Success 200 {object} common.Response "Debit successful"
// @Failure 400 {object} common.ProblemDetails "Insufficient funds or invalid request"
// @Failure 404 {object} common.ProblemDetails "Account or currency not found"
// @Failure 503 {object} common.ProblemDetails "External system unavailable"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/bankaccount/{id}/debit [post]
func Debit(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == 0 {
			return err
		}
		input, err := common.BindAndValidate[MoneyRequest](c)
		if input == nil {
			return err
		}
		err = accountSvc.Debit(c.Context(), commands.Debit{
			AccountID: id,
			Amount:    input.Amount,
			Currency:  currency.Normalize(input.Currency),
		})
		if err != nil {
			log.Errorf("Failed to debit account %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to debit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Debit successful", nil)
	}
}

// GetBalances returns a Fiber handler listing every balance of an account.
// @Summary Get balances
// @Description Lists the account's balances; amounts are strings with four decimal places.
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} common.Response{data=[]BalanceResponse} "Balances fetched"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/bankaccount/{id} [get]
func GetBalances(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == 0 {
			return err
		}
		balances, err := accountSvc.GetBalances(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to get balances of account %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to get balances", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balances fetched", toBalanceResponses(balances))
	}
}

// Exchange returns a Fiber handler that converts funds between two balances.
// @Summary Exchange currency
// @Description Debits amount from fromCurrency and credits the converted value to toCurrency.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body ExchangeRequest true "Exchange details"
// @Success 200 {object} common.Response "Exchange successful"
// @Failure 400 {object} common.ProblemDetails "Insufficient funds, unsupported currency or invalid request"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/v1/bankaccount/{id}/currency [post]
func Exchange(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if id == 0 {
			return err
		}
		input, err := common.BindAndValidate[ExchangeRequest](c)
		if input == nil {
			return err
		}
		err = accountSvc.Exchange(c.Context(), commands.Exchange{
			AccountID: id,
			From:      currency.Normalize(input.FromCurrency),
			To:        currency.Normalize(input.ToCurrency),
			Amount:    input.Amount,
		})
		if err != nil {
			log.Errorf("Failed to exchange on account %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to exchange", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Exchange successful", nil)
	}
}
