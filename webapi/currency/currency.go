package currency

import (
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/gofiber/fiber/v2"

	"github.com/amirasaad/bankaccount/webapi/common"
)

// Routes registers the read-only currency endpoints.
func Routes(app *fiber.App, rates currency.RateTable) {
	app.Get("/api/v1/currencies", ListCurrencies(rates))
}

// ListCurrencies returns a Fiber handler listing the supported currencies.
// @Summary List supported currencies
// @Description Lists every currency the ledger accepts with its fixed rate to EUR.
// @Tags currencies
// @Produce json
// @Success 200 {object} common.Response{data=[]RateResponse}
// @Failure 429 {object} common.ProblemDetails
// @Router /api/v1/currencies [get]
func ListCurrencies(rates currency.RateTable) fiber.Handler {
	return func(c *fiber.Ctx) error {
		codes := rates.Supported()
		out := make([]RateResponse, 0, len(codes))
		for _, code := range codes {
			rate, err := rates.Rate(code)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Failed to list currencies", err)
			}
			out = append(out, RateResponse{Code: code.String(), RateToEUR: rate.String()})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", out)
	}
}
