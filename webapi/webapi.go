// Package webapi provides the HTTP surface of the bank account ledger.
// It is organized into sub-packages:
// - account: account, balance and exchange endpoints
// - currency: supported currencies and rates
// - common: response envelope, problem details and validation
package webapi

import (
	"errors"
	"strings"

	_ "github.com/amirasaad/bankaccount/docs"
	"github.com/amirasaad/bankaccount/pkg/app"
	accountweb "github.com/amirasaad/bankaccount/webapi/account"
	"github.com/amirasaad/bankaccount/webapi/common"
	currencyweb "github.com/amirasaad/bankaccount/webapi/currency"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// clientKey identifies the caller for rate limiting: first X-Forwarded-For
// hop, then X-Real-IP, then the peer address.
func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get(fiber.HeaderXForwardedFor); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}

// SetupApp builds the Fiber app with middleware and all routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "bankaccount",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Request failed", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	fiberApp.Use(limiter.New(limiter.Config{
		Max:          a.Config.RateLimit.MaxRequests,
		Expiration:   a.Config.RateLimit.Window,
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				"Rate limit exceeded",
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	if a.Config.Env != "test" {
		fiberApp.Use(logger.New())
	}

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bank Account API is running")
	})

	accountweb.Routes(fiberApp, a.AccountService)
	currencyweb.Routes(fiberApp, a.AccountService.Rates())
	return fiberApp
}
