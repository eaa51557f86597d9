// Package common holds the response envelope, problem details rendering and
// request validation shared by the HTTP handlers.
package common

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/amirasaad/bankaccount/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const (
	internalErrorDetail = "Internal server error"
	problemJSON         = "application/problem+json"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusBadRequest
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrCurrencyNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrUnsupportedCurrency),
		errors.Is(err, domain.ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrExternalSystemUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// ProblemDetailsJSON writes an application/problem+json response for err.
// A string in opts overrides the detail and an int overrides the status.
// 500 responses never expose err's text.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, opts ...any) error {
	status := ErrorToStatusCode(err)
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	var ext *domain.ExternalSystemError
	if errors.As(err, &ext) {
		detail = ext.Description
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		detail = fe.Message
	}

	var overridden bool
	for _, opt := range opts {
		switch v := opt.(type) {
		case string:
			detail = v
			overridden = true
		case int:
			status = v
		}
	}
	if status == fiber.StatusInternalServerError && !overridden {
		detail = internalErrorDetail
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	return c.Status(status).JSON(pd, problemJSON)
}

// SuccessResponseJSON writes the standard envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// decimal fields reach validators as their exact string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("decimalgte", decimalGTE); err != nil {
		panic(err)
	}
	return v
}

// decimalGTE compares a decimal field with the tag parameter exactly.
func decimalGTE(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	limit, err := decimal.NewFromString(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("decimalgte: bad parameter %q", fl.Param()))
	}
	return value.GreaterThanOrEqual(limit)
}

// BindAndValidate parses the request body into T and validates it.
// On failure the problem response is already written and nil is returned.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, "Request body could not be parsed", fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return nil, c.Status(fiber.StatusBadRequest).JSON(ProblemDetails{
				Type:     "about:blank",
				Title:    "Validation failed",
				Status:   fiber.StatusBadRequest,
				Detail:   err.Error(),
				Instance: c.OriginalURL(),
				Errors:   fields,
			}, problemJSON)
		}
		return nil, ProblemDetailsJSON(c, "Validation failed", err, err.Error(), fiber.StatusBadRequest)
	}
	return &input, nil
}
