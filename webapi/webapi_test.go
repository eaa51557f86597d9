package webapi_test

import (
	"io"
	"testing"

	"github.com/amirasaad/bankaccount/internal/fixtures/mocks"
	"github.com/amirasaad/bankaccount/webapi"
	webcurrency "github.com/amirasaad/bankaccount/webapi/currency"
	"github.com/amirasaad/bankaccount/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	return webapi.SetupApp(testutils.NewApp(testutils.TestConfig(), mocks.StaticStatus(200, "OK")))
}

func TestHealth(t *testing.T) {
	resp := testutils.MakeRequest(newTestApp(), fiber.MethodGet, "/", "")
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bank Account API is running", string(body))
}

func TestListCurrencies(t *testing.T) {
	resp := testutils.MakeRequest(newTestApp(), fiber.MethodGet, "/api/v1/currencies", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rates []webcurrency.RateResponse
	testutils.DecodeEnvelope(t, resp, &rates)
	assert.Equal(t, []webcurrency.RateResponse{
		{Code: "EUR", RateToEUR: "1"},
		{Code: "GBP", RateToEUR: "1.15"},
		{Code: "SEK", RateToEUR: "0.094"},
		{Code: "USD", RateToEUR: "0.85"},
	}, rates)
}

func TestUnknownRouteRendersProblem(t *testing.T) {
	resp := testutils.MakeRequest(newTestApp(), fiber.MethodGet, "/nope", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
	problem := testutils.DecodeProblem(t, resp)
	assert.Equal(t, fiber.StatusNotFound, problem.Status)
}

func TestSwaggerDocServed(t *testing.T) {
	resp := testutils.MakeRequest(newTestApp(), fiber.MethodGet, "/swagger/doc.json", "")
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "/api/v1/bankaccount/{id}/debit")
}
