// Package testutils builds in-process HTTP apps for handler tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/bankaccount/infra/repository/memory"
	"github.com/amirasaad/bankaccount/pkg/app"
	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/provider"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors common.Response with the payload left undecoded.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Problem mirrors common.ProblemDetails.
type Problem struct {
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors"`
}

// TestConfig returns a config with a generous rate limit and the memory store.
func TestConfig() *config.App {
	return &config.App{
		Env:            "test",
		Server:         &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:            &config.Log{Format: "text"},
		DB:             &config.DB{Driver: config.DriverMemory},
		ExternalSystem: &config.ExternalSystem{Timeout: time.Second},
		RateLimit:      &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}
}

// NewApp builds an app backed by a fresh in-memory store. external decides
// every debit; pass mocks.StaticStatus(200, "OK") to allow them all.
func NewApp(cfg *config.App, external provider.ExternalSystem) *app.App {
	return app.New(&app.Deps{
		Uow:            memory.NewUoW(),
		Rates:          currency.DefaultRates(),
		ExternalSystem: external,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, cfg)
}

// MakeRequest is a helper for making HTTP requests in tests.
func MakeRequest(app *fiber.App, method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// DecodeEnvelope reads a success body and unmarshals its data into out.
func DecodeEnvelope(t *testing.T, resp *http.Response, out any) Envelope {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

// DecodeProblem reads a problem details body.
func DecodeProblem(t *testing.T, resp *http.Response) Problem {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var p Problem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	return p
}

// MakeRequestFrom sends a body-less request carrying an X-Forwarded-For header.
func MakeRequestFrom(app *fiber.App, method, path, forwardedFor string) *http.Response {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(fiber.HeaderXForwardedFor, forwardedFor)
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}
