package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/pkg/provider"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const statusPath = "/200"

// ExternalSystemClient asks the external status service whether a debit may
// proceed. Checks that overlap in time share one HTTP round trip; nothing is
// cached once the round trip completes.
type ExternalSystemClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	group      singleflight.Group
}

// NewExternalSystemClient creates a client for cfg.URL with cfg.Timeout
// applied to every request.
func NewExternalSystemClient(cfg *config.ExternalSystem, logger *slog.Logger) *ExternalSystemClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExternalSystemClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("component", "external_system"),
	}
}

// Status implements provider.ExternalSystem.
func (c *ExternalSystemClient) Status(ctx context.Context) (*provider.ExternalStatus, error) {
	ch := c.group.DoChan(statusPath, func() (any, error) {
		// The shared call outlives any single caller's cancellation.
		return c.fetch(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*provider.ExternalStatus), nil
	}
}

func (c *ExternalSystemClient) fetch(ctx context.Context) (*provider.ExternalStatus, error) {
	url := c.baseURL + statusPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("External system unreachable", "url", url, "error", err)
		return nil, fmt.Errorf("failed to reach external system: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read external system response: %w", err)
	}

	var status provider.ExternalStatus
	if resp.StatusCode != http.StatusOK {
		// Error bodies are best effort; the HTTP status is authoritative.
		_ = json.Unmarshal(body, &status)
		status.Code = resp.StatusCode
		if status.Description == "" {
			status.Description = http.StatusText(resp.StatusCode)
		}
		c.logger.Warn("External system refused", "code", status.Code, "description", status.Description)
		return &status, nil
	}

	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("failed to decode external system response: %w", err)
	}
	c.logger.Debug("External system responded", "code", status.Code, "description", status.Description)
	return &status, nil
}
