package provider

import (
	"context"
	"net/http"
)

// ExternalStatus is the verdict returned by the external system before a
// debit is allowed.
type ExternalStatus struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// OK reports whether the external system allowed the operation.
func (s *ExternalStatus) OK() bool {
	return s != nil && s.Code == http.StatusOK
}

// ExternalSystem is consulted once per debit.
type ExternalSystem interface {
	// Status performs a single check with no retries.
	Status(ctx context.Context) (*ExternalStatus, error)
}

// ExternalSystemFunc adapts a plain function to ExternalSystem.
type ExternalSystemFunc func(ctx context.Context) (*ExternalStatus, error)

// Status calls f(ctx).
func (f ExternalSystemFunc) Status(ctx context.Context) (*ExternalStatus, error) {
	return f(ctx)
}
