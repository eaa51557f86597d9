package mocks

import (
	"context"

	"github.com/amirasaad/bankaccount/pkg/provider"
)

// StaticStatus returns an external system that always answers with code and
// description.
func StaticStatus(code int, description string) provider.ExternalSystem {
	return provider.ExternalSystemFunc(func(context.Context) (*provider.ExternalStatus, error) {
		return &provider.ExternalStatus{Code: code, Description: description}, nil
	})
}
