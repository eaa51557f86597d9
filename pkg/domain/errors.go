package domain

import (
	"errors"
	"fmt"
)

// Store-level errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
)

// Ledger errors
var (
	ErrAccountNotFound           = errors.New("account not found")
	ErrCurrencyNotFound          = errors.New("currency not found")
	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrUnsupportedCurrency       = errors.New("unsupported currency")
	ErrExternalSystemUnavailable = errors.New("external system unavailable")
	// ErrBadRequest covers malformed input: non-positive amounts, blank names.
	ErrBadRequest = errors.New("bad request")
)

// ExternalSystemError carries the external system's own description of why
// a debit was refused. It matches ErrExternalSystemUnavailable with errors.Is.
type ExternalSystemError struct {
	Code        int
	Description string
	Err         error
}

func (e *ExternalSystemError) Error() string {
	if e.Description == "" {
		return ErrExternalSystemUnavailable.Error()
	}
	return fmt.Sprintf("%s: %s", ErrExternalSystemUnavailable, e.Description)
}

func (e *ExternalSystemError) Is(target error) bool {
	return target == ErrExternalSystemUnavailable
}

func (e *ExternalSystemError) Unwrap() error {
	return e.Err
}
