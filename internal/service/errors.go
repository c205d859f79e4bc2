package service

import (
	"errors"
	"fmt"
)

// Ledger error taxonomy. Validation errors (including not-found on
// update/delete and insufficient stock) are raised before or instead of a
// storage write and are always recoverable by the caller; storage errors are
// wrapped and propagated.
var (
	ErrValidation        = errors.New("invalid input")
	ErrProductNotFound   = errors.New("product not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// invalidf wraps a human-readable reason in ErrValidation so handlers can map
// the whole class to one status code.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
