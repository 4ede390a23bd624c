package payments

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned for amounts below MinAmount or with
	// fractions of a cent.
	ErrInvalidAmount = errors.New("amount must be at least 0.01 with at most two decimal places")
	// ErrMissingDetails is returned when a payment has no method payload.
	ErrMissingDetails = errors.New("payment details are required")
	// ErrStatusFinal is returned when a settled payment is processed again.
	ErrStatusFinal = errors.New("payment status is already final")
)

// ValidationError describes a structurally invalid method payload.
type ValidationError struct {
	Method  Method
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Method, e.Field, e.Message)
}

func invalid(m Method, field, msg string) *ValidationError {
	return &ValidationError{Method: m, Field: field, Message: msg}
}
