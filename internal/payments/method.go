package payments

import (
	"errors"
	"strings"
)

// Method identifies a payment method. The set is closed.
type Method string

// Supported payment methods
const (
	MethodCard         Method = "card"
	MethodPayPal       Method = "paypal"
	MethodBankTransfer Method = "bank_transfer"
	MethodPix          Method = "pix"
	MethodCrypto       Method = "crypto"
)

// Methods lists every supported method in display order.
var Methods = []Method{MethodCard, MethodPayPal, MethodBankTransfer, MethodPix, MethodCrypto}

// ErrUnknownMethod is returned when a method tag is outside the supported set.
var ErrUnknownMethod = errors.New("unknown payment method")

// ParseMethod parses a method tag case-insensitively.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", ErrUnknownMethod
	}
	return m, nil
}

// Valid reports whether m belongs to the supported set.
func (m Method) Valid() bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Method) String() string {
	return string(m)
}

// Status is the outcome of a payment.
type Status string

// Payment statuses
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// ParseStatus parses a status case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusApproved, StatusDeclined:
		return st, nil
	}
	return "", ErrUnknownStatus
}

// ErrUnknownStatus is returned when a status string is not recognized.
var ErrUnknownStatus = errors.New("unknown payment status")

// Final reports whether the status can no longer change.
func (s Status) Final() bool {
	return s == StatusApproved || s == StatusDeclined
}
