package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a settled payment as stored, exported and published.
type Transaction struct {
	ID        uuid.UUID       `json:"id" db:"id"`                           // Unique transaction identifier
	UserLogin string          `json:"user_login,omitempty" db:"user_login"` // Owner login, empty for anonymous payments
	Method    string          `json:"method" db:"method"`                   // Payment method tag
	Amount    decimal.Decimal `json:"amount" db:"amount"`                   // Positive amount
	CreatedAt time.Time       `json:"created_at" db:"created_at"`           // Submission time
	Status    string          `json:"status" db:"status"`                   // approved or declined
}

// TransactionFilter narrows history, summary and export queries.
// Zero values mean "no constraint".
type TransactionFilter struct {
	UserLogin string
	Method    string
	Status    string
	From      *time.Time
	To        *time.Time
}
