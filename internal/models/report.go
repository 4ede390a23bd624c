package models

import "github.com/shopspring/decimal"

// MethodTotal aggregates transactions of one payment method.
type MethodTotal struct {
	Method         string          `json:"method" db:"method"`
	Count          int64           `json:"count" db:"count"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	ApprovedCount  int64           `json:"approved_count" db:"approved_count"`
	ApprovedAmount decimal.Decimal `json:"approved_amount" db:"approved_amount"`
}

// Summary holds the dashboard metrics for a set of transactions.
type Summary struct {
	TotalCount     int64           `json:"total_count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ApprovedCount  int64           `json:"approved_count"`
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	DeclinedCount  int64           `json:"declined_count"`
	SuccessRate    float64         `json:"success_rate"` // percent of approved transactions
	TopMethod      string          `json:"top_method,omitempty"`
	ByMethod       []MethodTotal   `json:"by_method"`
}
