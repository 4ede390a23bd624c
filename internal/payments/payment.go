package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MinAmount is the smallest accepted amount. Amounts are whole cents.
var MinAmount = decimal.New(1, -2)

// Payment is a single payment attempt. Its status moves from pending to a
// final status exactly once.
type Payment struct {
	ID        uuid.UUID
	UserLogin string
	Amount    decimal.Decimal
	Details   Details
	CreatedAt time.Time

	status Status
}

// New creates a pending payment.
func New(amount decimal.Decimal, userLogin string, details Details, now time.Time) (*Payment, error) {
	if amount.LessThan(MinAmount) || !amount.Equal(amount.Truncate(2)) {
		return nil, ErrInvalidAmount
	}
	if details == nil {
		return nil, ErrMissingDetails
	}
	return &Payment{
		ID:        uuid.New(),
		UserLogin: userLogin,
		Amount:    amount,
		Details:   details,
		CreatedAt: now,
		status:    StatusPending,
	}, nil
}

// Method returns the payment method tag.
func (p *Payment) Method() Method {
	return p.Details.Method()
}

// Status returns the current status.
func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) settle(s Status) error {
	if p.status != StatusPending {
		return ErrStatusFinal
	}
	p.status = s
	return nil
}
