package handlers

//go:generate mockgen -source=payment.go -destination=payment_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/middlewares"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"github.com/sbilibin2017/gw-payment-intake/internal/payments"
	"github.com/shopspring/decimal"
)

// Payer defines the interface that the payment service must implement.
type Payer interface {
	Pay(ctx context.Context, userLogin string, amount decimal.Decimal, details payments.Details) (*models.Transaction, error)
}

// CardRequest holds card fields
// swagger:model CardRequest
type CardRequest struct {
	// default: 4111111111111111
	Number string `json:"number"`
	// default: JOHN DOE
	Holder string `json:"holder"`
	// MM/YY or MM/YYYY
	// default: 12/30
	Expiry string `json:"expiry"`
	// default: 123
	CVV string `json:"cvv"`
}

// PayPalRequest holds PayPal fields
// swagger:model PayPalRequest
type PayPalRequest struct {
	// default: john@example.com
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BankTransferRequest holds bank transfer fields
// swagger:model BankTransferRequest
type BankTransferRequest struct {
	// default: ACME Bank
	Bank string `json:"bank"`
	// 8 digits
	// default: 12345678
	Source string `json:"source"`
	// 8 digits
	// default: 87654321
	Destination string `json:"destination"`
}

// PixRequest holds the Pix key
// swagger:model PixRequest
type PixRequest struct {
	// email, 11/14 digit id or random key of at least 8 characters
	// default: john@example.com
	Key string `json:"key"`
}

// CryptoRequest holds crypto wallet fields
// swagger:model CryptoRequest
type CryptoRequest struct {
	// default: 0x1234567890abcdef
	Wallet string `json:"wallet"`
	// BTC, ETH or USDT
	// default: BTC
	Coin string `json:"coin"`
}

// PaymentRequest represents the JSON body of a payment. Only the object
// matching method is read.
// swagger:model PaymentRequest
type PaymentRequest struct {
	// Payment method
	// required: true
	// enum: card,paypal,bank_transfer,pix,crypto
	Method string `json:"method"`

	// Amount, at least 0.01 with at most two decimal places
	// required: true
	// default: 10.50
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`

	Card         *CardRequest         `json:"card,omitempty"`
	PayPal       *PayPalRequest       `json:"paypal,omitempty"`
	BankTransfer *BankTransferRequest `json:"bank_transfer,omitempty"`
	Pix          *PixRequest          `json:"pix,omitempty"`
	Crypto       *CryptoRequest       `json:"crypto,omitempty"`
}

// PaymentValidationResponse is returned when the method fields are invalid.
// The payment is recorded as declined.
// swagger:model PaymentValidationResponse
type PaymentValidationResponse struct {
	Error       string              `json:"error"`
	Field       string              `json:"field"`
	Transaction *models.Transaction `json:"transaction"`
}

var errMissingDetails = errors.New("fields of the selected method are missing")

// details converts the request into the method payload. Sensitive fields are
// masked by the payments constructors.
func (req PaymentRequest) details() (payments.Details, error) {
	method, err := payments.ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}

	switch method {
	case payments.MethodCard:
		if req.Card == nil {
			return nil, errMissingDetails
		}
		return payments.NewCard(req.Card.Number, req.Card.Holder, req.Card.Expiry, req.Card.CVV), nil
	case payments.MethodPayPal:
		if req.PayPal == nil {
			return nil, errMissingDetails
		}
		return payments.NewPayPal(req.PayPal.Email, req.PayPal.Password), nil
	case payments.MethodBankTransfer:
		if req.BankTransfer == nil {
			return nil, errMissingDetails
		}
		return payments.BankTransfer{
			Bank:        req.BankTransfer.Bank,
			Source:      req.BankTransfer.Source,
			Destination: req.BankTransfer.Destination,
		}, nil
	case payments.MethodPix:
		if req.Pix == nil {
			return nil, errMissingDetails
		}
		return payments.Pix{Key: req.Pix.Key}, nil
	case payments.MethodCrypto:
		if req.Crypto == nil {
			return nil, errMissingDetails
		}
		return payments.NewCrypto(req.Crypto.Wallet, req.Crypto.Coin), nil
	}
	return nil, payments.ErrUnknownMethod
}

// NewPaymentHandler returns an HTTP handler submitting payments.
// @Summary Submit a payment
// @Description Validates the method fields, waits for the simulated acquirer and records the outcome.
// @Description A validation failure is recorded as declined and answered with 422.
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentRequest body handlers.PaymentRequest true "Payment request"
// @Success 201 {object} models.Transaction "Payment settled (approved or declined)"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.PaymentValidationResponse "Invalid method fields"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /payments [post]
// @Security BearerAuth
func NewPaymentHandler(svc Payer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := middlewares.ClaimsFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req PaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		details, err := req.details()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		txn, err := svc.Pay(ctx, claims.Login, req.Amount, details)
		if err != nil {
			var vErr *payments.ValidationError
			switch {
			case errors.As(err, &vErr):
				writeJSON(w, http.StatusUnprocessableEntity, PaymentValidationResponse{
					Error:       vErr.Error(),
					Field:       vErr.Field,
					Transaction: txn,
				})
			case errors.Is(err, payments.ErrInvalidAmount),
				errors.Is(err, payments.ErrMissingDetails):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, context.Canceled):
				logger.Log.Warnw("payment cancelled by client", "login", claims.Login)
			default:
				logger.Log.Errorw("failed to process payment", "login", claims.Login, "err", err)
				writeError(w, http.StatusInternalServerError, msgInternal)
			}
			return
		}

		writeJSON(w, http.StatusCreated, txn)
	}
}
