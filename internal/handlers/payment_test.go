package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-intake/internal/jwt"
	"github.com/sbilibin2017/gw-payment-intake/internal/middlewares"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"github.com/sbilibin2017/gw-payment-intake/internal/payments"
	"github.com/sbilibin2017/gw-payment-intake/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withUser(r *http.Request, login string, role models.Role) *http.Request {
	return r.WithContext(middlewares.WithClaims(r.Context(), &jwt.Claims{Login: login, Role: role}))
}

func TestPaymentRequest_Details(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    payments.Details
		wantErr bool
	}{
		{
			name: "card is masked",
			body: `{"method":"card","amount":"1","card":{"number":"4111111111111111","holder":"JOHN","expiry":"12/30","cvv":"123"}}`,
			want: payments.Card{Number: "************1111", Holder: "JOHN", Expiry: "12/30", CVV: "***"},
		},
		{
			name: "paypal password is masked",
			body: `{"method":"PayPal","amount":"1","paypal":{"email":"a@b.co","password":"hunter2"}}`,
			want: payments.PayPal{Email: "a@b.co", Password: "*******"},
		},
		{
			name: "bank transfer",
			body: `{"method":"bank_transfer","amount":"1","bank_transfer":{"bank":"ACME","source":"12345678","destination":"87654321"}}`,
			want: payments.BankTransfer{Bank: "ACME", Source: "12345678", Destination: "87654321"},
		},
		{
			name: "pix",
			body: `{"method":"pix","amount":"1","pix":{"key":"12345678901"}}`,
			want: payments.Pix{Key: "12345678901"},
		},
		{
			name: "crypto coin upper-cased",
			body: `{"method":"crypto","amount":"1","crypto":{"wallet":"0x1234567890","coin":"btc"}}`,
			want: payments.Crypto{Wallet: "0x1234567890", Coin: "BTC"},
		},
		{
			name:    "unknown method",
			body:    `{"method":"cheque","amount":"1"}`,
			wantErr: true,
		},
		{
			name:    "missing method object",
			body:    `{"method":"card","amount":"1","pix":{"key":"12345678901"}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req PaymentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			got, err := req.details()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txn := &models.Transaction{
		ID:        uuid.New(),
		UserLogin: "alice",
		Method:    "pix",
		Amount:    decimal.RequireFromString("10.5"),
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Status:    "approved",
	}
	declined := *txn
	declined.Status = "declined"

	pixBody := `{"method":"pix","amount":"10.50","pix":{"key":"random-key"}}`

	tests := []struct {
		name         string
		body         string
		anonymous    bool
		mockSetup    func(m *MockPayer)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "approved",
			body: pixBody,
			mockSetup: func(m *MockPayer) {
				m.EXPECT().
					Pay(gomock.Any(), "alice", gomock.Any(), payments.Pix{Key: "random-key"}).
					DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal, _ payments.Details) (*models.Transaction, error) {
						assert.True(t, amount.Equal(decimal.RequireFromString("10.5")))
						return txn, nil
					})
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, body []byte) {
				var got models.Transaction
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, txn.ID, got.ID)
				assert.Equal(t, "approved", got.Status)
			},
		},
		{
			name: "validation failure",
			body: pixBody,
			mockSetup: func(m *MockPayer) {
				m.EXPECT().
					Pay(gomock.Any(), "alice", gomock.Any(), gomock.Any()).
					Return(&declined, &payments.ValidationError{Method: payments.MethodPix, Field: "key", Message: "bad"})
			},
			expectedCode: http.StatusUnprocessableEntity,
			check: func(t *testing.T, body []byte) {
				var got PaymentValidationResponse
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "key", got.Field)
				require.NotNil(t, got.Transaction)
				assert.Equal(t, "declined", got.Transaction.Status)
			},
		},
		{
			name: "non-positive amount",
			body: `{"method":"pix","amount":"-1","pix":{"key":"random-key"}}`,
			mockSetup: func(m *MockPayer) {
				m.EXPECT().
					Pay(gomock.Any(), "alice", gomock.Any(), gomock.Any()).
					Return(nil, payments.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "service failure",
			body: pixBody,
			mockSetup: func(m *MockPayer) {
				m.EXPECT().
					Pay(gomock.Any(), "alice", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "unknown method",
			body:         `{"method":"cheque","amount":"1"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no claims",
			body:         pixBody,
			anonymous:    true,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPayer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(tt.body))
			if !tt.anonymous {
				req = withUser(req, "alice", models.RoleNormal)
			}
			rr := httptest.NewRecorder()

			NewPaymentHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				tt.check(t, rr.Body.Bytes())
			}
		})
	}
}

func TestPaymentHandler_FractionalCentsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: nothing may be stored
	store := services.NewMockTransactionWriter(ctrl)
	processor := payments.NewProcessor(payments.WithDelay(0), payments.WithDecider(payments.Always(true)))
	svc := services.NewPaymentService(processor, store, nil, nil, nil)

	for _, amount := range []string{"0.001", "0.00000001", "12.345"} {
		t.Run(amount, func(t *testing.T) {
			body := `{"method":"pix","amount":"` + amount + `","pix":{"key":"random-key"}}`
			req := withUser(httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body)), "alice", models.RoleNormal)
			rr := httptest.NewRecorder()

			NewPaymentHandler(svc)(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var got ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, payments.ErrInvalidAmount.Error(), got.Error)
		})
	}
}
