package payments

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestCard_Validate(t *testing.T) {
	tests := []struct {
		name      string
		expiry    string
		cvv       string
		wantField string
	}{
		{name: "future expiry", expiry: "12/30", cvv: "123"},
		{name: "four digit year", expiry: "12/2030", cvv: "1234"},
		{name: "expires end of current month", expiry: "06/25", cvv: "123"},
		{name: "invalid month", expiry: "13/25", cvv: "123", wantField: "expiry"},
		{name: "zero month", expiry: "00/30", cvv: "123", wantField: "expiry"},
		{name: "past expiry", expiry: "05/25", cvv: "123", wantField: "expiry"},
		{name: "long past expiry", expiry: "01/2020", cvv: "123", wantField: "expiry"},
		{name: "no separator", expiry: "1230", cvv: "123", wantField: "expiry"},
		{name: "three digit year", expiry: "12/030", cvv: "123", wantField: "expiry"},
		{name: "letters", expiry: "ab/cd", cvv: "123", wantField: "expiry"},
		{name: "short cvv", expiry: "12/30", cvv: "12", wantField: "cvv"},
		{name: "long cvv", expiry: "12/30", cvv: "12345", wantField: "cvv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := NewCard("4111 1111 1111 1111", "Jane Doe", tt.expiry, tt.cvv)
			err := card.Validate(fixedNow)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
			assert.Equal(t, MethodCard, vErr.Method)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestNewCard_MasksSensitiveFields(t *testing.T) {
	card := NewCard("4111111111111111", "Jane Doe", "12/30", "123")

	assert.Equal(t, "************1111", card.Number)
	assert.Equal(t, "***", card.CVV)
	assert.Equal(t, "Jane Doe", card.Holder)
}

func TestPayPal_Validate(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{email: "john@example.com"},
		{email: "first.last@mail.example.org"},
		{email: "john@example", wantErr: true},
		{email: "john.example.com", wantErr: true},
		{email: "john@@example.com", wantErr: true},
		{email: "jo hn@example.com", wantErr: true},
		{email: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			p := NewPayPal(tt.email, "secret")
			err := p.Validate(fixedNow)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "******", p.Password)
		})
	}
}

func TestBankTransfer_Validate(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		destination string
		wantField   string
	}{
		{name: "valid", source: "12345678", destination: "87654321"},
		{name: "seven digit source", source: "1234567", destination: "87654321", wantField: "source"},
		{name: "nine digit source", source: "123456789", destination: "87654321", wantField: "source"},
		{name: "letters in destination", source: "12345678", destination: "8765432a", wantField: "destination"},
		{name: "empty destination", source: "12345678", destination: "", wantField: "destination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BankTransfer{Bank: "001", Source: tt.source, Destination: tt.destination}.Validate(fixedNow)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestPix_Validate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "email key", key: "pix@example.com"},
		{name: "malformed email key", key: "pix@example", wantErr: true},
		{name: "personal id", key: "12345678901"},
		{name: "business id", key: "12345678000199"},
		{name: "random key", key: "a1b2c3d4"},
		{name: "short digits", key: "1234567", wantErr: true},
		{name: "short random", key: "abc", wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Pix{Key: tt.key}.Validate(fixedNow)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCrypto_Validate(t *testing.T) {
	tests := []struct {
		name      string
		wallet    string
		coin      string
		wantField string
	}{
		{name: "btc upper", wallet: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", coin: "BTC"},
		{name: "btc lower", wallet: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", coin: "btc"},
		{name: "eth", wallet: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", coin: "Eth"},
		{name: "usdt minimal wallet", wallet: "0123456789", coin: "usdt"},
		{name: "unsupported coin", wallet: "0123456789", coin: "doge", wantField: "coin"},
		{name: "short wallet", wallet: "012345678", coin: "BTC", wantField: "wallet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCrypto(tt.wallet, tt.coin)
			err := c.Validate(fixedNow)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "****5678", Mask("12345678", 4))
	assert.Equal(t, "123", Mask("123", 4))
	assert.Equal(t, "****", Mask("abcd", 0))
	assert.Equal(t, "", Mask("", 0))
	assert.Equal(t, "**ões", Mask("ações", 3))
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod(" PayPal ")
	assert.NoError(t, err)
	assert.Equal(t, MethodPayPal, m)

	_, err = ParseMethod("cheque")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}
