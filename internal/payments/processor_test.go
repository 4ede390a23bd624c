package payments

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T, details Details) *Payment {
	t.Helper()
	p, err := New(decimal.RequireFromString("10.50"), "alice", details, fixedNow)
	require.NoError(t, err)
	return p
}

func fixedClock() time.Time { return fixedNow }

func TestNew(t *testing.T) {
	_, err := New(decimal.Zero, "alice", Pix{Key: "abcdefgh"}, fixedNow)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = New(decimal.NewFromInt(-5), "alice", Pix{Key: "abcdefgh"}, fixedNow)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	for _, amount := range []string{"0.001", "0.009", "0.00000001", "10.505"} {
		_, err = New(decimal.RequireFromString(amount), "alice", Pix{Key: "abcdefgh"}, fixedNow)
		assert.ErrorIs(t, err, ErrInvalidAmount, amount)
	}

	for _, amount := range []string{"0.01", "10.5", "10.500", "7"} {
		_, err = New(decimal.RequireFromString(amount), "alice", Pix{Key: "abcdefgh"}, fixedNow)
		assert.NoError(t, err, amount)
	}

	_, err = New(decimal.NewFromInt(5), "alice", nil, fixedNow)
	assert.ErrorIs(t, err, ErrMissingDetails)

	p, err := New(decimal.NewFromInt(5), "", Pix{Key: "abcdefgh"}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, p.Status())
	assert.Equal(t, MethodPix, p.Method())
	assert.NotEmpty(t, p.ID)
}

func TestProcessor_InvalidPayloadSkipsDecider(t *testing.T) {
	invalidPayloads := []Details{
		NewCard("4111111111111111", "Jane", "13/25", "123"),
		NewCard("4111111111111111", "Jane", "01/20", "123"),
		NewPayPal("not-an-email", "pw"),
		BankTransfer{Source: "1234567", Destination: "12345678"},
		Pix{Key: "short"},
		NewCrypto("0123456789", "doge"),
	}

	for _, details := range invalidPayloads {
		t.Run(string(details.Method()), func(t *testing.T) {
			called := false
			pr := NewProcessor(
				WithDelay(0),
				WithClock(fixedClock),
				WithDecider(func(context.Context, *Payment) bool {
					called = true
					return true
				}),
			)

			p := newTestPayment(t, details)
			err := pr.Process(context.Background(), p)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.False(t, called, "decider must not run for invalid payloads")
			assert.Equal(t, StatusDeclined, p.Status())
		})
	}
}

func TestProcessor_UsesDecider(t *testing.T) {
	for _, approve := range []bool{true, false} {
		pr := NewProcessor(WithDelay(0), WithClock(fixedClock), WithDecider(Always(approve)))
		p := newTestPayment(t, NewCrypto("0123456789", "btc"))

		require.NoError(t, pr.Process(context.Background(), p))
		if approve {
			assert.Equal(t, StatusApproved, p.Status())
		} else {
			assert.Equal(t, StatusDeclined, p.Status())
		}
	}
}

func TestProcessor_StatusIsFinal(t *testing.T) {
	pr := NewProcessor(WithDelay(0), WithClock(fixedClock), WithDecider(Always(true)))
	p := newTestPayment(t, BankTransfer{Source: "12345678", Destination: "87654321"})

	require.NoError(t, pr.Process(context.Background(), p))
	assert.Equal(t, StatusApproved, p.Status())

	pr = NewProcessor(WithDelay(0), WithClock(fixedClock), WithDecider(Always(false)))
	err := pr.Process(context.Background(), p)
	assert.ErrorIs(t, err, ErrStatusFinal)
	assert.Equal(t, StatusApproved, p.Status())
}

func TestProcessor_CancelDuringDelay(t *testing.T) {
	pr := NewProcessor(WithDelay(time.Minute), WithClock(fixedClock), WithDecider(Always(true)))
	p := newTestPayment(t, Pix{Key: "12345678901"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pr.Process(ctx, p)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusPending, p.Status())
}

func TestProcessor_DelayElapses(t *testing.T) {
	pr := NewProcessor(WithDelay(20*time.Millisecond), WithClock(fixedClock), WithDecider(Always(true)))
	p := newTestPayment(t, Pix{Key: "12345678901"})

	start := time.Now()
	require.NoError(t, pr.Process(context.Background(), p))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, StatusApproved, p.Status())
}

func TestWeightedDecider_ApprovalRate(t *testing.T) {
	const n = 20000
	decide := WeightedDecider(rand.New(rand.NewPCG(1, 2)), DefaultApprovePercent)
	pr := NewProcessor(WithDelay(0), WithClock(fixedClock), WithDecider(decide))

	approved := 0
	for i := 0; i < n; i++ {
		p := newTestPayment(t, NewCrypto("0123456789", "ETH"))
		require.NoError(t, pr.Process(context.Background(), p))
		if p.Status() == StatusApproved {
			approved++
		}
	}

	rate := float64(approved) / n
	assert.InDelta(t, 0.80, rate, 0.02)
}

func TestWeightedDecider_GlobalSource(t *testing.T) {
	always := WeightedDecider(nil, 100)
	never := WeightedDecider(nil, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, always(context.Background(), nil))
		assert.False(t, never(context.Background(), nil))
	}
}
