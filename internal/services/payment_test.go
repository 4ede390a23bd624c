package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"github.com/sbilibin2017/gw-payment-intake/internal/payments"
	"github.com/sbilibin2017/gw-payment-intake/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProcessor(approve bool) *payments.Processor {
	return payments.NewProcessor(
		payments.WithDelay(0),
		payments.WithDecider(payments.Always(approve)),
	)
}

func TestPaymentService_Pay_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockTransactionWriter(ctrl)
	ledger := services.NewMockTransactionWriter(ctrl)
	notifier := services.NewMockPaymentNotifier(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	svc := services.NewPaymentService(newProcessor(true), store, ledger, notifier, kafkaWriter)

	var saved models.Transaction
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txn models.Transaction) error {
		saved = txn
		return nil
	})
	ledger.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().NotifyPayment(gomock.Any(), gomock.Any()).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		require.Len(t, msgs, 1)
		var published models.Transaction
		require.NoError(t, json.Unmarshal(msgs[0].Value, &published))
		assert.Equal(t, saved.ID.String(), string(msgs[0].Key))
		assert.Equal(t, "approved", published.Status)
		return nil
	})

	txn, err := svc.Pay(context.Background(), "alice", decimal.RequireFromString("10.50"), payments.Pix{Key: "user@example.com"})
	require.NoError(t, err)
	require.NotNil(t, txn)

	assert.Equal(t, string(payments.StatusApproved), txn.Status)
	assert.Equal(t, "pix", txn.Method)
	assert.Equal(t, "alice", txn.UserLogin)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, *txn, saved)
}

func TestPaymentService_Pay_DeclinedByProcessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockTransactionWriter(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc := services.NewPaymentService(newProcessor(false), store, nil, nil, nil)

	txn, err := svc.Pay(context.Background(), "", decimal.NewFromInt(5), payments.NewCrypto("0x1234567890", "eth"))
	require.NoError(t, err)
	assert.Equal(t, string(payments.StatusDeclined), txn.Status)
	assert.Empty(t, txn.UserLogin)
}

func TestPaymentService_Pay_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockTransactionWriter(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txn models.Transaction) error {
		assert.Equal(t, "declined", txn.Status)
		return nil
	})

	decided := false
	processor := payments.NewProcessor(
		payments.WithDelay(0),
		payments.WithDecider(func(context.Context, *payments.Payment) bool {
			decided = true
			return true
		}),
	)
	svc := services.NewPaymentService(processor, store, nil, nil, nil)

	txn, err := svc.Pay(context.Background(), "bob", decimal.NewFromInt(100), payments.BankTransfer{
		Bank:        "ACME",
		Source:      "1234567",
		Destination: "12345678",
	})

	var vErr *payments.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "source", vErr.Field)
	require.NotNil(t, txn)
	assert.Equal(t, string(payments.StatusDeclined), txn.Status)
	assert.False(t, decided)
}

func TestPaymentService_Pay_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := services.NewMockPaymentProcessor(ctrl)
	store := services.NewMockTransactionWriter(ctrl)

	svc := services.NewPaymentService(processor, store, nil, nil, nil)

	txn, err := svc.Pay(context.Background(), "bob", decimal.Zero, payments.Pix{Key: "random-key"})
	assert.ErrorIs(t, err, payments.ErrInvalidAmount)
	assert.Nil(t, txn)
}

func TestPaymentService_Pay_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockTransactionWriter(ctrl)
	processor := payments.NewProcessor(
		payments.WithDelay(time.Hour),
		payments.WithDecider(payments.Always(true)),
	)
	svc := services.NewPaymentService(processor, store, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	txn, err := svc.Pay(ctx, "bob", decimal.NewFromInt(1), payments.Pix{Key: "random-key"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, txn)
}

func TestPaymentService_Pay_SideEffectFailuresAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockTransactionWriter(ctrl)
	ledger := services.NewMockTransactionWriter(ctrl)
	notifier := services.NewMockPaymentNotifier(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	ledger.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	notifier.EXPECT().NotifyPayment(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	svc := services.NewPaymentService(newProcessor(true), store, ledger, notifier, kafkaWriter)

	txn, err := svc.Pay(context.Background(), "alice", decimal.NewFromInt(3), payments.NewPayPal("a@b.co", "secret"))
	require.NoError(t, err)
	assert.Equal(t, string(payments.StatusApproved), txn.Status)
}

func TestPaymentService_Pay_ProcessorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := services.NewMockPaymentProcessor(ctrl)
	store := services.NewMockTransactionWriter(ctrl)
	processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(payments.ErrStatusFinal)

	svc := services.NewPaymentService(processor, store, nil, nil, nil)

	txn, err := svc.Pay(context.Background(), "alice", decimal.NewFromInt(3), payments.Pix{Key: "random-key"})
	assert.ErrorIs(t, err, payments.ErrStatusFinal)
	assert.Nil(t, txn)
}

func TestPaymentService_Pay_InvalidatesSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockTransactionWriter(ctrl)
	summaries := services.NewMockSummaryInvalidator(ctrl)

	gomock.InOrder(
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		summaries.EXPECT().Invalidate(gomock.Any()).Return(nil),
	)

	svc := services.NewPaymentService(newProcessor(true), store, nil, nil, nil).
		WithSummaryInvalidator(summaries)

	txn, err := svc.Pay(context.Background(), "alice", decimal.NewFromInt(3), payments.Pix{Key: "random-key"})
	require.NoError(t, err)
	assert.Equal(t, string(payments.StatusApproved), txn.Status)

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	summaries.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

	txn, err = svc.Pay(context.Background(), "alice", decimal.NewFromInt(3), payments.Pix{Key: "random-key"})
	require.NoError(t, err)
	assert.Equal(t, string(payments.StatusApproved), txn.Status)
}

func TestPaymentService_Pay_InvalidAmountRecordsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockTransactionWriter(ctrl)
	ledger := services.NewMockTransactionWriter(ctrl)
	summaries := services.NewMockSummaryInvalidator(ctrl)
	svc := services.NewPaymentService(newProcessor(true), store, ledger, nil, nil).
		WithSummaryInvalidator(summaries)

	txn, err := svc.Pay(context.Background(), "bob", decimal.RequireFromString("0.001"), payments.Pix{Key: "random-key"})
	assert.ErrorIs(t, err, payments.ErrInvalidAmount)
	assert.Nil(t, txn)
}
