package services

//go:generate mockgen -source=payment.go -destination=payment_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"github.com/sbilibin2017/gw-payment-intake/internal/payments"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// PaymentProcessor validates a payment and settles its status.
type PaymentProcessor interface {
	Process(ctx context.Context, p *payments.Payment) error
}

// TransactionWriter appends settled transactions to a store.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.Transaction) error
}

// PaymentNotifier notifies about settled transactions.
type PaymentNotifier interface {
	NotifyPayment(ctx context.Context, txn models.Transaction) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SummaryInvalidator drops cached report summaries.
type SummaryInvalidator interface {
	Invalidate(ctx context.Context) error
}

// PaymentService runs payments through the processor and records the outcome.
type PaymentService struct {
	processor   PaymentProcessor
	writers     []TransactionWriter
	notifier    PaymentNotifier
	kafkaWriter KafkaWriter
	summaries   SummaryInvalidator
	now         func() time.Time
}

// NewPaymentService creates a new PaymentService. ledger, notifier and
// kafkaWriter are optional.
func NewPaymentService(
	processor PaymentProcessor,
	store TransactionWriter,
	ledger TransactionWriter,
	notifier PaymentNotifier,
	kafkaWriter KafkaWriter,
) *PaymentService {
	writers := []TransactionWriter{store}
	if ledger != nil {
		writers = append(writers, ledger)
	}
	return &PaymentService{
		processor:   processor,
		writers:     writers,
		notifier:    notifier,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// WithSummaryInvalidator makes the service drop cached report summaries
// after every recorded transaction.
func (s *PaymentService) WithSummaryInvalidator(c SummaryInvalidator) *PaymentService {
	s.summaries = c
	return s
}

// Pay processes one payment and records it.
//
// A structurally invalid payload is recorded as declined and returned
// together with its *payments.ValidationError. Other errors (bad amount,
// cancellation) return no transaction and record nothing.
func (s *PaymentService) Pay(ctx context.Context, userLogin string, amount decimal.Decimal, details payments.Details) (*models.Transaction, error) {
	p, err := payments.New(amount, userLogin, details, s.now())
	if err != nil {
		logger.Log.Warnw("payment rejected", "user", userLogin, "amount", amount, "error", err)
		return nil, err
	}

	logger.Log.Infow("processing payment", "transaction_id", p.ID, "method", p.Method(), "amount", p.Amount)

	procErr := s.processor.Process(ctx, p)
	var vErr *payments.ValidationError
	if procErr != nil && !errors.As(procErr, &vErr) {
		logger.Log.Errorw("payment processing aborted", "transaction_id", p.ID, "error", procErr)
		return nil, procErr
	}

	txn := models.Transaction{
		ID:        p.ID,
		UserLogin: p.UserLogin,
		Method:    p.Method().String(),
		Amount:    p.Amount,
		CreatedAt: p.CreatedAt,
		Status:    string(p.Status()),
	}

	if vErr != nil {
		logger.Log.Infow("payment declined by validation", "transaction_id", txn.ID, "field", vErr.Field, "reason", vErr.Message)
	} else {
		logger.Log.Infow("payment settled", "transaction_id", txn.ID, "status", txn.Status)
	}

	// the outcome is recorded even if the caller went away
	sideCtx := context.WithoutCancel(ctx)
	s.record(sideCtx, txn)
	s.publishTransaction(sideCtx, txn)
	s.notify(sideCtx, txn)

	if vErr != nil {
		return &txn, vErr
	}
	return &txn, nil
}

// record appends the transaction to every store and drops cached
// summaries. Failures are logged only.
func (s *PaymentService) record(ctx context.Context, txn models.Transaction) {
	for _, w := range s.writers {
		if err := w.Save(ctx, txn); err != nil {
			logger.Log.Errorw("failed to record transaction", "transaction_id", txn.ID, "error", err)
		}
	}
	if s.summaries != nil {
		if err := s.summaries.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate cached summaries", "transaction_id", txn.ID, "error", err)
		}
	}
}

// publishTransaction publishes a transaction to Kafka.
func (s *PaymentService) publishTransaction(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.ID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.ID, "amount", txn.Amount)
	}
}

func (s *PaymentService) notify(ctx context.Context, txn models.Transaction) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyPayment(ctx, txn); err != nil {
		logger.Log.Errorw("failed to notify about transaction", "transaction_id", txn.ID, "error", err)
	}
}
