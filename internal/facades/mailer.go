package facades

import (
	"bytes"
	"context"
	"text/template"

	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"gopkg.in/gomail.v2"
)

// PaymentMailSubject is the subject of every payment notification.
const PaymentMailSubject = "Payment processed"

var paymentMailBody = template.Must(template.New("payment").Parse(`A payment was processed.

Transaction: {{.ID}}
User: {{if .UserLogin}}{{.UserLogin}}{{else}}anonymous{{end}}
Method: {{.Method}}
Amount: {{.Amount.StringFixed 2}}
Date: {{.CreatedAt.Format "02-01-2006 15:04:05"}}
Status: {{.Status}}
`))

// MailDialer sends composed messages. *gomail.Dialer implements it.
type MailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// PaymentMailer implements payment notifications over SMTP.
type PaymentMailer struct {
	dialer MailDialer
	from   string
	to     []string
}

// NewPaymentMailer creates a new facade sending from `from` to every address in `to`.
func NewPaymentMailer(dialer MailDialer, from string, to []string) *PaymentMailer {
	return &PaymentMailer{dialer: dialer, from: from, to: to}
}

// NotifyPayment sends the notification for a settled transaction.
func (m *PaymentMailer) NotifyPayment(ctx context.Context, txn models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := paymentMailBody.Execute(&body, txn); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to...)
	msg.SetHeader("Subject", PaymentMailSubject)
	msg.SetBody("text/plain", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.Log.Errorw("failed to send payment email", "transaction_id", txn.ID, "error", err)
		return err
	}

	logger.Log.Infow("payment email sent", "transaction_id", txn.ID, "recipients", len(m.to))
	return nil
}
