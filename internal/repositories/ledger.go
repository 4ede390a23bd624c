package repositories

import (
	"context"
	"encoding/csv"
	"os"
	"sync"

	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
)

// LedgerTimeLayout is the timestamp layout of ledger rows (DD-MM-YYYY HH:MM:SS).
const LedgerTimeLayout = "02-01-2006 15:04:05"

// FileLedger appends transactions to a delimited file with the fixed column
// order id, method, amount, timestamp, status.
type FileLedger struct {
	path string
	mu   sync.Mutex
}

func NewFileLedger(path string) *FileLedger {
	return &FileLedger{path: path}
}

// Save appends one row to the ledger file, creating it if needed.
func (l *FileLedger) Save(ctx context.Context, txn models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row := []string{
		txn.ID.String(),
		txn.Method,
		txn.Amount.StringFixed(2),
		txn.CreatedAt.Format(LedgerTimeLayout),
		txn.Status,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.append(row)

	logger.Log.Infow(
		"ledger", l.path,
		"row", row,
		"error", err,
	)

	return err
}

func (l *FileLedger) append(row []string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
