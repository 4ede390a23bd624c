package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
)

// TransactionWriteRepository appends settled transactions.
type TransactionWriteRepository struct {
	db *sqlx.DB
}

func NewTransactionWriteRepository(db *sqlx.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Save inserts one transaction row.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.Transaction) error {
	const query = `
		INSERT INTO transactions (id, user_login, method, amount, created_at, status)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6)
	`
	args := []any{txn.ID, txn.UserLogin, txn.Method, txn.Amount, txn.CreatedAt, txn.Status}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// TransactionReadRepository answers history and reporting queries.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// List returns the transactions matching filter, newest first.
func (r *TransactionReadRepository) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	where, args := buildWhere(filter)
	query := `
		SELECT id, COALESCE(user_login, '') AS user_login, method, amount, created_at, status
		FROM transactions` + where + `
		ORDER BY created_at DESC, id
	`

	txns := []models.Transaction{}
	err := r.db.SelectContext(ctx, &txns, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// TotalsByMethod aggregates the transactions matching filter per method.
func (r *TransactionReadRepository) TotalsByMethod(ctx context.Context, filter models.TransactionFilter) ([]models.MethodTotal, error) {
	where, args := buildWhere(filter)
	query := `
		SELECT method,
		       COUNT(*) AS count,
		       COALESCE(SUM(amount), 0) AS amount,
		       COUNT(*) FILTER (WHERE status = 'approved') AS approved_count,
		       COALESCE(SUM(amount) FILTER (WHERE status = 'approved'), 0) AS approved_amount
		FROM transactions` + where + `
		GROUP BY method
		ORDER BY method
	`

	totals := []models.MethodTotal{}
	err := r.db.SelectContext(ctx, &totals, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", totals,
		"error", err,
	)

	return totals, err
}

func buildWhere(filter models.TransactionFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.UserLogin != "" {
		add("user_login = $%d", filter.UserLogin)
	}
	if filter.Method != "" {
		add("method = $%d", filter.Method)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at < $%d", *filter.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "\n\t\tWHERE " + strings.Join(conds, " AND "), args
}
