package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
)

// migrations create the user and transaction tables. Every statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		login VARCHAR(100) PRIMARY KEY,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(10) NOT NULL CHECK (role IN ('normal', 'admin')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		user_login VARCHAR(100) REFERENCES users (login),
		method VARCHAR(20) NOT NULL CHECK (method IN ('card', 'paypal', 'bank_transfer', 'pix', 'crypto')),
		amount NUMERIC(30, 8) NOT NULL CHECK (amount > 0),
		created_at TIMESTAMPTZ NOT NULL,
		status VARCHAR(10) NOT NULL CHECK (status IN ('approved', 'declined'))
	)`,
	`CREATE INDEX IF NOT EXISTS transactions_user_login_created_at_idx
		ON transactions (user_login, created_at DESC)`,
	`CREATE OR REPLACE FUNCTION transactions_append_only() RETURNS trigger AS $$
	BEGIN
		RAISE EXCEPTION 'transactions are append-only';
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS transactions_append_only ON transactions`,
	`CREATE TRIGGER transactions_append_only
		BEFORE UPDATE OR DELETE ON transactions
		FOR EACH ROW EXECUTE FUNCTION transactions_append_only()`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, m := range migrations {
		_, err := db.ExecContext(ctx, m)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(m), " "),
			"error", err,
		)

		if err != nil {
			return err
		}
	}
	return nil
}
