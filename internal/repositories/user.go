package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByLogin returns the user with the given login, or nil if there is none.
func (r *UserReadRepository) GetByLogin(ctx context.Context, login string) (*models.UserDB, error) {
	const query = `
		SELECT login, password_hash, role, created_at, updated_at
		FROM users
		WHERE login = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, login)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{login},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListLoginsByRole returns the logins of every user with the given role.
func (r *UserReadRepository) ListLoginsByRole(ctx context.Context, role models.Role) ([]string, error) {
	const query = `
		SELECT login
		FROM users
		WHERE role = $1
		ORDER BY login
	`

	logins := []string{}
	err := r.db.SelectContext(ctx, &logins, query, role)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{role},
		"result", logins,
		"error", err,
	)

	return logins, err
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new user. It reports false if the login is already taken.
func (r *UserWriteRepository) Create(ctx context.Context, login, passwordHash string, role models.Role) (bool, error) {
	const query = `
		INSERT INTO users (login, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (login) DO NOTHING
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, login, passwordHash, role)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{login, role},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// Upsert creates the user or replaces its password and role.
func (r *UserWriteRepository) Upsert(ctx context.Context, login, passwordHash string, role models.Role) error {
	const query = `
		INSERT INTO users (login, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (login) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    role = EXCLUDED.role,
		    updated_at = NOW()
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, login, passwordHash, role)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{login, role},
		"error", err,
	)

	return err
}

// UpdateAdminPassword replaces the password of an admin user. It reports
// false if no admin with that login exists.
func (r *UserWriteRepository) UpdateAdminPassword(ctx context.Context, login, passwordHash string) (bool, error) {
	const query = `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE login = $1 AND role = 'admin'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, login, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{login},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
