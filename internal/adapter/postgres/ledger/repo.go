// Package ledger implements the native currency ledger using PostgreSQL.
// Each account is one row; an absent row is a zero balance.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bullion-registry/internal/adapter/postgres"
	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const entity = "ledger_account"

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ledger repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Balance returns the balance of key. Unknown accounts hold zero.
func (r *Repo) Balance(ctx context.Context, key domain.AccountKey) (uint64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var balance int64
	err := q.QueryRow(ctx, `SELECT balance FROM ledger_accounts WHERE key = $1`, string(key)).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, postgres.MapError(err, entity, key)
	}
	return postgres.FromBigint(balance), nil
}

// Transfer moves amount from one account to another in a single statement.
// The debit only applies when from holds at least amount; otherwise nothing
// changes and ErrInsufficientFunds is returned.
func (r *Repo) Transfer(ctx context.Context, from, to domain.AccountKey, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}
	v, err := postgres.ToBigint(amount)
	if err != nil {
		return err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var credited int64
	err = q.QueryRow(ctx,
		`WITH debit AS (
			UPDATE ledger_accounts
			SET balance = balance - $3, updated_at = now()
			WHERE key = $1 AND balance >= $3
			RETURNING key
		)
		INSERT INTO ledger_accounts (key, balance)
		SELECT $2, $3 FROM debit
		ON CONFLICT (key) DO UPDATE
			SET balance = ledger_accounts.balance + EXCLUDED.balance, updated_at = now()
		RETURNING balance`,
		string(from), string(to), v,
	).Scan(&credited)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s %s: %w", entity, from, domain.ErrInsufficientFunds)
		}
		return postgres.MapError(err, entity, to)
	}
	return nil
}

// Credit mints amount into key.
func (r *Repo) Credit(ctx context.Context, key domain.AccountKey, amount uint64) error {
	if amount == 0 {
		return nil
	}
	v, err := postgres.ToBigint(amount)
	if err != nil {
		return err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err = q.Exec(ctx,
		`INSERT INTO ledger_accounts (key, balance) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE
			SET balance = ledger_accounts.balance + EXCLUDED.balance, updated_at = now()`,
		string(key), v,
	)
	if err != nil {
		return postgres.MapError(err, entity, key)
	}
	return nil
}

// Close moves the whole balance of key to another account and deletes key.
// It returns the amount moved; closing an unknown account moves zero.
func (r *Repo) Close(ctx context.Context, key, to domain.AccountKey) (uint64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var moved int64
	err := q.QueryRow(ctx,
		`WITH closed AS (
			DELETE FROM ledger_accounts WHERE key = $1 RETURNING balance
		), credited AS (
			INSERT INTO ledger_accounts (key, balance)
			SELECT $2, balance FROM closed WHERE balance > 0
			ON CONFLICT (key) DO UPDATE
				SET balance = ledger_accounts.balance + EXCLUDED.balance, updated_at = now()
		)
		SELECT COALESCE((SELECT balance FROM closed), 0)`,
		string(key), string(to),
	).Scan(&moved)
	if err != nil {
		return 0, postgres.MapError(err, entity, key)
	}
	return postgres.FromBigint(moved), nil
}
