// Package vault implements the user vault repository using PostgreSQL.
// Vault balances live in the ledger; this table only records that a vault
// was opened.
package vault

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bullion-registry/internal/adapter/postgres"
	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const entity = "user_vault"

// Repo provides user vault persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user vault repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, v *domain.UserVault) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := q.Exec(ctx, `INSERT INTO user_vaults (owner, created_at) VALUES ($1, $2)`, v.Owner, now)
	if err != nil {
		return postgres.MapError(err, entity, v.Owner)
	}

	v.CreatedAt = now
	return nil
}

// Get returns the vault record of owner. Balance is left at zero.
func (r *Repo) Get(ctx context.Context, owner uuid.UUID) (*domain.UserVault, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	v := domain.UserVault{Owner: owner}
	err := q.QueryRow(ctx, `SELECT created_at FROM user_vaults WHERE owner = $1`, owner).Scan(&v.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, entity, owner)
	}
	return &v, nil
}
