// Package pending implements the pending mint and fractionalize records
// using PostgreSQL. Both kinds are keyed by the asset they finalize and are
// consumed atomically with DELETE ... RETURNING.
package pending

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bullion-registry/internal/adapter/postgres"
	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const (
	mintEntity = "pending_mint"
	fracEntity = "pending_fractionalize"
)

const fracColumns = `asset_id, source_asset_id, weight, name, symbol, uri, payer, created_at`

// Repo provides pending record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pending record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Pending mint
// ---------------------------------------------------------------------------

func (r *Repo) CreateMint(ctx context.Context, p *domain.PendingMint) error {
	weight, err := postgres.ToBigint(p.Weight)
	if err != nil {
		return err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err = q.Exec(ctx,
		`INSERT INTO pending_mints (asset_id, weight, payer, created_at) VALUES ($1, $2, $3, $4)`,
		p.AssetID, weight, p.Payer, now,
	)
	if err != nil {
		return postgres.MapError(err, mintEntity, p.AssetID)
	}

	p.CreatedAt = now
	return nil
}

func (r *Repo) GetMint(ctx context.Context, assetID uuid.UUID) (*domain.PendingMint, error) {
	return r.scanMint(ctx, assetID,
		`SELECT asset_id, weight, payer, created_at FROM pending_mints WHERE asset_id = $1`)
}

// DeleteMint removes and returns the pending mint of assetID.
func (r *Repo) DeleteMint(ctx context.Context, assetID uuid.UUID) (*domain.PendingMint, error) {
	return r.scanMint(ctx, assetID,
		`DELETE FROM pending_mints WHERE asset_id = $1 RETURNING asset_id, weight, payer, created_at`)
}

func (r *Repo) scanMint(ctx context.Context, assetID uuid.UUID, sql string) (*domain.PendingMint, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		p      domain.PendingMint
		weight int64
	)
	if err := q.QueryRow(ctx, sql, assetID).Scan(&p.AssetID, &weight, &p.Payer, &p.CreatedAt); err != nil {
		return nil, postgres.MapError(err, mintEntity, assetID)
	}
	p.Weight = postgres.FromBigint(weight)
	return &p, nil
}

// ---------------------------------------------------------------------------
// Pending fractionalize
// ---------------------------------------------------------------------------

func (r *Repo) CreateFractionalize(ctx context.Context, p *domain.PendingFractionalize) error {
	weight, err := postgres.ToBigint(p.Weight)
	if err != nil {
		return err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err = q.Exec(ctx,
		`INSERT INTO pending_fractionalizations (`+fracColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.AssetID, p.SourceAssetID, weight, p.Name, p.Symbol, p.URI, p.Payer, now,
	)
	if err != nil {
		return postgres.MapError(err, fracEntity, p.AssetID)
	}

	p.CreatedAt = now
	return nil
}

func (r *Repo) GetFractionalize(ctx context.Context, assetID uuid.UUID) (*domain.PendingFractionalize, error) {
	return r.scanFractionalize(ctx, assetID,
		`SELECT `+fracColumns+` FROM pending_fractionalizations WHERE asset_id = $1`)
}

// DeleteFractionalize removes and returns the pending fractionalize record of assetID.
func (r *Repo) DeleteFractionalize(ctx context.Context, assetID uuid.UUID) (*domain.PendingFractionalize, error) {
	return r.scanFractionalize(ctx, assetID,
		`DELETE FROM pending_fractionalizations WHERE asset_id = $1 RETURNING `+fracColumns)
}

func (r *Repo) scanFractionalize(ctx context.Context, assetID uuid.UUID, sql string) (*domain.PendingFractionalize, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		p      domain.PendingFractionalize
		weight int64
	)
	err := q.QueryRow(ctx, sql, assetID).Scan(
		&p.AssetID, &p.SourceAssetID, &weight, &p.Name, &p.Symbol, &p.URI, &p.Payer, &p.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, fracEntity, assetID)
	}
	p.Weight = postgres.FromBigint(weight)
	return &p, nil
}
