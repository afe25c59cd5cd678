// Package listing implements the marketplace listing repository using
// PostgreSQL. A listing row exists only while the asset is for sale.
package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bullion-registry/internal/adapter/postgres"
	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const entity = "listing"

const (
	defaultLimit = 50
	maxLimit     = 200
)

var selectColumns = []string{"asset_id", "owner", "price", "escrow", "created_at", "updated_at"}

// Repo provides listing persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new listing repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

func (r *Repo) Create(ctx context.Context, l *domain.Listing) error {
	price, err := postgres.ToBigint(l.Price)
	if err != nil {
		return err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err = q.Exec(ctx,
		`INSERT INTO listings (asset_id, owner, price, escrow, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $5)`,
		l.AssetID, l.Owner, price, l.Escrow, now,
	)
	if err != nil {
		return postgres.MapError(err, entity, l.AssetID)
	}

	l.CreatedAt, l.UpdatedAt = now, now
	return nil
}

func (r *Repo) UpdatePrice(ctx context.Context, assetID uuid.UUID, price uint64) error {
	p, err := postgres.ToBigint(price)
	if err != nil {
		return err
	}
	return r.exec(ctx, assetID, `UPDATE listings SET price = $2, updated_at = now() WHERE asset_id = $1`, p)
}

func (r *Repo) Delete(ctx context.Context, assetID uuid.UUID) error {
	return r.exec(ctx, assetID, `DELETE FROM listings WHERE asset_id = $1`)
}

func (r *Repo) exec(ctx context.Context, assetID uuid.UUID, sql string, args ...any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, append([]any{assetID}, args...)...)
	if err != nil {
		return postgres.MapError(err, entity, assetID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, assetID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func (r *Repo) Get(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error) {
	return r.getByAsset(ctx, assetID, false)
}

// GetForUpdate locks the listing row until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error) {
	return r.getByAsset(ctx, assetID, true)
}

// Search returns listings matching filter, oldest first.
func (r *Repo) Search(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	limit, offset := filter.Limit, filter.Offset
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	b := postgres.Builder.Select(selectColumns...).From("listings")
	if filter.Owner != nil {
		b = b.Where("owner = ?", *filter.Owner)
	}
	if filter.MinPrice != nil {
		lo, err := postgres.ToBigint(*filter.MinPrice)
		if err != nil {
			// Nothing can be priced above MaxInt64.
			return nil, nil
		}
		b = b.Where("price >= ?", lo)
	}
	if filter.MaxPrice != nil {
		if hi, err := postgres.ToBigint(*filter.MaxPrice); err == nil {
			b = b.Where("price <= ?", hi)
		}
	}

	query, args, err := b.
		OrderBy("created_at", "asset_id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build listings query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return out, nil
}

func (r *Repo) getByAsset(ctx context.Context, assetID uuid.UUID, forUpdate bool) (*domain.Listing, error) {
	b := postgres.Builder.Select(selectColumns...).From("listings").Where("asset_id = ?", assetID)
	if forUpdate {
		b = postgres.LockForUpdate(ctx, b)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build listing query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	l, err := scanListing(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, assetID)
	}
	return l, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var (
		l     domain.Listing
		price int64
	)
	if err := row.Scan(&l.AssetID, &l.Owner, &price, &l.Escrow, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.Price = postgres.FromBigint(price)
	return &l, nil
}
