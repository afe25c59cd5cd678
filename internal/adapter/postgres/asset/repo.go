// Package asset implements the asset repository using PostgreSQL.
// Additional metadata entries are stored as an ordered JSONB array.
package asset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bullion-registry/internal/adapter/postgres"
	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const entity = "asset"

const (
	defaultLimit = 50
	maxLimit     = 200
)

var selectColumns = []string{
	"id", "discriminant", "holder", "supply", "name", "symbol", "uri",
	"additional", "created_at", "updated_at",
}

// Repo provides asset persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new asset repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

func (r *Repo) Create(ctx context.Context, a *domain.Asset) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	discriminant, err := postgres.ToBigint(a.Discriminant)
	if err != nil {
		return err
	}
	supply, err := postgres.ToBigint(a.Supply)
	if err != nil {
		return err
	}
	additional, err := marshalAdditional(a.Metadata.Additional)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err = q.Exec(ctx,
		`INSERT INTO assets (id, discriminant, holder, supply, name, symbol, uri, additional, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		a.ID, discriminant, a.Holder, supply,
		a.Metadata.Name, a.Metadata.Symbol, a.Metadata.URI, additional, now,
	)
	if err != nil {
		return postgres.MapError(err, entity, a.ID)
	}

	a.CreatedAt, a.UpdatedAt = now, now
	return nil
}

// UpdateMetadata replaces the whole metadata document of id.
func (r *Repo) UpdateMetadata(ctx context.Context, id uuid.UUID, md domain.Metadata) error {
	additional, err := marshalAdditional(md.Additional)
	if err != nil {
		return err
	}

	return r.exec(ctx, id,
		`UPDATE assets
		 SET name = $2, symbol = $3, uri = $4, additional = $5, updated_at = now()
		 WHERE id = $1`,
		md.Name, md.Symbol, md.URI, additional,
	)
}

// SetHolder moves the single unit of the asset to holder.
func (r *Repo) SetHolder(ctx context.Context, id, holder uuid.UUID) error {
	return r.exec(ctx, id, `UPDATE assets SET holder = $2, updated_at = now() WHERE id = $1`, holder)
}

// Delete burns the asset and closes its record.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, id, `DELETE FROM assets WHERE id = $1`)
}

func (r *Repo) exec(ctx context.Context, id uuid.UUID, sql string, args ...any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, append([]any{id}, args...)...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	return r.getByID(ctx, id, false)
}

// GetForUpdate locks the asset row until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	return r.getByID(ctx, id, true)
}

// ListByHolder returns the assets held by holder ordered by discriminant.
func (r *Repo) ListByHolder(ctx context.Context, holder uuid.UUID, limit, offset int) ([]domain.Asset, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	query, args, err := postgres.Builder.
		Select(selectColumns...).
		From("assets").
		Where("holder = ?", holder).
		OrderBy("discriminant", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assets query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets by holder: %w", err)
	}
	defer rows.Close()

	var out []domain.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assets by holder: %w", err)
	}
	return out, nil
}

func (r *Repo) getByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Asset, error) {
	b := postgres.Builder.Select(selectColumns...).From("assets").Where("id = ?", id)
	if forUpdate {
		b = postgres.LockForUpdate(ctx, b)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build asset query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	a, err := scanAsset(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var (
		a            domain.Asset
		discriminant int64
		supply       int64
		additional   []byte
	)
	err := row.Scan(
		&a.ID, &discriminant, &a.Holder, &supply,
		&a.Metadata.Name, &a.Metadata.Symbol, &a.Metadata.URI,
		&additional, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Discriminant = postgres.FromBigint(discriminant)
	a.Supply = postgres.FromBigint(supply)
	if err := json.Unmarshal(additional, &a.Metadata.Additional); err != nil {
		return nil, fmt.Errorf("asset %s unmarshal metadata: %w", a.ID, err)
	}
	return &a, nil
}

func marshalAdditional(entries []domain.MetadataEntry) ([]byte, error) {
	if entries == nil {
		entries = []domain.MetadataEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("asset marshal metadata: %w", err)
	}
	return b, nil
}
