// Package registry implements the registry singleton repository using PostgreSQL.
package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bullion-registry/internal/adapter/postgres"
	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const entity = "registry"

// singleton is the key reported in error messages.
const singleton = "singleton"

const selectColumns = `authority, pending_authority, collection, discriminant,
	fractionalize_fee, sell_fee, fee_decimals, created_at, updated_at`

// Repo provides registry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new registry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores the singleton. A second call fails with ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, reg *domain.Registry, fees domain.FeesCollector) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	discriminant, err := postgres.ToBigint(reg.Discriminant)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err = q.Exec(ctx,
		`INSERT INTO registry (id, authority, pending_authority, collection, discriminant,
			fractionalize_fee, sell_fee, fee_decimals, created_at, updated_at)
		 VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		reg.Authority, reg.Pending.Ptr(), reg.Collection, discriminant,
		int32(fees.FractionalizeFee), int32(fees.SellFee), int16(fees.FeeDecimals), now,
	)
	if err != nil {
		return postgres.MapError(err, entity, singleton)
	}

	reg.CreatedAt, reg.UpdatedAt = now, now
	return nil
}

func (r *Repo) Get(ctx context.Context) (*domain.Registry, error) {
	reg, _, err := r.get(ctx, "")
	return reg, err
}

// GetForUpdate locks the singleton row until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context) (*domain.Registry, error) {
	reg, _, err := r.get(ctx, " FOR UPDATE")
	return reg, err
}

// Update persists the authority slots and the discriminant counter.
func (r *Repo) Update(ctx context.Context, reg *domain.Registry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	discriminant, err := postgres.ToBigint(reg.Discriminant)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	tag, err := q.Exec(ctx,
		`UPDATE registry
		 SET authority = $1, pending_authority = $2, discriminant = $3, updated_at = $4
		 WHERE id = 1`,
		reg.Authority, reg.Pending.Ptr(), discriminant, now,
	)
	if err != nil {
		return postgres.MapError(err, entity, singleton)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, singleton, domain.ErrNotFound)
	}

	reg.UpdatedAt = now
	return nil
}

func (r *Repo) GetFees(ctx context.Context) (domain.FeesCollector, error) {
	_, fees, err := r.get(ctx, "")
	return fees, err
}

func (r *Repo) UpdateFees(ctx context.Context, fees domain.FeesCollector) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE registry
		 SET fractionalize_fee = $1, sell_fee = $2, fee_decimals = $3, updated_at = now()
		 WHERE id = 1`,
		int32(fees.FractionalizeFee), int32(fees.SellFee), int16(fees.FeeDecimals),
	)
	if err != nil {
		return postgres.MapError(err, entity, singleton)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, singleton, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) get(ctx context.Context, lock string) (*domain.Registry, domain.FeesCollector, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		reg          domain.Registry
		pending      *uuid.UUID
		discriminant int64
		fracFee      int32
		sellFee      int32
		feeDecimals  int16
	)
	err := q.QueryRow(ctx, `SELECT `+selectColumns+` FROM registry WHERE id = 1`+lock).Scan(
		&reg.Authority, &pending, &reg.Collection, &discriminant,
		&fracFee, &sellFee, &feeDecimals, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, domain.FeesCollector{}, postgres.MapError(err, entity, singleton)
	}

	reg.Pending = domain.PendingAuthorityFromPtr(pending)
	reg.Discriminant = postgres.FromBigint(discriminant)

	fees := domain.FeesCollector{
		FractionalizeFee: uint32(fracFee),
		SellFee:          uint32(sellFee),
		FeeDecimals:      uint8(feeDecimals),
	}
	return &reg, fees, nil
}
