package testhelper

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// discriminants hands out asset discriminants that never collide between
// tests sharing the container.
var discriminants struct {
	mu   sync.Mutex
	next uint64
}

// NextDiscriminant returns a discriminant unused by any other seeded asset.
func NextDiscriminant() uint64 {
	discriminants.mu.Lock()
	defer discriminants.mu.Unlock()
	if discriminants.next == 0 {
		discriminants.next = uint64(time.Now().UnixNano() % 1_000_000_000_000)
	}
	discriminants.next++
	return discriminants.next
}

// SeedAsset inserts a finalized asset of weight held by holder.
func SeedAsset(t *testing.T, pool *pgxpool.Pool, holder uuid.UUID, weight uint64) domain.Asset {
	t.Helper()
	ctx := context.Background()

	d := NextDiscriminant()
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Asset{
		ID:           domain.AssetIDFor(d),
		Discriminant: d,
		Holder:       holder,
		Supply:       1,
		Metadata: domain.Metadata{
			Name:   "Gold Bar",
			Symbol: "GLD",
			URI:    "https://example.com/gold.json",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.Metadata.Stamp(weight, domain.CollectionID())

	additional, err := json.Marshal(a.Metadata.Additional)
	if err != nil {
		t.Fatalf("testhelper: SeedAsset marshal metadata: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO assets (id, discriminant, holder, supply, name, symbol, uri, additional, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, int64(a.Discriminant), a.Holder, int64(a.Supply),
		a.Metadata.Name, a.Metadata.Symbol, a.Metadata.URI, additional, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAsset insert: %v", err)
	}

	return a
}

// SeedBalance sets the ledger balance of key.
func SeedBalance(t *testing.T, pool *pgxpool.Pool, key domain.AccountKey, balance uint64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO ledger_accounts (key, balance) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET balance = EXCLUDED.balance, updated_at = now()`,
		string(key), int64(balance),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBalance: %v", err)
	}
}

// ResetRegistry deletes the registry singleton. Tests that touch the
// registry row must not run in parallel with each other.
func ResetRegistry(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `DELETE FROM registry`); err != nil {
		t.Fatalf("testhelper: ResetRegistry: %v", err)
	}
}
