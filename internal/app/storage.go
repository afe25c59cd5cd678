package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bullion-registry/internal/adapter/memory"
	"github.com/heartmarshall/bullion-registry/internal/adapter/postgres"
	"github.com/heartmarshall/bullion-registry/internal/adapter/postgres/asset"
	"github.com/heartmarshall/bullion-registry/internal/adapter/postgres/event"
	"github.com/heartmarshall/bullion-registry/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/bullion-registry/internal/adapter/postgres/listing"
	"github.com/heartmarshall/bullion-registry/internal/adapter/postgres/pending"
	"github.com/heartmarshall/bullion-registry/internal/adapter/postgres/registry"
	"github.com/heartmarshall/bullion-registry/internal/adapter/postgres/vault"
	"github.com/heartmarshall/bullion-registry/internal/config"
	"github.com/heartmarshall/bullion-registry/internal/domain"
)

type registryStore interface {
	Create(ctx context.Context, reg *domain.Registry, fees domain.FeesCollector) error
	Get(ctx context.Context) (*domain.Registry, error)
	GetForUpdate(ctx context.Context) (*domain.Registry, error)
	Update(ctx context.Context, reg *domain.Registry) error
	GetFees(ctx context.Context) (domain.FeesCollector, error)
	UpdateFees(ctx context.Context, fees domain.FeesCollector) error
}

type ledgerStore interface {
	Balance(ctx context.Context, key domain.AccountKey) (uint64, error)
	Transfer(ctx context.Context, from, to domain.AccountKey, amount uint64) error
	Credit(ctx context.Context, key domain.AccountKey, amount uint64) error
	Close(ctx context.Context, key, to domain.AccountKey) (uint64, error)
}

type assetStore interface {
	Create(ctx context.Context, a *domain.Asset) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, md domain.Metadata) error
	SetHolder(ctx context.Context, id, holder uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByHolder(ctx context.Context, holder uuid.UUID, limit, offset int) ([]domain.Asset, error)
}

type pendingStore interface {
	CreateMint(ctx context.Context, p *domain.PendingMint) error
	DeleteMint(ctx context.Context, assetID uuid.UUID) (*domain.PendingMint, error)
	CreateFractionalize(ctx context.Context, p *domain.PendingFractionalize) error
	DeleteFractionalize(ctx context.Context, assetID uuid.UUID) (*domain.PendingFractionalize, error)
}

type listingStore interface {
	Create(ctx context.Context, l *domain.Listing) error
	Get(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error)
	GetForUpdate(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error)
	UpdatePrice(ctx context.Context, assetID uuid.UUID, price uint64) error
	Delete(ctx context.Context, assetID uuid.UUID) error
	Search(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
}

type vaultStore interface {
	Create(ctx context.Context, v *domain.UserVault) error
	Get(ctx context.Context, owner uuid.UUID) (*domain.UserVault, error)
}

type eventStore interface {
	Log(ctx context.Context, event domain.Event) error
	ListByAsset(ctx context.Context, assetID uuid.UUID, limit int) ([]domain.Event, error)
	List(ctx context.Context, limit int) ([]domain.Event, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Storage bundles the repositories of one record store backend.
type Storage struct {
	Registries registryStore
	Ledger     ledgerStore
	Assets     assetStore
	Pending    pendingStore
	Listings   listingStore
	Vaults     vaultStore
	Events     eventStore
	Tx         txRunner
	DB         pinger

	close func()
}

// Close releases the backend's resources.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// MemoryStorage wraps an in-process store.
func MemoryStorage(store *memory.Store) *Storage {
	return &Storage{
		Registries: store.Registries(),
		Ledger:     store.Ledger(),
		Assets:     store.Assets(),
		Pending:    store.Pending(),
		Listings:   store.Listings(),
		Vaults:     store.Vaults(),
		Events:     store.Events(),
		Tx:         store.TxManager(),
		DB:         store,
	}
}

// PostgresStorage wraps a connection pool. Close closes the pool.
func PostgresStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{
		Registries: registry.New(pool),
		Ledger:     ledger.New(pool),
		Assets:     asset.New(pool),
		Pending:    pending.New(pool),
		Listings:   listing.New(pool),
		Vaults:     vault.New(pool),
		Events:     event.New(pool),
		Tx:         postgres.NewTxManager(pool),
		DB:         pool,
		close:      pool.Close,
	}
}

// OpenStorage connects the backend selected by cfg.Storage.Driver.
// With the postgres driver and auto_migrate set, pending migrations are
// applied before the pool is returned.
func OpenStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("using in-memory storage; state is lost on exit")
		return MemoryStorage(memory.NewStore()), nil

	case config.StoragePostgres:
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, log); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return PostgresStorage(pool), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
