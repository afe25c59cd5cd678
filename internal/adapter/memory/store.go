// Package memory is a process-local implementation of every repository the
// services consume. It backs the memory storage driver and end-to-end service
// tests. A transaction holds the store-wide lock and works on a snapshot that
// is discarded on error.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

type state struct {
	registry     *domain.Registry
	fees         domain.FeesCollector
	balances     map[domain.AccountKey]uint64
	assets       map[uuid.UUID]domain.Asset
	pendingMints map[uuid.UUID]domain.PendingMint
	pendingFracs map[uuid.UUID]domain.PendingFractionalize
	listings     map[uuid.UUID]domain.Listing
	vaults       map[uuid.UUID]domain.UserVault
	events       []domain.Event
}

func newState() *state {
	return &state{
		balances:     make(map[domain.AccountKey]uint64),
		assets:       make(map[uuid.UUID]domain.Asset),
		pendingMints: make(map[uuid.UUID]domain.PendingMint),
		pendingFracs: make(map[uuid.UUID]domain.PendingFractionalize),
		listings:     make(map[uuid.UUID]domain.Listing),
		vaults:       make(map[uuid.UUID]domain.UserVault),
	}
}

func (s *state) clone() *state {
	c := &state{
		fees:         s.fees,
		balances:     maps.Clone(s.balances),
		assets:       make(map[uuid.UUID]domain.Asset, len(s.assets)),
		pendingMints: maps.Clone(s.pendingMints),
		pendingFracs: maps.Clone(s.pendingFracs),
		listings:     maps.Clone(s.listings),
		vaults:       maps.Clone(s.vaults),
		events:       append([]domain.Event(nil), s.events...),
	}
	if s.registry != nil {
		reg := *s.registry
		c.registry = &reg
	}
	for id, a := range s.assets {
		a.Metadata = a.Metadata.Clone()
		c.assets[id] = a
	}
	return c
}

type txKey struct{ store *Store }

// Store holds all registry state in memory.
type Store struct {
	mu  sync.Mutex
	st  *state
	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		st:  newState(),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Ping reports whether the store can serve requests.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) inTx(ctx context.Context) bool {
	return ctx.Value(txKey{store: s}) != nil
}

// view runs fn against the live state, taking the lock unless ctx already
// belongs to a transaction of this store.
func (s *Store) view(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.st)
}

// ---------------------------------------------------------------------------
// TxManager
// ---------------------------------------------------------------------------

// TxManager runs functions atomically against the store.
type TxManager struct {
	store *Store
}

// TxManager returns the transaction manager of the store.
func (s *Store) TxManager() *TxManager { return &TxManager{store: s} }

// RunInTx executes fn under the store lock. If fn returns an error or panics
// every change made through ctx is discarded. Nested calls join the outer
// transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	s := m.store
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	txCtx := context.WithValue(ctx, txKey{store: s}, true)

	defer func() {
		if p := recover(); p != nil {
			s.st = snapshot
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		s.st = snapshot
		return err
	}
	if err := ctx.Err(); err != nil {
		s.st = snapshot
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

// Registries returns the registry repository view.
func (s *Store) Registries() *RegistryRepo { return &RegistryRepo{store: s} }

// Ledger returns the currency ledger view.
func (s *Store) Ledger() *Ledger { return &Ledger{store: s} }

// Assets returns the asset repository view.
func (s *Store) Assets() *AssetRepo { return &AssetRepo{store: s} }

// Pending returns the pending record repository view.
func (s *Store) Pending() *PendingRepo { return &PendingRepo{store: s} }

// Listings returns the listing repository view.
func (s *Store) Listings() *ListingRepo { return &ListingRepo{store: s} }

// Vaults returns the user vault repository view.
func (s *Store) Vaults() *VaultRepo { return &VaultRepo{store: s} }

// Events returns the event log view.
func (s *Store) Events() *EventRepo { return &EventRepo{store: s} }
