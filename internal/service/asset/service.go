// Package asset implements the asset lifecycle: minting against the oracle
// price, finalization, fractionalization, burn and admin metadata edits.
package asset

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

type registryRepo interface {
	Get(ctx context.Context) (*domain.Registry, error)
	GetForUpdate(ctx context.Context) (*domain.Registry, error)
	Update(ctx context.Context, reg *domain.Registry) error
	GetFees(ctx context.Context) (domain.FeesCollector, error)
}

type assetRepo interface {
	Create(ctx context.Context, a *domain.Asset) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, md domain.Metadata) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByHolder(ctx context.Context, holder uuid.UUID, limit, offset int) ([]domain.Asset, error)
}

type pendingRepo interface {
	CreateMint(ctx context.Context, p *domain.PendingMint) error
	DeleteMint(ctx context.Context, assetID uuid.UUID) (*domain.PendingMint, error)
	CreateFractionalize(ctx context.Context, p *domain.PendingFractionalize) error
	DeleteFractionalize(ctx context.Context, assetID uuid.UUID) (*domain.PendingFractionalize, error)
}

type ledger interface {
	Balance(ctx context.Context, key domain.AccountKey) (uint64, error)
	Transfer(ctx context.Context, from, to domain.AccountKey, amount uint64) error
	Close(ctx context.Context, key, to domain.AccountKey) (uint64, error)
}

type pricer interface {
	Quote(ctx context.Context) (domain.Quote, error)
}

type eventLogger interface {
	Log(ctx context.Context, event domain.Event) error
	ListByAsset(ctx context.Context, assetID uuid.UUID, limit int) ([]domain.Event, error)
	List(ctx context.Context, limit int) ([]domain.Event, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides asset lifecycle operations.
type Service struct {
	registries registryRepo
	assets     assetRepo
	pending    pendingRepo
	ledger     ledger
	prices     pricer
	events     eventLogger
	tx         txManager
	reserve    domain.ReserveSchedule
	log        *slog.Logger
}

// Deps groups the collaborators of the asset service.
type Deps struct {
	Registries registryRepo
	Assets     assetRepo
	Pending    pendingRepo
	Ledger     ledger
	Prices     pricer
	Events     eventLogger
	Tx         txManager
	Reserve    domain.ReserveSchedule
}

// NewService creates a new Asset service.
func NewService(log *slog.Logger, deps Deps) *Service {
	return &Service{
		registries: deps.Registries,
		assets:     deps.Assets,
		pending:    deps.Pending,
		ledger:     deps.Ledger,
		prices:     deps.Prices,
		events:     deps.Events,
		tx:         deps.Tx,
		reserve:    deps.Reserve,
		log:        log.With("service", "asset"),
	}
}

// fundMetadata brings the metadata reserve of an asset up to the floor of its
// current size, paid from payer's wallet. Shrinking never refunds.
func (s *Service) fundMetadata(ctx context.Context, assetID uuid.UUID, md domain.Metadata, payer uuid.UUID) error {
	account := domain.MetadataAccount(assetID)
	need := s.reserve.MinimumBalance(md.PackedLen())

	have, err := s.ledger.Balance(ctx, account)
	if err != nil {
		return fmt.Errorf("metadata reserve balance: %w", err)
	}
	if have >= need {
		return nil
	}
	if err := s.ledger.Transfer(ctx, domain.WalletAccount(payer), account, need-have); err != nil {
		return fmt.Errorf("fund metadata reserve: %w", err)
	}
	return nil
}

// createAsset stores a new single-unit asset for holder under the next
// discriminant and funds its metadata reserve from payer.
func (s *Service) createAsset(ctx context.Context, reg *domain.Registry, md domain.Metadata, holder, payer uuid.UUID) (*domain.Asset, error) {
	d, err := reg.NextDiscriminant()
	if err != nil {
		return nil, err
	}
	if err := s.registries.Update(ctx, reg); err != nil {
		return nil, fmt.Errorf("advance discriminant: %w", err)
	}

	md.Set(domain.MetadataKeyDiscriminant, strconv.FormatUint(d, 10))
	a := &domain.Asset{
		ID:           domain.AssetIDFor(d),
		Discriminant: d,
		Holder:       holder,
		Supply:       1,
		Metadata:     md,
	}
	if err := s.assets.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	if err := s.fundMetadata(ctx, a.ID, a.Metadata, payer); err != nil {
		return nil, err
	}
	return a, nil
}

func amount(v uint64) string { return strconv.FormatUint(v, 10) }
