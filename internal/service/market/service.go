// Package market implements the escrowed listing marketplace.
package market

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

type registryRepo interface {
	Get(ctx context.Context) (*domain.Registry, error)
	GetFees(ctx context.Context) (domain.FeesCollector, error)
}

type assetRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	SetHolder(ctx context.Context, id, holder uuid.UUID) error
}

type listingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	Get(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error)
	GetForUpdate(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error)
	UpdatePrice(ctx context.Context, assetID uuid.UUID, price uint64) error
	Delete(ctx context.Context, assetID uuid.UUID) error
	Search(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
}

type vaultRepo interface {
	Get(ctx context.Context, owner uuid.UUID) (*domain.UserVault, error)
}

type ledger interface {
	Transfer(ctx context.Context, from, to domain.AccountKey, amount uint64) error
	Close(ctx context.Context, key, to domain.AccountKey) (uint64, error)
}

type currencyPricer interface {
	CurrencyPrice(ctx context.Context) (domain.Price, error)
}

type eventLogger interface {
	Log(ctx context.Context, event domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PriceMode selects how a listing price becomes a settlement amount.
type PriceMode string

const (
	// PriceModeStatic settles at the stored listing price in native units.
	PriceModeStatic PriceMode = "static"
	// PriceModeOracle treats the listing price as a fixed-decimals quote and
	// converts it through the currency feed at buy time.
	PriceModeOracle PriceMode = "oracle"
)

// DefaultListingDecimals is the precision of listing prices in oracle mode.
const DefaultListingDecimals uint8 = 6

// Settings configures settlement.
type Settings struct {
	PriceMode       PriceMode
	ListingDecimals uint8
}

// Deps groups the collaborators of the market service.
type Deps struct {
	Registries registryRepo
	Assets     assetRepo
	Listings   listingRepo
	Vaults     vaultRepo
	Ledger     ledger
	Prices     currencyPricer
	Events     eventLogger
	Tx         txManager
	Reserve    domain.ReserveSchedule
}

// Service provides marketplace operations.
type Service struct {
	registries registryRepo
	assets     assetRepo
	listings   listingRepo
	vaults     vaultRepo
	ledger     ledger
	prices     currencyPricer
	events     eventLogger
	tx         txManager
	reserve    domain.ReserveSchedule
	settings   Settings
	log        *slog.Logger
}

// NewService creates a new Market service.
func NewService(log *slog.Logger, deps Deps, settings Settings) *Service {
	if settings.PriceMode == "" {
		settings.PriceMode = PriceModeStatic
	}
	if settings.ListingDecimals == 0 {
		settings.ListingDecimals = DefaultListingDecimals
	}
	return &Service{
		registries: deps.Registries,
		assets:     deps.Assets,
		listings:   deps.Listings,
		vaults:     deps.Vaults,
		ledger:     deps.Ledger,
		prices:     deps.Prices,
		events:     deps.Events,
		tx:         deps.Tx,
		reserve:    deps.Reserve,
		settings:   settings,
		log:        log.With("service", "market"),
	}
}

func amount(v uint64) string { return strconv.FormatUint(v, 10) }
