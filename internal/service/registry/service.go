// Package registry implements the registry singleton operations: bootstrap,
// fee configuration, protocol revenue withdrawal and the two-step authority
// handoff.
package registry

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

type registryRepo interface {
	Create(ctx context.Context, reg *domain.Registry, fees domain.FeesCollector) error
	Get(ctx context.Context) (*domain.Registry, error)
	GetForUpdate(ctx context.Context) (*domain.Registry, error)
	Update(ctx context.Context, reg *domain.Registry) error
	GetFees(ctx context.Context) (domain.FeesCollector, error)
	UpdateFees(ctx context.Context, fees domain.FeesCollector) error
}

type ledger interface {
	Balance(ctx context.Context, key domain.AccountKey) (uint64, error)
	Transfer(ctx context.Context, from, to domain.AccountKey, amount uint64) error
}

type eventLogger interface {
	Log(ctx context.Context, event domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides registry administration operations.
type Service struct {
	registries registryRepo
	ledger     ledger
	events     eventLogger
	tx         txManager
	reserve    domain.ReserveSchedule
	log        *slog.Logger
}

// NewService creates a new Registry service.
func NewService(
	log *slog.Logger,
	registries registryRepo,
	ledger ledger,
	events eventLogger,
	tx txManager,
	reserve domain.ReserveSchedule,
) *Service {
	return &Service{
		registries: registries,
		ledger:     ledger,
		events:     events,
		tx:         tx,
		reserve:    reserve,
		log:        log.With("service", "registry"),
	}
}

// Overview is the registry state together with the pool balances.
type Overview struct {
	Registry           *domain.Registry
	Fees               domain.FeesCollector
	FeePoolBalance     uint64
	MintFeePoolBalance uint64
}

func amount(v uint64) string { return strconv.FormatUint(v, 10) }
