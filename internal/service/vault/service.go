// Package vault implements user proceeds vaults and wallet funding.
package vault

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

type vaultRepo interface {
	Create(ctx context.Context, v *domain.UserVault) error
	Get(ctx context.Context, owner uuid.UUID) (*domain.UserVault, error)
}

type ledger interface {
	Balance(ctx context.Context, key domain.AccountKey) (uint64, error)
	Transfer(ctx context.Context, from, to domain.AccountKey, amount uint64) error
	Credit(ctx context.Context, key domain.AccountKey, amount uint64) error
}

type eventLogger interface {
	Log(ctx context.Context, event domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides user vault operations.
type Service struct {
	vaults  vaultRepo
	ledger  ledger
	events  eventLogger
	tx      txManager
	reserve domain.ReserveSchedule
	log     *slog.Logger
}

// NewService creates a new Vault service.
func NewService(
	log *slog.Logger,
	vaults vaultRepo,
	ledger ledger,
	events eventLogger,
	tx txManager,
	reserve domain.ReserveSchedule,
) *Service {
	return &Service{
		vaults:  vaults,
		ledger:  ledger,
		events:  events,
		tx:      tx,
		reserve: reserve,
		log:     log.With("service", "vault"),
	}
}

// UserWithdrawInput moves proceeds out of a vault.
type UserWithdrawInput struct {
	// Owner defaults to the caller.
	Owner  uuid.UUID
	Amount uint64
}

// Validate checks all fields and collects all errors.
func (i UserWithdrawInput) Validate() error {
	if i.Amount == 0 {
		return domain.NewValidationError("amount", "must be positive")
	}
	return nil
}

// CreateUserVault opens the caller's vault. The caller funds its reserve.
func (s *Service) CreateUserVault(ctx context.Context) (*domain.UserVault, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	v := &domain.UserVault{Owner: callerID}
	floor := s.reserve.MinimumBalance(domain.UserVaultSize)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.vaults.Create(txCtx, v); err != nil {
			return fmt.Errorf("create vault: %w", err)
		}
		if err := s.ledger.Transfer(txCtx, domain.WalletAccount(callerID), domain.VaultAccount(callerID), floor); err != nil {
			return fmt.Errorf("fund vault reserve: %w", err)
		}
		return s.events.Log(txCtx, domain.NewEvent(domain.EventVaultCreated, callerID, map[string]any{
			"reserve": strconv.FormatUint(floor, 10),
		}))
	})
	if err != nil {
		return nil, err
	}
	v.Balance = floor

	s.log.InfoContext(ctx, "user vault created", slog.String("owner", callerID.String()))

	return v, nil
}

// UserWithdraw moves proceeds from the owner's vault to the owner's wallet.
// The vault may be drained down to exactly its reserve floor.
func (s *Service) UserWithdraw(ctx context.Context, input UserWithdrawInput) error {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	owner := input.Owner
	if owner == uuid.Nil {
		owner = callerID
	}
	if owner != callerID {
		return domain.ErrNotOwner
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.vaults.Get(txCtx, owner); err != nil {
			return fmt.Errorf("get vault: %w", err)
		}

		balance, err := s.ledger.Balance(txCtx, domain.VaultAccount(owner))
		if err != nil {
			return fmt.Errorf("vault balance: %w", err)
		}
		if input.Amount > s.reserve.Withdrawable(balance, domain.UserVaultSize) {
			return domain.ErrInsufficientFunds
		}

		if err := s.ledger.Transfer(txCtx, domain.VaultAccount(owner), domain.WalletAccount(owner), input.Amount); err != nil {
			return fmt.Errorf("withdraw: %w", err)
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventUserWithdraw, callerID, map[string]any{
			"amount": strconv.FormatUint(input.Amount, 10),
		}))
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "user withdraw",
		slog.String("owner", owner.String()),
		slog.String("amount", strconv.FormatUint(input.Amount, 10)),
	)

	return nil
}

// Get returns the vault of owner with its current balance.
func (s *Service) Get(ctx context.Context, owner uuid.UUID) (*domain.UserVault, error) {
	v, err := s.vaults.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get vault: %w", err)
	}
	v.Balance, err = s.ledger.Balance(ctx, domain.VaultAccount(owner))
	if err != nil {
		return nil, fmt.Errorf("vault balance: %w", err)
	}
	return v, nil
}

// WalletBalance returns the spendable balance of owner.
func (s *Service) WalletBalance(ctx context.Context, owner uuid.UUID) (uint64, error) {
	b, err := s.ledger.Balance(ctx, domain.WalletAccount(owner))
	if err != nil {
		return 0, fmt.Errorf("wallet balance: %w", err)
	}
	return b, nil
}

// Airdrop credits the caller's wallet. It exists for development and test
// deployments where no external funding source is wired.
func (s *Service) Airdrop(ctx context.Context, amount uint64) (uint64, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if amount == 0 {
		return 0, domain.NewValidationError("amount", "must be positive")
	}

	wallet := domain.WalletAccount(callerID)
	if err := s.ledger.Credit(ctx, wallet, amount); err != nil {
		return 0, fmt.Errorf("credit wallet: %w", err)
	}
	balance, err := s.ledger.Balance(ctx, wallet)
	if err != nil {
		return 0, fmt.Errorf("wallet balance: %w", err)
	}

	s.log.InfoContext(ctx, "airdrop",
		slog.String("owner", callerID.String()),
		slog.String("amount", strconv.FormatUint(amount, 10)),
	)

	return balance, nil
}
