package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// Init creates the registry with the caller as authority, bootstraps the
// collection and opens both fee pools. The caller funds the pool reserves.
// Fails with domain.ErrAlreadyExists on a second call.
func (s *Service) Init(ctx context.Context, input InitInput) (*domain.Registry, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	reg := &domain.Registry{
		Authority:  callerID,
		Pending:    domain.NoPendingAuthority(),
		Collection: domain.CollectionID(),
	}
	fees := domain.NewFeesCollector(input.FractionalizeFee, input.SellFee)
	wallet := domain.WalletAccount(callerID)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.registries.Create(txCtx, reg, fees); err != nil {
			return fmt.Errorf("create registry: %w", err)
		}

		for _, pool := range []domain.FeePool{domain.FeePoolGeneral, domain.FeePoolMint} {
			floor := s.reserve.MinimumBalance(pool.Size())
			if err := s.ledger.Transfer(txCtx, wallet, pool.Account(), floor); err != nil {
				return fmt.Errorf("fund %s pool reserve: %w", pool, err)
			}
		}

		event := domain.NewEvent(domain.EventRegistryInitialized, callerID, map[string]any{
			"collection":        reg.Collection.String(),
			"fractionalize_fee": input.FractionalizeFee,
			"sell_fee":          input.SellFee,
		})
		if err := s.events.Log(txCtx, event); err != nil {
			return fmt.Errorf("log event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "registry initialized",
		slog.String("authority", callerID.String()),
		slog.String("collection", reg.Collection.String()),
	)

	return reg, nil
}
