package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// UpdateFee changes one fee rate. Authority only.
func (s *Service) UpdateFee(ctx context.Context, input UpdateFeeInput) (domain.FeesCollector, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.FeesCollector{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.FeesCollector{}, err
	}

	var (
		fees     domain.FeesCollector
		previous uint32
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reg, err := s.registries.GetForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("get registry: %w", err)
		}
		if err := reg.RequireAuthority(callerID); err != nil {
			return err
		}

		fees, err = s.registries.GetFees(txCtx)
		if err != nil {
			return fmt.Errorf("get fees: %w", err)
		}
		previous = fees.Rate(input.Kind)
		if err := fees.SetRate(input.Kind, input.Rate); err != nil {
			return err
		}
		if err := s.registries.UpdateFees(txCtx, fees); err != nil {
			return fmt.Errorf("update fees: %w", err)
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventFeeUpdated, callerID, map[string]any{
			"kind": input.Kind.String(),
			"old":  previous,
			"new":  input.Rate,
		}))
	})
	if err != nil {
		return domain.FeesCollector{}, err
	}

	s.log.InfoContext(ctx, "fee updated",
		slog.String("kind", input.Kind.String()),
		slog.Any("old", previous),
		slog.Any("new", input.Rate),
	)

	return fees, nil
}
