package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// Burn destroys a finalized asset held by the authority and closes its
// record. The metadata reserve is refunded to the authority.
func (s *Service) Burn(ctx context.Context, assetID uuid.UUID) error {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var (
		weight   uint64
		refunded uint64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reg, err := s.registries.Get(txCtx)
		if err != nil {
			return fmt.Errorf("get registry: %w", err)
		}
		if err := reg.RequireAuthority(callerID); err != nil {
			return err
		}

		a, err := s.assets.GetForUpdate(txCtx, assetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidTokenAccount
			}
			return fmt.Errorf("get asset: %w", err)
		}
		if !a.HeldBy(callerID) {
			return domain.ErrInvalidTokenAccount
		}
		weight, err = a.Metadata.Weight()
		if err != nil {
			return err
		}

		if err := s.assets.Delete(txCtx, assetID); err != nil {
			return fmt.Errorf("delete asset: %w", err)
		}
		refunded, err = s.ledger.Close(txCtx, domain.MetadataAccount(assetID), domain.WalletAccount(callerID))
		if err != nil {
			return fmt.Errorf("close metadata reserve: %w", err)
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventBurn, callerID, map[string]any{
			"weight":   amount(weight),
			"refunded": amount(refunded),
		}).ForAsset(assetID))
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "asset burned",
		slog.String("asset_id", assetID.String()),
		slog.String("weight", amount(weight)),
		slog.String("refunded", amount(refunded)),
	)

	return nil
}
