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

// FinalizeMint stamps the weight and collection recorded at mint time onto
// the asset and closes the pending record. Any caller may finalize; the
// caller pays metadata growth and receives the pending reserve.
func (s *Service) FinalizeMint(ctx context.Context, assetID uuid.UUID) (*domain.Asset, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var finalized *domain.Asset
	var weight uint64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		pending, err := s.pending.DeleteMint(txCtx, assetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidFinalizeData
			}
			return fmt.Errorf("take pending mint: %w", err)
		}
		if pending.AssetID != assetID {
			return domain.ErrMintFinalizeDataMismatch
		}
		weight = pending.Weight

		finalized, err = s.stamp(txCtx, assetID, weight, callerID)
		if err != nil {
			return err
		}

		if _, err := s.ledger.Close(txCtx, domain.PendingMintAccount(assetID), domain.WalletAccount(callerID)); err != nil {
			return fmt.Errorf("close pending mint: %w", err)
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventFinalizeMint, callerID, map[string]any{
			"weight": amount(weight),
		}).ForAsset(assetID))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "mint finalized",
		slog.String("asset_id", assetID.String()),
		slog.String("weight", amount(weight)),
	)

	return finalized, nil
}

// FinalizeFractionalize stamps the weight and collection of a fractionalized
// child and closes its pending record.
func (s *Service) FinalizeFractionalize(ctx context.Context, assetID uuid.UUID) (*domain.Asset, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		finalized *domain.Asset
		pending   *domain.PendingFractionalize
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		pending, err = s.pending.DeleteFractionalize(txCtx, assetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidFinalizeData
			}
			return fmt.Errorf("take pending fractionalize: %w", err)
		}
		if pending.AssetID != assetID {
			return domain.ErrMintFinalizeDataMismatch
		}

		finalized, err = s.stamp(txCtx, assetID, pending.Weight, callerID)
		if err != nil {
			return err
		}

		if _, err := s.ledger.Close(txCtx, domain.PendingFractionalizeAccount(assetID), domain.WalletAccount(callerID)); err != nil {
			return fmt.Errorf("close pending fractionalize: %w", err)
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventFinalizeFractionalize, callerID, map[string]any{
			"source": pending.SourceAssetID.String(),
			"weight": amount(pending.Weight),
		}).ForAsset(assetID))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "fractionalize finalized",
		slog.String("asset_id", assetID.String()),
		slog.String("source", pending.SourceAssetID.String()),
		slog.String("weight", amount(pending.Weight)),
	)

	return finalized, nil
}

// stamp writes weight and the registry collection onto the asset.
func (s *Service) stamp(ctx context.Context, assetID uuid.UUID, weight uint64, payer uuid.UUID) (*domain.Asset, error) {
	reg, err := s.registries.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get registry: %w", err)
	}

	a, err := s.assets.GetForUpdate(ctx, assetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrMintFinalizeDataMismatch
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	if domain.AssetIDFor(a.Discriminant) != assetID {
		return nil, domain.ErrMintFinalizeDataMismatch
	}

	a.Metadata.Stamp(weight, reg.Collection)
	if err := s.assets.UpdateMetadata(ctx, assetID, a.Metadata); err != nil {
		return nil, fmt.Errorf("update metadata: %w", err)
	}
	if err := s.fundMetadata(ctx, assetID, a.Metadata, payer); err != nil {
		return nil, err
	}
	return a, nil
}
