package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// UpdateMetadataField changes the name, symbol or uri of any asset.
// Authority only. Growth of the record is funded by the authority.
func (s *Service) UpdateMetadataField(ctx context.Context, input UpdateMetadataFieldInput) (*domain.Asset, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Asset
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reg, err := s.registries.Get(txCtx)
		if err != nil {
			return fmt.Errorf("get registry: %w", err)
		}
		if err := reg.RequireAuthority(callerID); err != nil {
			return err
		}

		updated, err = s.assets.GetForUpdate(txCtx, input.AssetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidMetadata
			}
			return fmt.Errorf("get asset: %w", err)
		}

		if err := updated.Metadata.SetField(input.Field, input.Value); err != nil {
			return err
		}
		if err := s.assets.UpdateMetadata(txCtx, updated.ID, updated.Metadata); err != nil {
			return fmt.Errorf("update metadata: %w", err)
		}
		if err := s.fundMetadata(txCtx, updated.ID, updated.Metadata, callerID); err != nil {
			return err
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventMetadataUpdated, callerID, map[string]any{
			"field": input.Field.String(),
			"value": input.Value,
		}).ForAsset(updated.ID))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "metadata updated",
		slog.String("asset_id", input.AssetID.String()),
		slog.String("field", input.Field.String()),
	)

	return updated, nil
}
