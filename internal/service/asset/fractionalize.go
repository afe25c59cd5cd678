package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/valuation"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// FractionalizeResult holds both parts after a split.
type FractionalizeResult struct {
	// Source is the original asset rewritten as part A.
	Source *domain.Asset
	// Child is part B, pending until FinalizeFractionalize.
	Child *domain.Asset
	Fee   uint64
}

// Fractionalize splits a finalized asset in two. Part A replaces the source
// in place and is final; part B is a new asset held by the caller that has
// no weight until FinalizeFractionalize. The fractionalize fee is charged on
// the value of the source weight.
func (s *Service) Fractionalize(ctx context.Context, input FractionalizeInput) (*FractionalizeResult, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	quote, err := s.prices.Quote(ctx)
	if err != nil {
		return nil, fmt.Errorf("oracle quote: %w", err)
	}

	wallet := domain.WalletAccount(callerID)
	result := &FractionalizeResult{}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reg, err := s.registries.GetForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("get registry: %w", err)
		}
		fees, err := s.registries.GetFees(txCtx)
		if err != nil {
			return fmt.Errorf("get fees: %w", err)
		}

		source, err := s.assets.GetForUpdate(txCtx, input.AssetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidTokenAccount
			}
			return fmt.Errorf("get asset: %w", err)
		}
		if !source.HeldBy(callerID) {
			return domain.ErrInvalidTokenAccount
		}

		weight, err := source.Metadata.Weight()
		if err != nil {
			return err
		}
		if err := validateFractions(weight, input.A.Weight, input.B.Weight); err != nil {
			return err
		}

		value, err := valuation.Value(quote.Commodity, quote.Currency, weight)
		if err != nil {
			return err
		}
		fee, err := fees.Fee(domain.FeeKindFractionalize, value)
		if err != nil {
			return err
		}
		if err := s.ledger.Transfer(txCtx, wallet, domain.FeesCollectorAccount, fee); err != nil {
			return fmt.Errorf("charge fractionalize fee: %w", err)
		}
		result.Fee = fee

		md := source.Metadata.Clone()
		if err := md.RemoveKey(domain.MetadataKeyWeight, true); err != nil {
			return err
		}
		if err := md.RemoveKey(domain.MetadataKeyCollection, true); err != nil {
			return err
		}
		md.Name, md.Symbol, md.URI = input.A.Name, input.A.Symbol, input.A.URI
		md.Stamp(input.A.Weight, reg.Collection)

		kept, err := md.Weight()
		if err != nil {
			return err
		}
		if err := validateFractions(weight, kept, input.B.Weight); err != nil {
			return err
		}

		if err := s.assets.UpdateMetadata(txCtx, source.ID, md); err != nil {
			return fmt.Errorf("rewrite source metadata: %w", err)
		}
		if err := s.fundMetadata(txCtx, source.ID, md, callerID); err != nil {
			return err
		}
		source.Metadata = md
		result.Source = source

		child, err := s.createAsset(txCtx, reg, input.B.metadata(), callerID, callerID)
		if err != nil {
			return err
		}
		result.Child = child

		pending := &domain.PendingFractionalize{
			AssetID:       child.ID,
			SourceAssetID: source.ID,
			Weight:        input.B.Weight,
			Name:          input.B.Name,
			Symbol:        input.B.Symbol,
			URI:           input.B.URI,
			Payer:         callerID,
		}
		if err := s.pending.CreateFractionalize(txCtx, pending); err != nil {
			return fmt.Errorf("create pending fractionalize: %w", err)
		}
		reserve := s.reserve.MinimumBalance(domain.PendingFractionalizeSize(*pending))
		if err := s.ledger.Transfer(txCtx, wallet, domain.PendingFractionalizeAccount(child.ID), reserve); err != nil {
			return fmt.Errorf("fund pending fractionalize reserve: %w", err)
		}

		payload := map[string]any{
			"source":   source.ID.String(),
			"child":    child.ID.String(),
			"weight":   amount(weight),
			"weight_a": amount(input.A.Weight),
			"weight_b": amount(input.B.Weight),
			"fee":      amount(fee),
		}
		if err := s.events.Log(txCtx, domain.NewEvent(domain.EventFractionalize, callerID, payload).ForAsset(source.ID)); err != nil {
			return err
		}
		return s.events.Log(txCtx, domain.NewEvent(domain.EventFractionalize, callerID, payload).ForAsset(child.ID))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "asset fractionalized",
		slog.String("asset_id", result.Source.ID.String()),
		slog.String("child_id", result.Child.ID.String()),
		slog.String("weight_a", amount(input.A.Weight)),
		slog.String("weight_b", amount(input.B.Weight)),
		slog.String("fee", amount(result.Fee)),
	)

	return result, nil
}
