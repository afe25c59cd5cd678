package asset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/valuation"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// MintResult is the asset created by Mint and the amount charged for it.
type MintResult struct {
	Asset *domain.Asset
	Value uint64
}

// Mint charges the caller the oracle value of the weight into the mint fee
// pool and creates a single-unit asset for the recipient. The asset carries
// no weight or collection until FinalizeMint.
func (s *Service) Mint(ctx context.Context, input MintInput) (*MintResult, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	recipient := input.Recipient
	if recipient == uuid.Nil {
		recipient = callerID
	}

	quote, err := s.prices.Quote(ctx)
	if err != nil {
		return nil, fmt.Errorf("oracle quote: %w", err)
	}
	value, err := valuation.Value(quote.Commodity, quote.Currency, input.Weight)
	if err != nil {
		return nil, err
	}

	wallet := domain.WalletAccount(callerID)
	var created *domain.Asset

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reg, err := s.registries.GetForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("get registry: %w", err)
		}

		if err := s.ledger.Transfer(txCtx, wallet, domain.MintFeesCollectorAccount, value); err != nil {
			return fmt.Errorf("charge mint value: %w", err)
		}

		md := domain.Metadata{Name: input.Name, Symbol: input.Symbol, URI: input.URI}
		created, err = s.createAsset(txCtx, reg, md, recipient, callerID)
		if err != nil {
			return err
		}

		pending := &domain.PendingMint{
			AssetID: created.ID,
			Weight:  input.Weight,
			Payer:   callerID,
		}
		if err := s.pending.CreateMint(txCtx, pending); err != nil {
			return fmt.Errorf("create pending mint: %w", err)
		}
		reserve := s.reserve.MinimumBalance(domain.PendingMintSize)
		if err := s.ledger.Transfer(txCtx, wallet, domain.PendingMintAccount(created.ID), reserve); err != nil {
			return fmt.Errorf("fund pending mint reserve: %w", err)
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventMint, callerID, map[string]any{
			"recipient":    recipient.String(),
			"weight":       amount(input.Weight),
			"price":        amount(value),
			"discriminant": amount(created.Discriminant),
		}).ForAsset(created.ID))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "asset minted",
		slog.String("asset_id", created.ID.String()),
		slog.String("recipient", recipient.String()),
		slog.String("weight", amount(input.Weight)),
		slog.String("price", amount(value)),
	)

	return &MintResult{Asset: created, Value: value}, nil
}
