package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/valuation"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// BuyResult summarizes a settled sale.
type BuyResult struct {
	Listing    domain.Listing
	Settlement uint64
	Fee        uint64
}

// Buy settles a listing. The buyer pays the settlement price into the
// seller's vault and the sell fee on top of it into the general fee pool,
// then receives the escrowed unit. The listing reserve goes to the seller's
// vault.
func (s *Service) Buy(ctx context.Context, input BuyInput) (*BuyResult, error) {
	buyerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var currency *domain.Price
	if s.settings.PriceMode == PriceModeOracle {
		p, err := s.prices.CurrencyPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("oracle price: %w", err)
		}
		currency = &p
	}

	buyerWallet := domain.WalletAccount(buyerID)
	result := &BuyResult{}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		listing, err := s.listings.GetForUpdate(txCtx, input.AssetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidListing
			}
			return fmt.Errorf("get listing: %w", err)
		}
		if listing.Owner != input.Seller {
			return domain.ErrNotOwner
		}
		if _, err := s.vaults.Get(txCtx, listing.Owner); err != nil {
			return fmt.Errorf("seller vault: %w", err)
		}

		settlement := listing.Price
		if currency != nil {
			settlement, err = valuation.ListingPrice(listing.Price, s.settings.ListingDecimals, *currency)
			if err != nil {
				return err
			}
		}

		fees, err := s.registries.GetFees(txCtx)
		if err != nil {
			return fmt.Errorf("get fees: %w", err)
		}
		fee, err := fees.Fee(domain.FeeKindSell, settlement)
		if err != nil {
			return err
		}

		sellerVault := domain.VaultAccount(listing.Owner)
		if err := s.ledger.Transfer(txCtx, buyerWallet, domain.FeesCollectorAccount, fee); err != nil {
			return fmt.Errorf("pay sell fee: %w", err)
		}
		if err := s.ledger.Transfer(txCtx, buyerWallet, sellerVault, settlement); err != nil {
			return fmt.Errorf("pay seller: %w", err)
		}

		if err := s.release(txCtx, listing, buyerID, sellerVault); err != nil {
			return err
		}

		result.Listing = *listing
		result.Settlement = settlement
		result.Fee = fee

		return s.events.Log(txCtx, domain.NewEvent(domain.EventBuy, buyerID, map[string]any{
			"buyer":      buyerID.String(),
			"seller":     listing.Owner.String(),
			"price":      amount(listing.Price),
			"settlement": amount(settlement),
			"fee":        amount(fee),
		}).ForAsset(listing.AssetID))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "asset sold",
		slog.String("asset_id", input.AssetID.String()),
		slog.String("buyer", buyerID.String()),
		slog.String("seller", input.Seller.String()),
		slog.String("settlement", amount(result.Settlement)),
		slog.String("fee", amount(result.Fee)),
	)

	return result, nil
}
