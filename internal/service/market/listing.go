package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/pkg/ctxutil"
)

// List moves a finalized asset into escrow and opens a listing at price.
// The caller funds the listing reserve.
func (s *Service) List(ctx context.Context, input ListInput) (*domain.Listing, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	listing := &domain.Listing{
		AssetID: input.AssetID,
		Owner:   callerID,
		Price:   input.Price,
		Escrow:  domain.EscrowAuthority(input.AssetID),
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reg, err := s.registries.Get(txCtx)
		if err != nil {
			return fmt.Errorf("get registry: %w", err)
		}

		a, err := s.assets.GetForUpdate(txCtx, input.AssetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidTokenAccount
			}
			return fmt.Errorf("get asset: %w", err)
		}
		if a.Supply != 1 {
			return domain.ErrInvalidMintSupply
		}
		if err := a.Metadata.ValidateCollection(reg.Collection); err != nil {
			return err
		}
		if _, err := a.Metadata.Weight(); err != nil {
			return err
		}
		if !a.HeldBy(callerID) {
			return domain.ErrInvalidTokenAccount
		}

		if err := s.listings.Create(txCtx, listing); err != nil {
			return fmt.Errorf("create listing: %w", err)
		}
		reserve := s.reserve.MinimumBalance(domain.ListingSize)
		if err := s.ledger.Transfer(txCtx, domain.WalletAccount(callerID), domain.ListingAccount(a.ID), reserve); err != nil {
			return fmt.Errorf("fund listing reserve: %w", err)
		}
		if err := s.assets.SetHolder(txCtx, a.ID, listing.Escrow); err != nil {
			return fmt.Errorf("escrow asset: %w", err)
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventList, callerID, map[string]any{
			"price": amount(input.Price),
		}).ForAsset(a.ID))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "asset listed",
		slog.String("asset_id", input.AssetID.String()),
		slog.String("owner", callerID.String()),
		slog.String("price", amount(input.Price)),
	)

	return listing, nil
}

// UpdateListingPrice reprices an open listing. Owner only.
func (s *Service) UpdateListingPrice(ctx context.Context, input UpdatePriceInput) (*domain.Listing, error) {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		listing *domain.Listing
		old     uint64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		listing, err = s.ownedListing(txCtx, input.AssetID, callerID)
		if err != nil {
			return err
		}

		old = listing.Price
		if err := s.listings.UpdatePrice(txCtx, input.AssetID, input.Price); err != nil {
			return fmt.Errorf("update listing price: %w", err)
		}
		listing.Price = input.Price

		return s.events.Log(txCtx, domain.NewEvent(domain.EventListingPriceUpdated, callerID, map[string]any{
			"old": amount(old),
			"new": amount(input.Price),
		}).ForAsset(input.AssetID))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "listing repriced",
		slog.String("asset_id", input.AssetID.String()),
		slog.String("old", amount(old)),
		slog.String("new", amount(input.Price)),
	)

	return listing, nil
}

// Delist returns the escrowed asset to its owner and closes the listing.
// The listing reserve goes back to the owner's wallet.
func (s *Service) Delist(ctx context.Context, assetID uuid.UUID) error {
	callerID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		listing, err := s.ownedListing(txCtx, assetID, callerID)
		if err != nil {
			return err
		}

		if err := s.release(txCtx, listing, listing.Owner, domain.WalletAccount(listing.Owner)); err != nil {
			return err
		}

		return s.events.Log(txCtx, domain.NewEvent(domain.EventDelist, callerID, nil).ForAsset(assetID))
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "asset delisted",
		slog.String("asset_id", assetID.String()),
		slog.String("owner", callerID.String()),
	)

	return nil
}

// GetListing returns the open listing of an asset.
func (s *Service) GetListing(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error) {
	l, err := s.listings.Get(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// ListListings returns open listings matching filter.
func (s *Service) ListListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	listings, err := s.listings.Search(ctx, normalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return listings, nil
}

// ownedListing locks the listing of assetID and checks that caller owns it.
func (s *Service) ownedListing(ctx context.Context, assetID, callerID uuid.UUID) (*domain.Listing, error) {
	listing, err := s.listings.GetForUpdate(ctx, assetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidListing
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing.Owner != callerID {
		return nil, domain.ErrNotOwner
	}
	return listing, nil
}

// release moves the escrowed unit to holder, closes the listing and sends
// its reserve to refundTo.
func (s *Service) release(ctx context.Context, listing *domain.Listing, holder uuid.UUID, refundTo domain.AccountKey) error {
	a, err := s.assets.GetForUpdate(ctx, listing.AssetID)
	if err != nil {
		return fmt.Errorf("get asset: %w", err)
	}
	if a.Holder != listing.Escrow {
		return domain.ErrInvalidListing
	}

	if err := s.assets.SetHolder(ctx, listing.AssetID, holder); err != nil {
		return fmt.Errorf("release escrow: %w", err)
	}
	if err := s.listings.Delete(ctx, listing.AssetID); err != nil {
		return fmt.Errorf("close listing: %w", err)
	}
	if _, err := s.ledger.Close(ctx, domain.ListingAccount(listing.AssetID), refundTo); err != nil {
		return fmt.Errorf("refund listing reserve: %w", err)
	}
	return nil
}
