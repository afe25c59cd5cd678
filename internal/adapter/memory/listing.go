package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// ListingRepo stores open listings keyed by asset.
type ListingRepo struct {
	store *Store
}

func (r *ListingRepo) Create(ctx context.Context, l *domain.Listing) error {
	return r.store.view(ctx, func(st *state) error {
		if _, ok := st.listings[l.AssetID]; ok {
			return domain.ErrAlreadyExists
		}
		now := r.store.now()
		l.CreatedAt, l.UpdatedAt = now, now
		st.listings[l.AssetID] = *l
		return nil
	})
}

func (r *ListingRepo) Get(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error) {
	var out *domain.Listing
	err := r.store.view(ctx, func(st *state) error {
		l, ok := st.listings[assetID]
		if !ok {
			return domain.ErrNotFound
		}
		out = &l
		return nil
	})
	return out, err
}

// GetForUpdate is Get; the transaction lock already serializes writers.
func (r *ListingRepo) GetForUpdate(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error) {
	return r.Get(ctx, assetID)
}

func (r *ListingRepo) UpdatePrice(ctx context.Context, assetID uuid.UUID, price uint64) error {
	return r.store.view(ctx, func(st *state) error {
		l, ok := st.listings[assetID]
		if !ok {
			return domain.ErrNotFound
		}
		l.Price = price
		l.UpdatedAt = r.store.now()
		st.listings[assetID] = l
		return nil
	})
}

func (r *ListingRepo) Delete(ctx context.Context, assetID uuid.UUID) error {
	return r.store.view(ctx, func(st *state) error {
		if _, ok := st.listings[assetID]; !ok {
			return domain.ErrNotFound
		}
		delete(st.listings, assetID)
		return nil
	})
}

// Search returns listings matching filter, oldest first.
func (r *ListingRepo) Search(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	var out []domain.Listing
	err := r.store.view(ctx, func(st *state) error {
		for _, l := range st.listings {
			if filter.Owner != nil && l.Owner != *filter.Owner {
				continue
			}
			if !filter.InRange(l.Price) {
				continue
			}
			out = append(out, l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b domain.Listing) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.AssetID.String(), b.AssetID.String())
	})
	return page(out, filter.Limit, filter.Offset), nil
}
