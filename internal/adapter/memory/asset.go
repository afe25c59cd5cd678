package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// AssetRepo stores assets and their metadata.
type AssetRepo struct {
	store *Store
}

func (r *AssetRepo) Create(ctx context.Context, a *domain.Asset) error {
	return r.store.view(ctx, func(st *state) error {
		if _, ok := st.assets[a.ID]; ok {
			return domain.ErrAlreadyExists
		}
		now := r.store.now()
		a.CreatedAt, a.UpdatedAt = now, now
		stored := *a
		stored.Metadata = a.Metadata.Clone()
		st.assets[a.ID] = stored
		return nil
	})
}

func (r *AssetRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	var out *domain.Asset
	err := r.store.view(ctx, func(st *state) error {
		a, ok := st.assets[id]
		if !ok {
			return domain.ErrNotFound
		}
		a.Metadata = a.Metadata.Clone()
		out = &a
		return nil
	})
	return out, err
}

// GetForUpdate is Get; the transaction lock already serializes writers.
func (r *AssetRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	return r.Get(ctx, id)
}

func (r *AssetRepo) UpdateMetadata(ctx context.Context, id uuid.UUID, md domain.Metadata) error {
	return r.mutate(ctx, id, func(a *domain.Asset) {
		a.Metadata = md.Clone()
	})
}

// SetHolder moves the single unit of the asset to holder.
func (r *AssetRepo) SetHolder(ctx context.Context, id, holder uuid.UUID) error {
	return r.mutate(ctx, id, func(a *domain.Asset) {
		a.Holder = holder
	})
}

// Delete burns the asset and closes its record.
func (r *AssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.view(ctx, func(st *state) error {
		if _, ok := st.assets[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.assets, id)
		return nil
	})
}

// ListByHolder returns the assets held by holder ordered by discriminant.
func (r *AssetRepo) ListByHolder(ctx context.Context, holder uuid.UUID, limit, offset int) ([]domain.Asset, error) {
	var out []domain.Asset
	err := r.store.view(ctx, func(st *state) error {
		for _, a := range st.assets {
			if a.Holder == holder {
				a.Metadata = a.Metadata.Clone()
				out = append(out, a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b domain.Asset) int {
		if a.Discriminant != b.Discriminant {
			if a.Discriminant < b.Discriminant {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return page(out, limit, offset), nil
}

func (r *AssetRepo) mutate(ctx context.Context, id uuid.UUID, fn func(a *domain.Asset)) error {
	return r.store.view(ctx, func(st *state) error {
		a, ok := st.assets[id]
		if !ok {
			return domain.ErrNotFound
		}
		fn(&a)
		a.UpdatedAt = r.store.now()
		st.assets[id] = a
		return nil
	})
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
