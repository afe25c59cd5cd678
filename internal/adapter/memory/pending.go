package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// PendingRepo stores the deferred records of mint and fractionalize.
// Both kinds are keyed by the asset they finalize.
type PendingRepo struct {
	store *Store
}

func (r *PendingRepo) CreateMint(ctx context.Context, p *domain.PendingMint) error {
	return r.store.view(ctx, func(st *state) error {
		if _, ok := st.pendingMints[p.AssetID]; ok {
			return domain.ErrAlreadyExists
		}
		p.CreatedAt = r.store.now()
		st.pendingMints[p.AssetID] = *p
		return nil
	})
}

func (r *PendingRepo) GetMint(ctx context.Context, assetID uuid.UUID) (*domain.PendingMint, error) {
	var out *domain.PendingMint
	err := r.store.view(ctx, func(st *state) error {
		p, ok := st.pendingMints[assetID]
		if !ok {
			return domain.ErrNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

// DeleteMint removes and returns the pending mint of assetID.
func (r *PendingRepo) DeleteMint(ctx context.Context, assetID uuid.UUID) (*domain.PendingMint, error) {
	var out *domain.PendingMint
	err := r.store.view(ctx, func(st *state) error {
		p, ok := st.pendingMints[assetID]
		if !ok {
			return domain.ErrNotFound
		}
		delete(st.pendingMints, assetID)
		out = &p
		return nil
	})
	return out, err
}

func (r *PendingRepo) CreateFractionalize(ctx context.Context, p *domain.PendingFractionalize) error {
	return r.store.view(ctx, func(st *state) error {
		if _, ok := st.pendingFracs[p.AssetID]; ok {
			return domain.ErrAlreadyExists
		}
		p.CreatedAt = r.store.now()
		st.pendingFracs[p.AssetID] = *p
		return nil
	})
}

func (r *PendingRepo) GetFractionalize(ctx context.Context, assetID uuid.UUID) (*domain.PendingFractionalize, error) {
	var out *domain.PendingFractionalize
	err := r.store.view(ctx, func(st *state) error {
		p, ok := st.pendingFracs[assetID]
		if !ok {
			return domain.ErrNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

// DeleteFractionalize removes and returns the pending fractionalize record of assetID.
func (r *PendingRepo) DeleteFractionalize(ctx context.Context, assetID uuid.UUID) (*domain.PendingFractionalize, error) {
	var out *domain.PendingFractionalize
	err := r.store.view(ctx, func(st *state) error {
		p, ok := st.pendingFracs[assetID]
		if !ok {
			return domain.ErrNotFound
		}
		delete(st.pendingFracs, assetID)
		out = &p
		return nil
	})
	return out, err
}
