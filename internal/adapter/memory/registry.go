package memory

import (
	"context"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// RegistryRepo stores the registry singleton and its fee rates.
type RegistryRepo struct {
	store *Store
}

// Create stores the singleton. A second call fails with ErrAlreadyExists.
func (r *RegistryRepo) Create(ctx context.Context, reg *domain.Registry, fees domain.FeesCollector) error {
	return r.store.view(ctx, func(st *state) error {
		if st.registry != nil {
			return domain.ErrAlreadyExists
		}
		now := r.store.now()
		reg.CreatedAt, reg.UpdatedAt = now, now
		stored := *reg
		st.registry = &stored
		st.fees = fees
		return nil
	})
}

func (r *RegistryRepo) Get(ctx context.Context) (*domain.Registry, error) {
	var out *domain.Registry
	err := r.store.view(ctx, func(st *state) error {
		if st.registry == nil {
			return domain.ErrNotFound
		}
		reg := *st.registry
		out = &reg
		return nil
	})
	return out, err
}

// GetForUpdate is Get; the transaction lock already serializes writers.
func (r *RegistryRepo) GetForUpdate(ctx context.Context) (*domain.Registry, error) {
	return r.Get(ctx)
}

func (r *RegistryRepo) Update(ctx context.Context, reg *domain.Registry) error {
	return r.store.view(ctx, func(st *state) error {
		if st.registry == nil {
			return domain.ErrNotFound
		}
		reg.UpdatedAt = r.store.now()
		stored := *reg
		st.registry = &stored
		return nil
	})
}

func (r *RegistryRepo) GetFees(ctx context.Context) (domain.FeesCollector, error) {
	var out domain.FeesCollector
	err := r.store.view(ctx, func(st *state) error {
		if st.registry == nil {
			return domain.ErrNotFound
		}
		out = st.fees
		return nil
	})
	return out, err
}

func (r *RegistryRepo) UpdateFees(ctx context.Context, fees domain.FeesCollector) error {
	return r.store.view(ctx, func(st *state) error {
		if st.registry == nil {
			return domain.ErrNotFound
		}
		st.fees = fees
		return nil
	})
}
