package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// VaultRepo stores user vault records. Balances live in the ledger.
type VaultRepo struct {
	store *Store
}

func (r *VaultRepo) Create(ctx context.Context, v *domain.UserVault) error {
	return r.store.view(ctx, func(st *state) error {
		if _, ok := st.vaults[v.Owner]; ok {
			return domain.ErrAlreadyExists
		}
		v.CreatedAt = r.store.now()
		stored := *v
		stored.Balance = 0
		st.vaults[v.Owner] = stored
		return nil
	})
}

func (r *VaultRepo) Get(ctx context.Context, owner uuid.UUID) (*domain.UserVault, error) {
	var out *domain.UserVault
	err := r.store.view(ctx, func(st *state) error {
		v, ok := st.vaults[owner]
		if !ok {
			return domain.ErrNotFound
		}
		out = &v
		return nil
	})
	return out, err
}
