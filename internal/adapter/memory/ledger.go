package memory

import (
	"context"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// Ledger is the native currency ledger. Absent accounts hold zero.
type Ledger struct {
	store *Store
}

func (l *Ledger) Balance(ctx context.Context, key domain.AccountKey) (uint64, error) {
	var out uint64
	err := l.store.view(ctx, func(st *state) error {
		out = st.balances[key]
		return nil
	})
	return out, err
}

// Transfer moves amount from one account to another.
// Fails with ErrInsufficientFunds if from holds less than amount.
func (l *Ledger) Transfer(ctx context.Context, from, to domain.AccountKey, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}
	return l.store.view(ctx, func(st *state) error {
		if st.balances[from] < amount {
			return domain.ErrInsufficientFunds
		}
		if err := credit(st, to, amount); err != nil {
			return err
		}
		st.balances[from] -= amount
		return nil
	})
}

// Credit mints amount into key.
func (l *Ledger) Credit(ctx context.Context, key domain.AccountKey, amount uint64) error {
	if amount == 0 {
		return nil
	}
	return l.store.view(ctx, func(st *state) error {
		return credit(st, key, amount)
	})
}

// Close moves the whole balance of key to another account and forgets key.
func (l *Ledger) Close(ctx context.Context, key, to domain.AccountKey) (uint64, error) {
	var moved uint64
	err := l.store.view(ctx, func(st *state) error {
		moved = st.balances[key]
		if moved > 0 {
			if err := credit(st, to, moved); err != nil {
				return err
			}
		}
		delete(st.balances, key)
		return nil
	})
	return moved, err
}

func credit(st *state, key domain.AccountKey, amount uint64) error {
	cur := st.balances[key]
	if cur+amount < cur {
		return domain.ErrOverflow
	}
	st.balances[key] = cur + amount
	return nil
}
