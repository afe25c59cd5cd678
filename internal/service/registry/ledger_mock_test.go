package registry

import (
	"context"
	"sync"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

var _ ledger = &ledgerMock{}

type ledgerMock struct {
	BalanceFunc  func(ctx context.Context, key domain.AccountKey) (uint64, error)
	TransferFunc func(ctx context.Context, from domain.AccountKey, to domain.AccountKey, amount uint64) error

	calls struct {
		Balance []struct {
			Ctx context.Context
			Key domain.AccountKey
		}
		Transfer []struct {
			Ctx    context.Context
			From   domain.AccountKey
			To     domain.AccountKey
			Amount uint64
		}
	}
	lockBalance  sync.RWMutex
	lockTransfer sync.RWMutex
}

func (mock *ledgerMock) Balance(ctx context.Context, key domain.AccountKey) (uint64, error) {
	if mock.BalanceFunc == nil {
		panic("ledgerMock.BalanceFunc: method is nil but ledger.Balance was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.AccountKey
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockBalance.Lock()
	mock.calls.Balance = append(mock.calls.Balance, callInfo)
	mock.lockBalance.Unlock()
	return mock.BalanceFunc(ctx, key)
}

// BalanceCalls gets all the calls that were made to Balance.
func (mock *ledgerMock) BalanceCalls() []struct {
	Ctx context.Context
	Key domain.AccountKey
} {
	var calls []struct {
		Ctx context.Context
		Key domain.AccountKey
	}
	mock.lockBalance.RLock()
	calls = mock.calls.Balance
	mock.lockBalance.RUnlock()
	return calls
}

func (mock *ledgerMock) Transfer(ctx context.Context, from domain.AccountKey, to domain.AccountKey, amount uint64) error {
	if mock.TransferFunc == nil {
		panic("ledgerMock.TransferFunc: method is nil but ledger.Transfer was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		From   domain.AccountKey
		To     domain.AccountKey
		Amount uint64
	}{
		Ctx:    ctx,
		From:   from,
		To:     to,
		Amount: amount,
	}
	mock.lockTransfer.Lock()
	mock.calls.Transfer = append(mock.calls.Transfer, callInfo)
	mock.lockTransfer.Unlock()
	return mock.TransferFunc(ctx, from, to, amount)
}

// TransferCalls gets all the calls that were made to Transfer.
func (mock *ledgerMock) TransferCalls() []struct {
	Ctx    context.Context
	From   domain.AccountKey
	To     domain.AccountKey
	Amount uint64
} {
	var calls []struct {
		Ctx    context.Context
		From   domain.AccountKey
		To     domain.AccountKey
		Amount uint64
	}
	mock.lockTransfer.RLock()
	calls = mock.calls.Transfer
	mock.lockTransfer.RUnlock()
	return calls
}
