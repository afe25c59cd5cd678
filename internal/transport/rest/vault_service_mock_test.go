package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/service/vault"
)

var _ vaultService = &vaultServiceMock{}

type vaultServiceMock struct {
	AirdropFunc         func(ctx context.Context, amount uint64) (uint64, error)
	CreateUserVaultFunc func(ctx context.Context) (*domain.UserVault, error)
	GetFunc             func(ctx context.Context, owner uuid.UUID) (*domain.UserVault, error)
	UserWithdrawFunc    func(ctx context.Context, input vault.UserWithdrawInput) error
	WalletBalanceFunc   func(ctx context.Context, owner uuid.UUID) (uint64, error)

	calls struct {
		Airdrop []struct {
			Ctx    context.Context
			Amount uint64
		}
		CreateUserVault []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx   context.Context
			Owner uuid.UUID
		}
		UserWithdraw []struct {
			Ctx   context.Context
			Input vault.UserWithdrawInput
		}
		WalletBalance []struct {
			Ctx   context.Context
			Owner uuid.UUID
		}
	}
	lockAirdrop         sync.RWMutex
	lockCreateUserVault sync.RWMutex
	lockGet             sync.RWMutex
	lockUserWithdraw    sync.RWMutex
	lockWalletBalance   sync.RWMutex
}

func (mock *vaultServiceMock) Airdrop(ctx context.Context, amount uint64) (uint64, error) {
	if mock.AirdropFunc == nil {
		panic("vaultServiceMock.AirdropFunc: method is nil but vaultService.Airdrop was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Amount uint64
	}{
		Ctx:    ctx,
		Amount: amount,
	}
	mock.lockAirdrop.Lock()
	mock.calls.Airdrop = append(mock.calls.Airdrop, callInfo)
	mock.lockAirdrop.Unlock()
	return mock.AirdropFunc(ctx, amount)
}

// AirdropCalls gets all the calls that were made to Airdrop.
func (mock *vaultServiceMock) AirdropCalls() []struct {
	Ctx    context.Context
	Amount uint64
} {
	var calls []struct {
		Ctx    context.Context
		Amount uint64
	}
	mock.lockAirdrop.RLock()
	calls = mock.calls.Airdrop
	mock.lockAirdrop.RUnlock()
	return calls
}

func (mock *vaultServiceMock) CreateUserVault(ctx context.Context) (*domain.UserVault, error) {
	if mock.CreateUserVaultFunc == nil {
		panic("vaultServiceMock.CreateUserVaultFunc: method is nil but vaultService.CreateUserVault was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCreateUserVault.Lock()
	mock.calls.CreateUserVault = append(mock.calls.CreateUserVault, callInfo)
	mock.lockCreateUserVault.Unlock()
	return mock.CreateUserVaultFunc(ctx)
}

// CreateUserVaultCalls gets all the calls that were made to CreateUserVault.
func (mock *vaultServiceMock) CreateUserVaultCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCreateUserVault.RLock()
	calls = mock.calls.CreateUserVault
	mock.lockCreateUserVault.RUnlock()
	return calls
}

func (mock *vaultServiceMock) Get(ctx context.Context, owner uuid.UUID) (*domain.UserVault, error) {
	if mock.GetFunc == nil {
		panic("vaultServiceMock.GetFunc: method is nil but vaultService.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner uuid.UUID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, owner)
}

// GetCalls gets all the calls that were made to Get.
func (mock *vaultServiceMock) GetCalls() []struct {
	Ctx   context.Context
	Owner uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		Owner uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *vaultServiceMock) UserWithdraw(ctx context.Context, input vault.UserWithdrawInput) error {
	if mock.UserWithdrawFunc == nil {
		panic("vaultServiceMock.UserWithdrawFunc: method is nil but vaultService.UserWithdraw was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vault.UserWithdrawInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUserWithdraw.Lock()
	mock.calls.UserWithdraw = append(mock.calls.UserWithdraw, callInfo)
	mock.lockUserWithdraw.Unlock()
	return mock.UserWithdrawFunc(ctx, input)
}

// UserWithdrawCalls gets all the calls that were made to UserWithdraw.
func (mock *vaultServiceMock) UserWithdrawCalls() []struct {
	Ctx   context.Context
	Input vault.UserWithdrawInput
} {
	var calls []struct {
		Ctx   context.Context
		Input vault.UserWithdrawInput
	}
	mock.lockUserWithdraw.RLock()
	calls = mock.calls.UserWithdraw
	mock.lockUserWithdraw.RUnlock()
	return calls
}

func (mock *vaultServiceMock) WalletBalance(ctx context.Context, owner uuid.UUID) (uint64, error) {
	if mock.WalletBalanceFunc == nil {
		panic("vaultServiceMock.WalletBalanceFunc: method is nil but vaultService.WalletBalance was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner uuid.UUID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockWalletBalance.Lock()
	mock.calls.WalletBalance = append(mock.calls.WalletBalance, callInfo)
	mock.lockWalletBalance.Unlock()
	return mock.WalletBalanceFunc(ctx, owner)
}

// WalletBalanceCalls gets all the calls that were made to WalletBalance.
func (mock *vaultServiceMock) WalletBalanceCalls() []struct {
	Ctx   context.Context
	Owner uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		Owner uuid.UUID
	}
	mock.lockWalletBalance.RLock()
	calls = mock.calls.WalletBalance
	mock.lockWalletBalance.RUnlock()
	return calls
}
