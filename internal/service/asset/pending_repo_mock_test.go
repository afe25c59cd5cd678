package asset

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/bullion-registry/internal/domain"
)

var _ pendingRepo = &pendingRepoMock{}

type pendingRepoMock struct {
	CreateFractionalizeFunc func(ctx context.Context, p *domain.PendingFractionalize) error
	CreateMintFunc          func(ctx context.Context, p *domain.PendingMint) error
	DeleteFractionalizeFunc func(ctx context.Context, assetID uuid.UUID) (*domain.PendingFractionalize, error)
	DeleteMintFunc          func(ctx context.Context, assetID uuid.UUID) (*domain.PendingMint, error)

	calls struct {
		CreateFractionalize []struct {
			Ctx context.Context
			P   *domain.PendingFractionalize
		}
		CreateMint []struct {
			Ctx context.Context
			P   *domain.PendingMint
		}
		DeleteFractionalize []struct {
			Ctx     context.Context
			AssetID uuid.UUID
		}
		DeleteMint []struct {
			Ctx     context.Context
			AssetID uuid.UUID
		}
	}
	lockCreateFractionalize sync.RWMutex
	lockCreateMint          sync.RWMutex
	lockDeleteFractionalize sync.RWMutex
	lockDeleteMint          sync.RWMutex
}

func (mock *pendingRepoMock) CreateFractionalize(ctx context.Context, p *domain.PendingFractionalize) error {
	if mock.CreateFractionalizeFunc == nil {
		panic("pendingRepoMock.CreateFractionalizeFunc: method is nil but pendingRepo.CreateFractionalize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.PendingFractionalize
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreateFractionalize.Lock()
	mock.calls.CreateFractionalize = append(mock.calls.CreateFractionalize, callInfo)
	mock.lockCreateFractionalize.Unlock()
	return mock.CreateFractionalizeFunc(ctx, p)
}

// CreateFractionalizeCalls gets all the calls that were made to CreateFractionalize.
func (mock *pendingRepoMock) CreateFractionalizeCalls() []struct {
	Ctx context.Context
	P   *domain.PendingFractionalize
} {
	var calls []struct {
		Ctx context.Context
		P   *domain.PendingFractionalize
	}
	mock.lockCreateFractionalize.RLock()
	calls = mock.calls.CreateFractionalize
	mock.lockCreateFractionalize.RUnlock()
	return calls
}

func (mock *pendingRepoMock) CreateMint(ctx context.Context, p *domain.PendingMint) error {
	if mock.CreateMintFunc == nil {
		panic("pendingRepoMock.CreateMintFunc: method is nil but pendingRepo.CreateMint was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.PendingMint
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreateMint.Lock()
	mock.calls.CreateMint = append(mock.calls.CreateMint, callInfo)
	mock.lockCreateMint.Unlock()
	return mock.CreateMintFunc(ctx, p)
}

// CreateMintCalls gets all the calls that were made to CreateMint.
func (mock *pendingRepoMock) CreateMintCalls() []struct {
	Ctx context.Context
	P   *domain.PendingMint
} {
	var calls []struct {
		Ctx context.Context
		P   *domain.PendingMint
	}
	mock.lockCreateMint.RLock()
	calls = mock.calls.CreateMint
	mock.lockCreateMint.RUnlock()
	return calls
}

func (mock *pendingRepoMock) DeleteFractionalize(ctx context.Context, assetID uuid.UUID) (*domain.PendingFractionalize, error) {
	if mock.DeleteFractionalizeFunc == nil {
		panic("pendingRepoMock.DeleteFractionalizeFunc: method is nil but pendingRepo.DeleteFractionalize was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}{
		Ctx:     ctx,
		AssetID: assetID,
	}
	mock.lockDeleteFractionalize.Lock()
	mock.calls.DeleteFractionalize = append(mock.calls.DeleteFractionalize, callInfo)
	mock.lockDeleteFractionalize.Unlock()
	return mock.DeleteFractionalizeFunc(ctx, assetID)
}

// DeleteFractionalizeCalls gets all the calls that were made to DeleteFractionalize.
func (mock *pendingRepoMock) DeleteFractionalizeCalls() []struct {
	Ctx     context.Context
	AssetID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}
	mock.lockDeleteFractionalize.RLock()
	calls = mock.calls.DeleteFractionalize
	mock.lockDeleteFractionalize.RUnlock()
	return calls
}

func (mock *pendingRepoMock) DeleteMint(ctx context.Context, assetID uuid.UUID) (*domain.PendingMint, error) {
	if mock.DeleteMintFunc == nil {
		panic("pendingRepoMock.DeleteMintFunc: method is nil but pendingRepo.DeleteMint was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}{
		Ctx:     ctx,
		AssetID: assetID,
	}
	mock.lockDeleteMint.Lock()
	mock.calls.DeleteMint = append(mock.calls.DeleteMint, callInfo)
	mock.lockDeleteMint.Unlock()
	return mock.DeleteMintFunc(ctx, assetID)
}

// DeleteMintCalls gets all the calls that were made to DeleteMint.
func (mock *pendingRepoMock) DeleteMintCalls() []struct {
	Ctx     context.Context
	AssetID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}
	mock.lockDeleteMint.RLock()
	calls = mock.calls.DeleteMint
	mock.lockDeleteMint.RUnlock()
	return calls
}
