package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/service/registry"
)

var _ registryService = &registryServiceMock{}

type registryServiceMock struct {
	AcceptAuthorityFunc  func(ctx context.Context) (*domain.Registry, error)
	AdminWithdrawFunc    func(ctx context.Context, input registry.AdminWithdrawInput) error
	GetFunc              func(ctx context.Context) (*registry.Overview, error)
	InitFunc             func(ctx context.Context, input registry.InitInput) (*domain.Registry, error)
	ProposeAuthorityFunc func(ctx context.Context, newAuthority uuid.UUID) error
	UpdateFeeFunc        func(ctx context.Context, input registry.UpdateFeeInput) (domain.FeesCollector, error)

	calls struct {
		AcceptAuthority []struct {
			Ctx context.Context
		}
		AdminWithdraw []struct {
			Ctx   context.Context
			Input registry.AdminWithdrawInput
		}
		Get []struct {
			Ctx context.Context
		}
		Init []struct {
			Ctx   context.Context
			Input registry.InitInput
		}
		ProposeAuthority []struct {
			Ctx          context.Context
			NewAuthority uuid.UUID
		}
		UpdateFee []struct {
			Ctx   context.Context
			Input registry.UpdateFeeInput
		}
	}
	lockAcceptAuthority  sync.RWMutex
	lockAdminWithdraw    sync.RWMutex
	lockGet              sync.RWMutex
	lockInit             sync.RWMutex
	lockProposeAuthority sync.RWMutex
	lockUpdateFee        sync.RWMutex
}

func (mock *registryServiceMock) AcceptAuthority(ctx context.Context) (*domain.Registry, error) {
	if mock.AcceptAuthorityFunc == nil {
		panic("registryServiceMock.AcceptAuthorityFunc: method is nil but registryService.AcceptAuthority was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAcceptAuthority.Lock()
	mock.calls.AcceptAuthority = append(mock.calls.AcceptAuthority, callInfo)
	mock.lockAcceptAuthority.Unlock()
	return mock.AcceptAuthorityFunc(ctx)
}

// AcceptAuthorityCalls gets all the calls that were made to AcceptAuthority.
func (mock *registryServiceMock) AcceptAuthorityCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockAcceptAuthority.RLock()
	calls = mock.calls.AcceptAuthority
	mock.lockAcceptAuthority.RUnlock()
	return calls
}

func (mock *registryServiceMock) AdminWithdraw(ctx context.Context, input registry.AdminWithdrawInput) error {
	if mock.AdminWithdrawFunc == nil {
		panic("registryServiceMock.AdminWithdrawFunc: method is nil but registryService.AdminWithdraw was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input registry.AdminWithdrawInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAdminWithdraw.Lock()
	mock.calls.AdminWithdraw = append(mock.calls.AdminWithdraw, callInfo)
	mock.lockAdminWithdraw.Unlock()
	return mock.AdminWithdrawFunc(ctx, input)
}

// AdminWithdrawCalls gets all the calls that were made to AdminWithdraw.
func (mock *registryServiceMock) AdminWithdrawCalls() []struct {
	Ctx   context.Context
	Input registry.AdminWithdrawInput
} {
	var calls []struct {
		Ctx   context.Context
		Input registry.AdminWithdrawInput
	}
	mock.lockAdminWithdraw.RLock()
	calls = mock.calls.AdminWithdraw
	mock.lockAdminWithdraw.RUnlock()
	return calls
}

func (mock *registryServiceMock) Get(ctx context.Context) (*registry.Overview, error) {
	if mock.GetFunc == nil {
		panic("registryServiceMock.GetFunc: method is nil but registryService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

// GetCalls gets all the calls that were made to Get.
func (mock *registryServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *registryServiceMock) Init(ctx context.Context, input registry.InitInput) (*domain.Registry, error) {
	if mock.InitFunc == nil {
		panic("registryServiceMock.InitFunc: method is nil but registryService.Init was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input registry.InitInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockInit.Lock()
	mock.calls.Init = append(mock.calls.Init, callInfo)
	mock.lockInit.Unlock()
	return mock.InitFunc(ctx, input)
}

// InitCalls gets all the calls that were made to Init.
func (mock *registryServiceMock) InitCalls() []struct {
	Ctx   context.Context
	Input registry.InitInput
} {
	var calls []struct {
		Ctx   context.Context
		Input registry.InitInput
	}
	mock.lockInit.RLock()
	calls = mock.calls.Init
	mock.lockInit.RUnlock()
	return calls
}

func (mock *registryServiceMock) ProposeAuthority(ctx context.Context, newAuthority uuid.UUID) error {
	if mock.ProposeAuthorityFunc == nil {
		panic("registryServiceMock.ProposeAuthorityFunc: method is nil but registryService.ProposeAuthority was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		NewAuthority uuid.UUID
	}{
		Ctx:          ctx,
		NewAuthority: newAuthority,
	}
	mock.lockProposeAuthority.Lock()
	mock.calls.ProposeAuthority = append(mock.calls.ProposeAuthority, callInfo)
	mock.lockProposeAuthority.Unlock()
	return mock.ProposeAuthorityFunc(ctx, newAuthority)
}

// ProposeAuthorityCalls gets all the calls that were made to ProposeAuthority.
func (mock *registryServiceMock) ProposeAuthorityCalls() []struct {
	Ctx          context.Context
	NewAuthority uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		NewAuthority uuid.UUID
	}
	mock.lockProposeAuthority.RLock()
	calls = mock.calls.ProposeAuthority
	mock.lockProposeAuthority.RUnlock()
	return calls
}

func (mock *registryServiceMock) UpdateFee(ctx context.Context, input registry.UpdateFeeInput) (domain.FeesCollector, error) {
	if mock.UpdateFeeFunc == nil {
		panic("registryServiceMock.UpdateFeeFunc: method is nil but registryService.UpdateFee was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input registry.UpdateFeeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateFee.Lock()
	mock.calls.UpdateFee = append(mock.calls.UpdateFee, callInfo)
	mock.lockUpdateFee.Unlock()
	return mock.UpdateFeeFunc(ctx, input)
}

// UpdateFeeCalls gets all the calls that were made to UpdateFee.
func (mock *registryServiceMock) UpdateFeeCalls() []struct {
	Ctx   context.Context
	Input registry.UpdateFeeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input registry.UpdateFeeInput
	}
	mock.lockUpdateFee.RLock()
	calls = mock.calls.UpdateFee
	mock.lockUpdateFee.RUnlock()
	return calls
}
