package registry

import (
	"context"
	"sync"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

var _ registryRepo = &registryRepoMock{}

type registryRepoMock struct {
	CreateFunc       func(ctx context.Context, reg *domain.Registry, fees domain.FeesCollector) error
	GetFunc          func(ctx context.Context) (*domain.Registry, error)
	GetFeesFunc      func(ctx context.Context) (domain.FeesCollector, error)
	GetForUpdateFunc func(ctx context.Context) (*domain.Registry, error)
	UpdateFunc       func(ctx context.Context, reg *domain.Registry) error
	UpdateFeesFunc   func(ctx context.Context, fees domain.FeesCollector) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Reg  *domain.Registry
			Fees domain.FeesCollector
		}
		Get []struct {
			Ctx context.Context
		}
		GetFees []struct {
			Ctx context.Context
		}
		GetForUpdate []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			Reg *domain.Registry
		}
		UpdateFees []struct {
			Ctx  context.Context
			Fees domain.FeesCollector
		}
	}
	lockCreate       sync.RWMutex
	lockGet          sync.RWMutex
	lockGetFees      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockUpdate       sync.RWMutex
	lockUpdateFees   sync.RWMutex
}

func (mock *registryRepoMock) Create(ctx context.Context, reg *domain.Registry, fees domain.FeesCollector) error {
	if mock.CreateFunc == nil {
		panic("registryRepoMock.CreateFunc: method is nil but registryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Reg  *domain.Registry
		Fees domain.FeesCollector
	}{
		Ctx:  ctx,
		Reg:  reg,
		Fees: fees,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, reg, fees)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *registryRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Reg  *domain.Registry
	Fees domain.FeesCollector
} {
	var calls []struct {
		Ctx  context.Context
		Reg  *domain.Registry
		Fees domain.FeesCollector
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *registryRepoMock) Get(ctx context.Context) (*domain.Registry, error) {
	if mock.GetFunc == nil {
		panic("registryRepoMock.GetFunc: method is nil but registryRepo.Get was just called")
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
func (mock *registryRepoMock) GetCalls() []struct {
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

func (mock *registryRepoMock) GetFees(ctx context.Context) (domain.FeesCollector, error) {
	if mock.GetFeesFunc == nil {
		panic("registryRepoMock.GetFeesFunc: method is nil but registryRepo.GetFees was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetFees.Lock()
	mock.calls.GetFees = append(mock.calls.GetFees, callInfo)
	mock.lockGetFees.Unlock()
	return mock.GetFeesFunc(ctx)
}

// GetFeesCalls gets all the calls that were made to GetFees.
func (mock *registryRepoMock) GetFeesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetFees.RLock()
	calls = mock.calls.GetFees
	mock.lockGetFees.RUnlock()
	return calls
}

func (mock *registryRepoMock) GetForUpdate(ctx context.Context) (*domain.Registry, error) {
	if mock.GetForUpdateFunc == nil {
		panic("registryRepoMock.GetForUpdateFunc: method is nil but registryRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx)
}

// GetForUpdateCalls gets all the calls that were made to GetForUpdate.
func (mock *registryRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *registryRepoMock) Update(ctx context.Context, reg *domain.Registry) error {
	if mock.UpdateFunc == nil {
		panic("registryRepoMock.UpdateFunc: method is nil but registryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Reg *domain.Registry
	}{
		Ctx: ctx,
		Reg: reg,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, reg)
}

// UpdateCalls gets all the calls that were made to Update.
func (mock *registryRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Reg *domain.Registry
} {
	var calls []struct {
		Ctx context.Context
		Reg *domain.Registry
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *registryRepoMock) UpdateFees(ctx context.Context, fees domain.FeesCollector) error {
	if mock.UpdateFeesFunc == nil {
		panic("registryRepoMock.UpdateFeesFunc: method is nil but registryRepo.UpdateFees was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Fees domain.FeesCollector
	}{
		Ctx:  ctx,
		Fees: fees,
	}
	mock.lockUpdateFees.Lock()
	mock.calls.UpdateFees = append(mock.calls.UpdateFees, callInfo)
	mock.lockUpdateFees.Unlock()
	return mock.UpdateFeesFunc(ctx, fees)
}

// UpdateFeesCalls gets all the calls that were made to UpdateFees.
func (mock *registryRepoMock) UpdateFeesCalls() []struct {
	Ctx  context.Context
	Fees domain.FeesCollector
} {
	var calls []struct {
		Ctx  context.Context
		Fees domain.FeesCollector
	}
	mock.lockUpdateFees.RLock()
	calls = mock.calls.UpdateFees
	mock.lockUpdateFees.RUnlock()
	return calls
}
