package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/service/asset"
)

var _ assetService = &assetServiceMock{}

type assetServiceMock struct {
	BurnFunc                  func(ctx context.Context, assetID uuid.UUID) error
	FinalizeFractionalizeFunc func(ctx context.Context, assetID uuid.UUID) (*domain.Asset, error)
	FinalizeMintFunc          func(ctx context.Context, assetID uuid.UUID) (*domain.Asset, error)
	FractionalizeFunc         func(ctx context.Context, input asset.FractionalizeInput) (*asset.FractionalizeResult, error)
	GetFunc                   func(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	HistoryFunc               func(ctx context.Context, id uuid.UUID, limit int) ([]domain.Event, error)
	ListByHolderFunc          func(ctx context.Context, holder uuid.UUID, limit int, offset int) ([]domain.Asset, error)
	MintFunc                  func(ctx context.Context, input asset.MintInput) (*asset.MintResult, error)
	RecentEventsFunc          func(ctx context.Context, limit int) ([]domain.Event, error)
	UpdateMetadataFieldFunc   func(ctx context.Context, input asset.UpdateMetadataFieldInput) (*domain.Asset, error)

	calls struct {
		Burn []struct {
			Ctx     context.Context
			AssetID uuid.UUID
		}
		FinalizeFractionalize []struct {
			Ctx     context.Context
			AssetID uuid.UUID
		}
		FinalizeMint []struct {
			Ctx     context.Context
			AssetID uuid.UUID
		}
		Fractionalize []struct {
			Ctx   context.Context
			Input asset.FractionalizeInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		History []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Limit int
		}
		ListByHolder []struct {
			Ctx    context.Context
			Holder uuid.UUID
			Limit  int
			Offset int
		}
		Mint []struct {
			Ctx   context.Context
			Input asset.MintInput
		}
		RecentEvents []struct {
			Ctx   context.Context
			Limit int
		}
		UpdateMetadataField []struct {
			Ctx   context.Context
			Input asset.UpdateMetadataFieldInput
		}
	}
	lockBurn                  sync.RWMutex
	lockFinalizeFractionalize sync.RWMutex
	lockFinalizeMint          sync.RWMutex
	lockFractionalize         sync.RWMutex
	lockGet                   sync.RWMutex
	lockHistory               sync.RWMutex
	lockListByHolder          sync.RWMutex
	lockMint                  sync.RWMutex
	lockRecentEvents          sync.RWMutex
	lockUpdateMetadataField   sync.RWMutex
}

func (mock *assetServiceMock) Burn(ctx context.Context, assetID uuid.UUID) error {
	if mock.BurnFunc == nil {
		panic("assetServiceMock.BurnFunc: method is nil but assetService.Burn was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}{
		Ctx:     ctx,
		AssetID: assetID,
	}
	mock.lockBurn.Lock()
	mock.calls.Burn = append(mock.calls.Burn, callInfo)
	mock.lockBurn.Unlock()
	return mock.BurnFunc(ctx, assetID)
}

// BurnCalls gets all the calls that were made to Burn.
func (mock *assetServiceMock) BurnCalls() []struct {
	Ctx     context.Context
	AssetID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}
	mock.lockBurn.RLock()
	calls = mock.calls.Burn
	mock.lockBurn.RUnlock()
	return calls
}

func (mock *assetServiceMock) FinalizeFractionalize(ctx context.Context, assetID uuid.UUID) (*domain.Asset, error) {
	if mock.FinalizeFractionalizeFunc == nil {
		panic("assetServiceMock.FinalizeFractionalizeFunc: method is nil but assetService.FinalizeFractionalize was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}{
		Ctx:     ctx,
		AssetID: assetID,
	}
	mock.lockFinalizeFractionalize.Lock()
	mock.calls.FinalizeFractionalize = append(mock.calls.FinalizeFractionalize, callInfo)
	mock.lockFinalizeFractionalize.Unlock()
	return mock.FinalizeFractionalizeFunc(ctx, assetID)
}

// FinalizeFractionalizeCalls gets all the calls that were made to FinalizeFractionalize.
func (mock *assetServiceMock) FinalizeFractionalizeCalls() []struct {
	Ctx     context.Context
	AssetID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}
	mock.lockFinalizeFractionalize.RLock()
	calls = mock.calls.FinalizeFractionalize
	mock.lockFinalizeFractionalize.RUnlock()
	return calls
}

func (mock *assetServiceMock) FinalizeMint(ctx context.Context, assetID uuid.UUID) (*domain.Asset, error) {
	if mock.FinalizeMintFunc == nil {
		panic("assetServiceMock.FinalizeMintFunc: method is nil but assetService.FinalizeMint was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}{
		Ctx:     ctx,
		AssetID: assetID,
	}
	mock.lockFinalizeMint.Lock()
	mock.calls.FinalizeMint = append(mock.calls.FinalizeMint, callInfo)
	mock.lockFinalizeMint.Unlock()
	return mock.FinalizeMintFunc(ctx, assetID)
}

// FinalizeMintCalls gets all the calls that were made to FinalizeMint.
func (mock *assetServiceMock) FinalizeMintCalls() []struct {
	Ctx     context.Context
	AssetID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}
	mock.lockFinalizeMint.RLock()
	calls = mock.calls.FinalizeMint
	mock.lockFinalizeMint.RUnlock()
	return calls
}

func (mock *assetServiceMock) Fractionalize(ctx context.Context, input asset.FractionalizeInput) (*asset.FractionalizeResult, error) {
	if mock.FractionalizeFunc == nil {
		panic("assetServiceMock.FractionalizeFunc: method is nil but assetService.Fractionalize was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input asset.FractionalizeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockFractionalize.Lock()
	mock.calls.Fractionalize = append(mock.calls.Fractionalize, callInfo)
	mock.lockFractionalize.Unlock()
	return mock.FractionalizeFunc(ctx, input)
}

// FractionalizeCalls gets all the calls that were made to Fractionalize.
func (mock *assetServiceMock) FractionalizeCalls() []struct {
	Ctx   context.Context
	Input asset.FractionalizeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input asset.FractionalizeInput
	}
	mock.lockFractionalize.RLock()
	calls = mock.calls.Fractionalize
	mock.lockFractionalize.RUnlock()
	return calls
}

func (mock *assetServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	if mock.GetFunc == nil {
		panic("assetServiceMock.GetFunc: method is nil but assetService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

// GetCalls gets all the calls that were made to Get.
func (mock *assetServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *assetServiceMock) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.Event, error) {
	if mock.HistoryFunc == nil {
		panic("assetServiceMock.HistoryFunc: method is nil but assetService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Limit int
	}{
		Ctx:   ctx,
		ID:    id,
		Limit: limit,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, id, limit)
}

// HistoryCalls gets all the calls that were made to History.
func (mock *assetServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		ID    uuid.UUID
		Limit int
	}
	mock.lockHistory.RLock()
	calls = mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *assetServiceMock) ListByHolder(ctx context.Context, holder uuid.UUID, limit int, offset int) ([]domain.Asset, error) {
	if mock.ListByHolderFunc == nil {
		panic("assetServiceMock.ListByHolderFunc: method is nil but assetService.ListByHolder was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Holder uuid.UUID
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Holder: holder,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListByHolder.Lock()
	mock.calls.ListByHolder = append(mock.calls.ListByHolder, callInfo)
	mock.lockListByHolder.Unlock()
	return mock.ListByHolderFunc(ctx, holder, limit, offset)
}

// ListByHolderCalls gets all the calls that were made to ListByHolder.
func (mock *assetServiceMock) ListByHolderCalls() []struct {
	Ctx    context.Context
	Holder uuid.UUID
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		Holder uuid.UUID
		Limit  int
		Offset int
	}
	mock.lockListByHolder.RLock()
	calls = mock.calls.ListByHolder
	mock.lockListByHolder.RUnlock()
	return calls
}

func (mock *assetServiceMock) Mint(ctx context.Context, input asset.MintInput) (*asset.MintResult, error) {
	if mock.MintFunc == nil {
		panic("assetServiceMock.MintFunc: method is nil but assetService.Mint was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input asset.MintInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockMint.Lock()
	mock.calls.Mint = append(mock.calls.Mint, callInfo)
	mock.lockMint.Unlock()
	return mock.MintFunc(ctx, input)
}

// MintCalls gets all the calls that were made to Mint.
func (mock *assetServiceMock) MintCalls() []struct {
	Ctx   context.Context
	Input asset.MintInput
} {
	var calls []struct {
		Ctx   context.Context
		Input asset.MintInput
	}
	mock.lockMint.RLock()
	calls = mock.calls.Mint
	mock.lockMint.RUnlock()
	return calls
}

func (mock *assetServiceMock) RecentEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	if mock.RecentEventsFunc == nil {
		panic("assetServiceMock.RecentEventsFunc: method is nil but assetService.RecentEvents was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockRecentEvents.Lock()
	mock.calls.RecentEvents = append(mock.calls.RecentEvents, callInfo)
	mock.lockRecentEvents.Unlock()
	return mock.RecentEventsFunc(ctx, limit)
}

// RecentEventsCalls gets all the calls that were made to RecentEvents.
func (mock *assetServiceMock) RecentEventsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockRecentEvents.RLock()
	calls = mock.calls.RecentEvents
	mock.lockRecentEvents.RUnlock()
	return calls
}

func (mock *assetServiceMock) UpdateMetadataField(ctx context.Context, input asset.UpdateMetadataFieldInput) (*domain.Asset, error) {
	if mock.UpdateMetadataFieldFunc == nil {
		panic("assetServiceMock.UpdateMetadataFieldFunc: method is nil but assetService.UpdateMetadataField was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input asset.UpdateMetadataFieldInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateMetadataField.Lock()
	mock.calls.UpdateMetadataField = append(mock.calls.UpdateMetadataField, callInfo)
	mock.lockUpdateMetadataField.Unlock()
	return mock.UpdateMetadataFieldFunc(ctx, input)
}

// UpdateMetadataFieldCalls gets all the calls that were made to UpdateMetadataField.
func (mock *assetServiceMock) UpdateMetadataFieldCalls() []struct {
	Ctx   context.Context
	Input asset.UpdateMetadataFieldInput
} {
	var calls []struct {
		Ctx   context.Context
		Input asset.UpdateMetadataFieldInput
	}
	mock.lockUpdateMetadataField.RLock()
	calls = mock.calls.UpdateMetadataField
	mock.lockUpdateMetadataField.RUnlock()
	return calls
}
