package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/service/market"
)

var _ marketService = &marketServiceMock{}

type marketServiceMock struct {
	BuyFunc                func(ctx context.Context, input market.BuyInput) (*market.BuyResult, error)
	DelistFunc             func(ctx context.Context, assetID uuid.UUID) error
	GetListingFunc         func(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error)
	ListFunc               func(ctx context.Context, input market.ListInput) (*domain.Listing, error)
	ListListingsFunc       func(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	UpdateListingPriceFunc func(ctx context.Context, input market.UpdatePriceInput) (*domain.Listing, error)

	calls struct {
		Buy []struct {
			Ctx   context.Context
			Input market.BuyInput
		}
		Delist []struct {
			Ctx     context.Context
			AssetID uuid.UUID
		}
		GetListing []struct {
			Ctx     context.Context
			AssetID uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input market.ListInput
		}
		ListListings []struct {
			Ctx    context.Context
			Filter domain.ListingFilter
		}
		UpdateListingPrice []struct {
			Ctx   context.Context
			Input market.UpdatePriceInput
		}
	}
	lockBuy                sync.RWMutex
	lockDelist             sync.RWMutex
	lockGetListing         sync.RWMutex
	lockList               sync.RWMutex
	lockListListings       sync.RWMutex
	lockUpdateListingPrice sync.RWMutex
}

func (mock *marketServiceMock) Buy(ctx context.Context, input market.BuyInput) (*market.BuyResult, error) {
	if mock.BuyFunc == nil {
		panic("marketServiceMock.BuyFunc: method is nil but marketService.Buy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input market.BuyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockBuy.Lock()
	mock.calls.Buy = append(mock.calls.Buy, callInfo)
	mock.lockBuy.Unlock()
	return mock.BuyFunc(ctx, input)
}

// BuyCalls gets all the calls that were made to Buy.
func (mock *marketServiceMock) BuyCalls() []struct {
	Ctx   context.Context
	Input market.BuyInput
} {
	var calls []struct {
		Ctx   context.Context
		Input market.BuyInput
	}
	mock.lockBuy.RLock()
	calls = mock.calls.Buy
	mock.lockBuy.RUnlock()
	return calls
}

func (mock *marketServiceMock) Delist(ctx context.Context, assetID uuid.UUID) error {
	if mock.DelistFunc == nil {
		panic("marketServiceMock.DelistFunc: method is nil but marketService.Delist was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}{
		Ctx:     ctx,
		AssetID: assetID,
	}
	mock.lockDelist.Lock()
	mock.calls.Delist = append(mock.calls.Delist, callInfo)
	mock.lockDelist.Unlock()
	return mock.DelistFunc(ctx, assetID)
}

// DelistCalls gets all the calls that were made to Delist.
func (mock *marketServiceMock) DelistCalls() []struct {
	Ctx     context.Context
	AssetID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}
	mock.lockDelist.RLock()
	calls = mock.calls.Delist
	mock.lockDelist.RUnlock()
	return calls
}

func (mock *marketServiceMock) GetListing(ctx context.Context, assetID uuid.UUID) (*domain.Listing, error) {
	if mock.GetListingFunc == nil {
		panic("marketServiceMock.GetListingFunc: method is nil but marketService.GetListing was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}{
		Ctx:     ctx,
		AssetID: assetID,
	}
	mock.lockGetListing.Lock()
	mock.calls.GetListing = append(mock.calls.GetListing, callInfo)
	mock.lockGetListing.Unlock()
	return mock.GetListingFunc(ctx, assetID)
}

// GetListingCalls gets all the calls that were made to GetListing.
func (mock *marketServiceMock) GetListingCalls() []struct {
	Ctx     context.Context
	AssetID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		AssetID uuid.UUID
	}
	mock.lockGetListing.RLock()
	calls = mock.calls.GetListing
	mock.lockGetListing.RUnlock()
	return calls
}

func (mock *marketServiceMock) List(ctx context.Context, input market.ListInput) (*domain.Listing, error) {
	if mock.ListFunc == nil {
		panic("marketServiceMock.ListFunc: method is nil but marketService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input market.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

// ListCalls gets all the calls that were made to List.
func (mock *marketServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input market.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input market.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *marketServiceMock) ListListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if mock.ListListingsFunc == nil {
		panic("marketServiceMock.ListListingsFunc: method is nil but marketService.ListListings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ListingFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockListListings.Lock()
	mock.calls.ListListings = append(mock.calls.ListListings, callInfo)
	mock.lockListListings.Unlock()
	return mock.ListListingsFunc(ctx, filter)
}

// ListListingsCalls gets all the calls that were made to ListListings.
func (mock *marketServiceMock) ListListingsCalls() []struct {
	Ctx    context.Context
	Filter domain.ListingFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.ListingFilter
	}
	mock.lockListListings.RLock()
	calls = mock.calls.ListListings
	mock.lockListListings.RUnlock()
	return calls
}

func (mock *marketServiceMock) UpdateListingPrice(ctx context.Context, input market.UpdatePriceInput) (*domain.Listing, error) {
	if mock.UpdateListingPriceFunc == nil {
		panic("marketServiceMock.UpdateListingPriceFunc: method is nil but marketService.UpdateListingPrice was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input market.UpdatePriceInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateListingPrice.Lock()
	mock.calls.UpdateListingPrice = append(mock.calls.UpdateListingPrice, callInfo)
	mock.lockUpdateListingPrice.Unlock()
	return mock.UpdateListingPriceFunc(ctx, input)
}

// UpdateListingPriceCalls gets all the calls that were made to UpdateListingPrice.
func (mock *marketServiceMock) UpdateListingPriceCalls() []struct {
	Ctx   context.Context
	Input market.UpdatePriceInput
} {
	var calls []struct {
		Ctx   context.Context
		Input market.UpdatePriceInput
	}
	mock.lockUpdateListingPrice.RLock()
	calls = mock.calls.UpdateListingPrice
	mock.lockUpdateListingPrice.RUnlock()
	return calls
}
