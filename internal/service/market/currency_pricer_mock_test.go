package market

import (
	"context"
	"sync"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

var _ currencyPricer = &currencyPricerMock{}

type currencyPricerMock struct {
	CurrencyPriceFunc func(ctx context.Context) (domain.Price, error)

	calls struct {
		CurrencyPrice []struct {
			Ctx context.Context
		}
	}
	lockCurrencyPrice sync.RWMutex
}

func (mock *currencyPricerMock) CurrencyPrice(ctx context.Context) (domain.Price, error) {
	if mock.CurrencyPriceFunc == nil {
		panic("currencyPricerMock.CurrencyPriceFunc: method is nil but currencyPricer.CurrencyPrice was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCurrencyPrice.Lock()
	mock.calls.CurrencyPrice = append(mock.calls.CurrencyPrice, callInfo)
	mock.lockCurrencyPrice.Unlock()
	return mock.CurrencyPriceFunc(ctx)
}

// CurrencyPriceCalls gets all the calls that were made to CurrencyPrice.
func (mock *currencyPricerMock) CurrencyPriceCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCurrencyPrice.RLock()
	calls = mock.calls.CurrencyPrice
	mock.lockCurrencyPrice.RUnlock()
	return calls
}
