package asset

import (
	"context"
	"sync"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

var _ pricer = &pricerMock{}

type pricerMock struct {
	QuoteFunc func(ctx context.Context) (domain.Quote, error)

	calls struct {
		Quote []struct {
			Ctx context.Context
		}
	}
	lockQuote sync.RWMutex
}

func (mock *pricerMock) Quote(ctx context.Context) (domain.Quote, error) {
	if mock.QuoteFunc == nil {
		panic("pricerMock.QuoteFunc: method is nil but pricer.Quote was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockQuote.Lock()
	mock.calls.Quote = append(mock.calls.Quote, callInfo)
	mock.lockQuote.Unlock()
	return mock.QuoteFunc(ctx)
}

// QuoteCalls gets all the calls that were made to Quote.
func (mock *pricerMock) QuoteCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockQuote.RLock()
	calls = mock.calls.Quote
	mock.lockQuote.RUnlock()
	return calls
}
