package registry

import (
	"context"
	"sync"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

var _ eventLogger = &eventLoggerMock{}

type eventLoggerMock struct {
	LogFunc func(ctx context.Context, event domain.Event) error

	calls struct {
		Log []struct {
			Ctx   context.Context
			Event domain.Event
		}
	}
	lockLog sync.RWMutex
}

func (mock *eventLoggerMock) Log(ctx context.Context, event domain.Event) error {
	if mock.LogFunc == nil {
		panic("eventLoggerMock.LogFunc: method is nil but eventLogger.Log was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event domain.Event
	}{
		Ctx:   ctx,
		Event: event,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, event)
}

// LogCalls gets all the calls that were made to Log.
func (mock *eventLoggerMock) LogCalls() []struct {
	Ctx   context.Context
	Event domain.Event
} {
	var calls []struct {
		Ctx   context.Context
		Event domain.Event
	}
	mock.lockLog.RLock()
	calls = mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
