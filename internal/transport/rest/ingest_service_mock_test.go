package rest

import (
	"context"
	"github.com/heartmarshall/resale-backend/internal/service/ingest"
	"github.com/heartmarshall/resale-backend/internal/service/item"
	"sync"
)

var _ ingestService = &ingestServiceMock{}

type ingestServiceMock struct {
	EnabledFunc   func() bool
	VerifyKeyFunc func(string) bool
	IngestFunc    func(context.Context, ingest.Request) (*item.ImportResult, error)

	calls struct {
		Enabled   []struct{}
		VerifyKey []struct {
			Header string
		}
		Ingest []struct {
			Ctx context.Context
			Req ingest.Request
		}
	}
	lockEnabled   sync.RWMutex
	lockVerifyKey sync.RWMutex
	lockIngest    sync.RWMutex
}

func (mock *ingestServiceMock) Enabled() bool {
	if mock.EnabledFunc == nil {
		panic("ingestServiceMock.EnabledFunc: method is nil but ingestService.Enabled was just called")
	}
	mock.lockEnabled.Lock()
	mock.calls.Enabled = append(mock.calls.Enabled, struct{}{})
	mock.lockEnabled.Unlock()
	return mock.EnabledFunc()
}

func (mock *ingestServiceMock) EnabledCalls() []struct{} {
	mock.lockEnabled.RLock()
	calls := mock.calls.Enabled
	mock.lockEnabled.RUnlock()
	return calls
}

func (mock *ingestServiceMock) VerifyKey(header string) bool {
	if mock.VerifyKeyFunc == nil {
		panic("ingestServiceMock.VerifyKeyFunc: method is nil but ingestService.VerifyKey was just called")
	}
	callInfo := struct {
		Header string
	}{Header: header}
	mock.lockVerifyKey.Lock()
	mock.calls.VerifyKey = append(mock.calls.VerifyKey, callInfo)
	mock.lockVerifyKey.Unlock()
	return mock.VerifyKeyFunc(header)
}

func (mock *ingestServiceMock) VerifyKeyCalls() []struct {
	Header string
} {
	mock.lockVerifyKey.RLock()
	calls := mock.calls.VerifyKey
	mock.lockVerifyKey.RUnlock()
	return calls
}

func (mock *ingestServiceMock) Ingest(ctx context.Context, req ingest.Request) (*item.ImportResult, error) {
	if mock.IngestFunc == nil {
		panic("ingestServiceMock.IngestFunc: method is nil but ingestService.Ingest was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req ingest.Request
	}{Ctx: ctx, Req: req}
	mock.lockIngest.Lock()
	mock.calls.Ingest = append(mock.calls.Ingest, callInfo)
	mock.lockIngest.Unlock()
	return mock.IngestFunc(ctx, req)
}

func (mock *ingestServiceMock) IngestCalls() []struct {
	Ctx context.Context
	Req ingest.Request
} {
	mock.lockIngest.RLock()
	calls := mock.calls.Ingest
	mock.lockIngest.RUnlock()
	return calls
}
