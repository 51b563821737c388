package copywriter

import (
	"context"
	"github.com/heartmarshall/resale-backend/internal/service/aiusage"
	"sync"
)

var _ usageRecorder = &usageRecorderMock{}

type usageRecorderMock struct {
	RecordFunc func(context.Context, aiusage.Entry)

	calls struct {
		Record []struct {
			Ctx context.Context
			E   aiusage.Entry
		}
	}
	lockRecord sync.RWMutex
}

func (mock *usageRecorderMock) Record(ctx context.Context, e aiusage.Entry) {
	if mock.RecordFunc == nil {
		panic("usageRecorderMock.RecordFunc: method is nil but usageRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   aiusage.Entry
	}{Ctx: ctx, E: e}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, e)
}

func (mock *usageRecorderMock) RecordCalls() []struct {
	Ctx context.Context
	E   aiusage.Entry
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
