package rest

import (
	"context"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"sync"
	"time"
)

var _ purgeService = &purgeServiceMock{}

type purgeServiceMock struct {
	PurgeDeletedFunc func(context.Context, domain.Actor, time.Duration) (int64, error)

	calls struct {
		PurgeDeleted []struct {
			Ctx       context.Context
			Actor     domain.Actor
			OlderThan time.Duration
		}
	}
	lockPurgeDeleted sync.RWMutex
}

func (mock *purgeServiceMock) PurgeDeleted(ctx context.Context, actor domain.Actor, olderThan time.Duration) (int64, error) {
	if mock.PurgeDeletedFunc == nil {
		panic("purgeServiceMock.PurgeDeletedFunc: method is nil but purgeService.PurgeDeleted was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Actor     domain.Actor
		OlderThan time.Duration
	}{Ctx: ctx, Actor: actor, OlderThan: olderThan}
	mock.lockPurgeDeleted.Lock()
	mock.calls.PurgeDeleted = append(mock.calls.PurgeDeleted, callInfo)
	mock.lockPurgeDeleted.Unlock()
	return mock.PurgeDeletedFunc(ctx, actor, olderThan)
}

func (mock *purgeServiceMock) PurgeDeletedCalls() []struct {
	Ctx       context.Context
	Actor     domain.Actor
	OlderThan time.Duration
} {
	mock.lockPurgeDeleted.RLock()
	calls := mock.calls.PurgeDeleted
	mock.lockPurgeDeleted.RUnlock()
	return calls
}
