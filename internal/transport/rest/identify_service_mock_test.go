package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/identify"
	"sync"
)

var _ identifyService = &identifyServiceMock{}

type identifyServiceMock struct {
	IdentifyFunc      func(context.Context, domain.Actor, uuid.UUID) (*domain.Item, error)
	BatchIdentifyFunc func(context.Context, domain.Actor, []uuid.UUID) (*identify.BatchSummary, error)

	calls struct {
		Identify []struct {
			Ctx    context.Context
			Actor  domain.Actor
			ItemID uuid.UUID
		}
		BatchIdentify []struct {
			Ctx     context.Context
			Actor   domain.Actor
			ItemIDs []uuid.UUID
		}
	}
	lockIdentify      sync.RWMutex
	lockBatchIdentify sync.RWMutex
}

func (mock *identifyServiceMock) Identify(ctx context.Context, actor domain.Actor, itemID uuid.UUID) (*domain.Item, error) {
	if mock.IdentifyFunc == nil {
		panic("identifyServiceMock.IdentifyFunc: method is nil but identifyService.Identify was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Actor  domain.Actor
		ItemID uuid.UUID
	}{Ctx: ctx, Actor: actor, ItemID: itemID}
	mock.lockIdentify.Lock()
	mock.calls.Identify = append(mock.calls.Identify, callInfo)
	mock.lockIdentify.Unlock()
	return mock.IdentifyFunc(ctx, actor, itemID)
}

func (mock *identifyServiceMock) IdentifyCalls() []struct {
	Ctx    context.Context
	Actor  domain.Actor
	ItemID uuid.UUID
} {
	mock.lockIdentify.RLock()
	calls := mock.calls.Identify
	mock.lockIdentify.RUnlock()
	return calls
}

func (mock *identifyServiceMock) BatchIdentify(ctx context.Context, actor domain.Actor, itemIDs []uuid.UUID) (*identify.BatchSummary, error) {
	if mock.BatchIdentifyFunc == nil {
		panic("identifyServiceMock.BatchIdentifyFunc: method is nil but identifyService.BatchIdentify was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Actor   domain.Actor
		ItemIDs []uuid.UUID
	}{Ctx: ctx, Actor: actor, ItemIDs: itemIDs}
	mock.lockBatchIdentify.Lock()
	mock.calls.BatchIdentify = append(mock.calls.BatchIdentify, callInfo)
	mock.lockBatchIdentify.Unlock()
	return mock.BatchIdentifyFunc(ctx, actor, itemIDs)
}

func (mock *identifyServiceMock) BatchIdentifyCalls() []struct {
	Ctx     context.Context
	Actor   domain.Actor
	ItemIDs []uuid.UUID
} {
	mock.lockBatchIdentify.RLock()
	calls := mock.calls.BatchIdentify
	mock.lockBatchIdentify.RUnlock()
	return calls
}
