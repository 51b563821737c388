package rest

import (
	"context"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/reference"
	"sync"
)

var _ referenceService = &referenceServiceMock{}

type referenceServiceMock struct {
	ListFunc   func(context.Context, domain.Actor, domain.RefKind) ([]domain.RefRecord, error)
	CreateFunc func(context.Context, domain.Actor, reference.CreateInput) (*domain.RefRecord, error)
	MergeFunc  func(context.Context, domain.Actor, reference.MergeInput) (*domain.MergeResult, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Actor domain.Actor
			Kind  domain.RefKind
		}
		Create []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input reference.CreateInput
		}
		Merge []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input reference.MergeInput
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockMerge  sync.RWMutex
}

func (mock *referenceServiceMock) List(ctx context.Context, actor domain.Actor, kind domain.RefKind) ([]domain.RefRecord, error) {
	if mock.ListFunc == nil {
		panic("referenceServiceMock.ListFunc: method is nil but referenceService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Kind  domain.RefKind
	}{Ctx: ctx, Actor: actor, Kind: kind}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, actor, kind)
}

func (mock *referenceServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Kind  domain.RefKind
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *referenceServiceMock) Create(ctx context.Context, actor domain.Actor, input reference.CreateInput) (*domain.RefRecord, error) {
	if mock.CreateFunc == nil {
		panic("referenceServiceMock.CreateFunc: method is nil but referenceService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input reference.CreateInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, actor, input)
}

func (mock *referenceServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input reference.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *referenceServiceMock) Merge(ctx context.Context, actor domain.Actor, input reference.MergeInput) (*domain.MergeResult, error) {
	if mock.MergeFunc == nil {
		panic("referenceServiceMock.MergeFunc: method is nil but referenceService.Merge was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input reference.MergeInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockMerge.Lock()
	mock.calls.Merge = append(mock.calls.Merge, callInfo)
	mock.lockMerge.Unlock()
	return mock.MergeFunc(ctx, actor, input)
}

func (mock *referenceServiceMock) MergeCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input reference.MergeInput
} {
	mock.lockMerge.RLock()
	calls := mock.calls.Merge
	mock.lockMerge.RUnlock()
	return calls
}
