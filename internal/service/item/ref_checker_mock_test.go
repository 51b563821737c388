package item

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"sync"
)

var _ refChecker = &refCheckerMock{}

type refCheckerMock struct {
	ExistsFunc        func(context.Context, domain.RefKind, uuid.UUID) (bool, error)
	CountExistingFunc func(context.Context, domain.RefKind, []uuid.UUID) (int, error)

	calls struct {
		Exists []struct {
			Ctx  context.Context
			Kind domain.RefKind
			ID   uuid.UUID
		}
		CountExisting []struct {
			Ctx  context.Context
			Kind domain.RefKind
			IDs  []uuid.UUID
		}
	}
	lockExists        sync.RWMutex
	lockCountExisting sync.RWMutex
}

func (mock *refCheckerMock) Exists(ctx context.Context, kind domain.RefKind, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("refCheckerMock.ExistsFunc: method is nil but refChecker.Exists was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.RefKind
		ID   uuid.UUID
	}{Ctx: ctx, Kind: kind, ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, kind, id)
}

func (mock *refCheckerMock) ExistsCalls() []struct {
	Ctx  context.Context
	Kind domain.RefKind
	ID   uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *refCheckerMock) CountExisting(ctx context.Context, kind domain.RefKind, ids []uuid.UUID) (int, error) {
	if mock.CountExistingFunc == nil {
		panic("refCheckerMock.CountExistingFunc: method is nil but refChecker.CountExisting was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.RefKind
		IDs  []uuid.UUID
	}{Ctx: ctx, Kind: kind, IDs: ids}
	mock.lockCountExisting.Lock()
	mock.calls.CountExisting = append(mock.calls.CountExisting, callInfo)
	mock.lockCountExisting.Unlock()
	return mock.CountExistingFunc(ctx, kind, ids)
}

func (mock *refCheckerMock) CountExistingCalls() []struct {
	Ctx  context.Context
	Kind domain.RefKind
	IDs  []uuid.UUID
} {
	mock.lockCountExisting.RLock()
	calls := mock.calls.CountExisting
	mock.lockCountExisting.RUnlock()
	return calls
}
