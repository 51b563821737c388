package identify

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"sync"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc       func(context.Context, uuid.UUID) (*domain.Item, error)
	PrimaryImagesFunc func(context.Context, []uuid.UUID) (map[uuid.UUID]domain.ItemImage, error)
	ListIdleIDsFunc   func(context.Context, uuid.UUID, int) ([]uuid.UUID, error)
	SetAIPendingFunc  func(context.Context, uuid.UUID) error
	SetAIErrorFunc    func(context.Context, uuid.UUID, string) error
	SetAICompleteFunc func(context.Context, uuid.UUID, domain.Identification) (*domain.Item, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		PrimaryImages []struct {
			Ctx     context.Context
			ItemIDs []uuid.UUID
		}
		ListIdleIDs []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Limit   int
		}
		SetAIPending []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetAIError []struct {
			Ctx context.Context
			ID  uuid.UUID
			Msg string
		}
		SetAIComplete []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Ident domain.Identification
		}
	}
	lockGetByID       sync.RWMutex
	lockPrimaryImages sync.RWMutex
	lockListIdleIDs   sync.RWMutex
	lockSetAIPending  sync.RWMutex
	lockSetAIError    sync.RWMutex
	lockSetAIComplete sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) PrimaryImages(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.ItemImage, error) {
	if mock.PrimaryImagesFunc == nil {
		panic("itemRepoMock.PrimaryImagesFunc: method is nil but itemRepo.PrimaryImages was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ItemIDs []uuid.UUID
	}{Ctx: ctx, ItemIDs: itemIDs}
	mock.lockPrimaryImages.Lock()
	mock.calls.PrimaryImages = append(mock.calls.PrimaryImages, callInfo)
	mock.lockPrimaryImages.Unlock()
	return mock.PrimaryImagesFunc(ctx, itemIDs)
}

func (mock *itemRepoMock) PrimaryImagesCalls() []struct {
	Ctx     context.Context
	ItemIDs []uuid.UUID
} {
	mock.lockPrimaryImages.RLock()
	calls := mock.calls.PrimaryImages
	mock.lockPrimaryImages.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListIdleIDs(ctx context.Context, ownerID uuid.UUID, limit int) ([]uuid.UUID, error) {
	if mock.ListIdleIDsFunc == nil {
		panic("itemRepoMock.ListIdleIDsFunc: method is nil but itemRepo.ListIdleIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Limit   int
	}{Ctx: ctx, OwnerID: ownerID, Limit: limit}
	mock.lockListIdleIDs.Lock()
	mock.calls.ListIdleIDs = append(mock.calls.ListIdleIDs, callInfo)
	mock.lockListIdleIDs.Unlock()
	return mock.ListIdleIDsFunc(ctx, ownerID, limit)
}

func (mock *itemRepoMock) ListIdleIDsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Limit   int
} {
	mock.lockListIdleIDs.RLock()
	calls := mock.calls.ListIdleIDs
	mock.lockListIdleIDs.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetAIPending(ctx context.Context, id uuid.UUID) error {
	if mock.SetAIPendingFunc == nil {
		panic("itemRepoMock.SetAIPendingFunc: method is nil but itemRepo.SetAIPending was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSetAIPending.Lock()
	mock.calls.SetAIPending = append(mock.calls.SetAIPending, callInfo)
	mock.lockSetAIPending.Unlock()
	return mock.SetAIPendingFunc(ctx, id)
}

func (mock *itemRepoMock) SetAIPendingCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSetAIPending.RLock()
	calls := mock.calls.SetAIPending
	mock.lockSetAIPending.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetAIError(ctx context.Context, id uuid.UUID, msg string) error {
	if mock.SetAIErrorFunc == nil {
		panic("itemRepoMock.SetAIErrorFunc: method is nil but itemRepo.SetAIError was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Msg string
	}{Ctx: ctx, ID: id, Msg: msg}
	mock.lockSetAIError.Lock()
	mock.calls.SetAIError = append(mock.calls.SetAIError, callInfo)
	mock.lockSetAIError.Unlock()
	return mock.SetAIErrorFunc(ctx, id, msg)
}

func (mock *itemRepoMock) SetAIErrorCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Msg string
} {
	mock.lockSetAIError.RLock()
	calls := mock.calls.SetAIError
	mock.lockSetAIError.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetAIComplete(ctx context.Context, id uuid.UUID, ident domain.Identification) (*domain.Item, error) {
	if mock.SetAICompleteFunc == nil {
		panic("itemRepoMock.SetAICompleteFunc: method is nil but itemRepo.SetAIComplete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Ident domain.Identification
	}{Ctx: ctx, ID: id, Ident: ident}
	mock.lockSetAIComplete.Lock()
	mock.calls.SetAIComplete = append(mock.calls.SetAIComplete, callInfo)
	mock.lockSetAIComplete.Unlock()
	return mock.SetAICompleteFunc(ctx, id, ident)
}

func (mock *itemRepoMock) SetAICompleteCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Ident domain.Identification
} {
	mock.lockSetAIComplete.RLock()
	calls := mock.calls.SetAIComplete
	mock.lockSetAIComplete.RUnlock()
	return calls
}
