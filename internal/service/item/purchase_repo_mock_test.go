package item

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"sync"
)

var _ purchaseRepo = &purchaseRepoMock{}

type purchaseRepoMock struct {
	GetByItemFunc    func(context.Context, uuid.UUID) (*domain.Purchase, error)
	GetByItemIDsFunc func(context.Context, []uuid.UUID) (map[uuid.UUID]domain.Purchase, error)
	UpsertFunc       func(context.Context, *domain.Purchase) (*domain.Purchase, error)

	calls struct {
		GetByItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		GetByItemIDs []struct {
			Ctx     context.Context
			ItemIDs []uuid.UUID
		}
		Upsert []struct {
			Ctx context.Context
			P   *domain.Purchase
		}
	}
	lockGetByItem    sync.RWMutex
	lockGetByItemIDs sync.RWMutex
	lockUpsert       sync.RWMutex
}

func (mock *purchaseRepoMock) GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.Purchase, error) {
	if mock.GetByItemFunc == nil {
		panic("purchaseRepoMock.GetByItemFunc: method is nil but purchaseRepo.GetByItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockGetByItem.Lock()
	mock.calls.GetByItem = append(mock.calls.GetByItem, callInfo)
	mock.lockGetByItem.Unlock()
	return mock.GetByItemFunc(ctx, itemID)
}

func (mock *purchaseRepoMock) GetByItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockGetByItem.RLock()
	calls := mock.calls.GetByItem
	mock.lockGetByItem.RUnlock()
	return calls
}

func (mock *purchaseRepoMock) GetByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]domain.Purchase, error) {
	if mock.GetByItemIDsFunc == nil {
		panic("purchaseRepoMock.GetByItemIDsFunc: method is nil but purchaseRepo.GetByItemIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ItemIDs []uuid.UUID
	}{Ctx: ctx, ItemIDs: itemIDs}
	mock.lockGetByItemIDs.Lock()
	mock.calls.GetByItemIDs = append(mock.calls.GetByItemIDs, callInfo)
	mock.lockGetByItemIDs.Unlock()
	return mock.GetByItemIDsFunc(ctx, itemIDs)
}

func (mock *purchaseRepoMock) GetByItemIDsCalls() []struct {
	Ctx     context.Context
	ItemIDs []uuid.UUID
} {
	mock.lockGetByItemIDs.RLock()
	calls := mock.calls.GetByItemIDs
	mock.lockGetByItemIDs.RUnlock()
	return calls
}

func (mock *purchaseRepoMock) Upsert(ctx context.Context, p *domain.Purchase) (*domain.Purchase, error) {
	if mock.UpsertFunc == nil {
		panic("purchaseRepoMock.UpsertFunc: method is nil but purchaseRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Purchase
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *purchaseRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   *domain.Purchase
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
