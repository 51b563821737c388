package ingest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/resale-backend/internal/service/item"
	"sync"
)

var _ importer = &importerMock{}

type importerMock struct {
	ImportItemFunc func(context.Context, uuid.UUID, item.CreateItemInput) (*item.ImportResult, error)

	calls struct {
		ImportItem []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Input   item.CreateItemInput
		}
	}
	lockImportItem sync.RWMutex
}

func (mock *importerMock) ImportItem(ctx context.Context, ownerID uuid.UUID, input item.CreateItemInput) (*item.ImportResult, error) {
	if mock.ImportItemFunc == nil {
		panic("importerMock.ImportItemFunc: method is nil but importer.ImportItem was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Input   item.CreateItemInput
	}{Ctx: ctx, OwnerID: ownerID, Input: input}
	mock.lockImportItem.Lock()
	mock.calls.ImportItem = append(mock.calls.ImportItem, callInfo)
	mock.lockImportItem.Unlock()
	return mock.ImportItemFunc(ctx, ownerID, input)
}

func (mock *importerMock) ImportItemCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Input   item.CreateItemInput
} {
	mock.lockImportItem.RLock()
	calls := mock.calls.ImportItem
	mock.lockImportItem.RUnlock()
	return calls
}
