package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/provider"
	"github.com/heartmarshall/resale-backend/internal/service/copywriter"
	"sync"
)

var _ copyService = &copyServiceMock{}

type copyServiceMock struct {
	ItemCopyFunc    func(context.Context, domain.Actor, uuid.UUID) (*provider.ListingCopy, error)
	ListingCopyFunc func(context.Context, domain.Actor, uuid.UUID) (*provider.ListingCopy, error)
	GetCopyFunc     func(context.Context, domain.Actor, uuid.UUID) (*domain.SavedCopy, error)
	SaveCopyFunc    func(context.Context, domain.Actor, copywriter.SaveCopyInput) (*domain.SavedCopy, error)

	calls struct {
		ItemCopy []struct {
			Ctx    context.Context
			Actor  domain.Actor
			ItemID uuid.UUID
		}
		ListingCopy []struct {
			Ctx       context.Context
			Actor     domain.Actor
			ListingID uuid.UUID
		}
		GetCopy []struct {
			Ctx    context.Context
			Actor  domain.Actor
			ItemID uuid.UUID
		}
		SaveCopy []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input copywriter.SaveCopyInput
		}
	}
	lockItemCopy    sync.RWMutex
	lockListingCopy sync.RWMutex
	lockGetCopy     sync.RWMutex
	lockSaveCopy    sync.RWMutex
}

func (mock *copyServiceMock) ItemCopy(ctx context.Context, actor domain.Actor, itemID uuid.UUID) (*provider.ListingCopy, error) {
	if mock.ItemCopyFunc == nil {
		panic("copyServiceMock.ItemCopyFunc: method is nil but copyService.ItemCopy was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Actor  domain.Actor
		ItemID uuid.UUID
	}{Ctx: ctx, Actor: actor, ItemID: itemID}
	mock.lockItemCopy.Lock()
	mock.calls.ItemCopy = append(mock.calls.ItemCopy, callInfo)
	mock.lockItemCopy.Unlock()
	return mock.ItemCopyFunc(ctx, actor, itemID)
}

func (mock *copyServiceMock) ItemCopyCalls() []struct {
	Ctx    context.Context
	Actor  domain.Actor
	ItemID uuid.UUID
} {
	mock.lockItemCopy.RLock()
	calls := mock.calls.ItemCopy
	mock.lockItemCopy.RUnlock()
	return calls
}

func (mock *copyServiceMock) ListingCopy(ctx context.Context, actor domain.Actor, listingID uuid.UUID) (*provider.ListingCopy, error) {
	if mock.ListingCopyFunc == nil {
		panic("copyServiceMock.ListingCopyFunc: method is nil but copyService.ListingCopy was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Actor     domain.Actor
		ListingID uuid.UUID
	}{Ctx: ctx, Actor: actor, ListingID: listingID}
	mock.lockListingCopy.Lock()
	mock.calls.ListingCopy = append(mock.calls.ListingCopy, callInfo)
	mock.lockListingCopy.Unlock()
	return mock.ListingCopyFunc(ctx, actor, listingID)
}

func (mock *copyServiceMock) ListingCopyCalls() []struct {
	Ctx       context.Context
	Actor     domain.Actor
	ListingID uuid.UUID
} {
	mock.lockListingCopy.RLock()
	calls := mock.calls.ListingCopy
	mock.lockListingCopy.RUnlock()
	return calls
}

func (mock *copyServiceMock) GetCopy(ctx context.Context, actor domain.Actor, itemID uuid.UUID) (*domain.SavedCopy, error) {
	if mock.GetCopyFunc == nil {
		panic("copyServiceMock.GetCopyFunc: method is nil but copyService.GetCopy was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Actor  domain.Actor
		ItemID uuid.UUID
	}{Ctx: ctx, Actor: actor, ItemID: itemID}
	mock.lockGetCopy.Lock()
	mock.calls.GetCopy = append(mock.calls.GetCopy, callInfo)
	mock.lockGetCopy.Unlock()
	return mock.GetCopyFunc(ctx, actor, itemID)
}

func (mock *copyServiceMock) GetCopyCalls() []struct {
	Ctx    context.Context
	Actor  domain.Actor
	ItemID uuid.UUID
} {
	mock.lockGetCopy.RLock()
	calls := mock.calls.GetCopy
	mock.lockGetCopy.RUnlock()
	return calls
}

func (mock *copyServiceMock) SaveCopy(ctx context.Context, actor domain.Actor, input copywriter.SaveCopyInput) (*domain.SavedCopy, error) {
	if mock.SaveCopyFunc == nil {
		panic("copyServiceMock.SaveCopyFunc: method is nil but copyService.SaveCopy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input copywriter.SaveCopyInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockSaveCopy.Lock()
	mock.calls.SaveCopy = append(mock.calls.SaveCopy, callInfo)
	mock.lockSaveCopy.Unlock()
	return mock.SaveCopyFunc(ctx, actor, input)
}

func (mock *copyServiceMock) SaveCopyCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input copywriter.SaveCopyInput
} {
	mock.lockSaveCopy.RLock()
	calls := mock.calls.SaveCopy
	mock.lockSaveCopy.RUnlock()
	return calls
}
