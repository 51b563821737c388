package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/item"
	"sync"
)

var _ itemService = &itemServiceMock{}

type itemServiceMock struct {
	CreateItemFunc      func(context.Context, domain.Actor, item.CreateItemInput) (*item.ItemDetail, error)
	GetItemFunc         func(context.Context, domain.Actor, uuid.UUID) (*item.ItemDetail, error)
	ListItemsFunc       func(context.Context, domain.Actor, domain.ItemFilter) ([]item.InventoryRow, error)
	UpdateItemFunc      func(context.Context, domain.Actor, item.UpdateItemInput) (*domain.Item, error)
	DeleteItemFunc      func(context.Context, domain.Actor, uuid.UUID) error
	AssignCategoryFunc  func(context.Context, domain.Actor, uuid.UUID, *uuid.UUID) (*domain.Item, error)
	AssignLocationFunc  func(context.Context, domain.Actor, uuid.UUID, *uuid.UUID) (*domain.Item, error)
	UpdateConditionFunc func(context.Context, domain.Actor, item.UpdateConditionInput) (*domain.Item, error)
	GetTagsFunc         func(context.Context, domain.Actor, uuid.UUID) ([]uuid.UUID, error)
	SetTagsFunc         func(context.Context, domain.Actor, uuid.UUID, []uuid.UUID) ([]uuid.UUID, error)
	UpsertPurchaseFunc  func(context.Context, domain.Actor, item.PurchaseInput) (*domain.Purchase, error)
	UpsertListingFunc   func(context.Context, domain.Actor, item.ListingInput) (*domain.Listing, error)
	RecordSaleFunc      func(context.Context, domain.Actor, item.SaleInput) (*domain.Sale, error)

	calls struct {
		CreateItem []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input item.CreateItemInput
		}
		GetItem []struct {
			Ctx   context.Context
			Actor domain.Actor
			ID    uuid.UUID
		}
		ListItems []struct {
			Ctx    context.Context
			Actor  domain.Actor
			Filter domain.ItemFilter
		}
		UpdateItem []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input item.UpdateItemInput
		}
		DeleteItem []struct {
			Ctx   context.Context
			Actor domain.Actor
			ID    uuid.UUID
		}
		AssignCategory []struct {
			Ctx        context.Context
			Actor      domain.Actor
			ID         uuid.UUID
			CategoryID *uuid.UUID
		}
		AssignLocation []struct {
			Ctx        context.Context
			Actor      domain.Actor
			ID         uuid.UUID
			LocationID *uuid.UUID
		}
		UpdateCondition []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input item.UpdateConditionInput
		}
		GetTags []struct {
			Ctx   context.Context
			Actor domain.Actor
			ID    uuid.UUID
		}
		SetTags []struct {
			Ctx    context.Context
			Actor  domain.Actor
			ID     uuid.UUID
			TagIDs []uuid.UUID
		}
		UpsertPurchase []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input item.PurchaseInput
		}
		UpsertListing []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input item.ListingInput
		}
		RecordSale []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input item.SaleInput
		}
	}
	lockCreateItem      sync.RWMutex
	lockGetItem         sync.RWMutex
	lockListItems       sync.RWMutex
	lockUpdateItem      sync.RWMutex
	lockDeleteItem      sync.RWMutex
	lockAssignCategory  sync.RWMutex
	lockAssignLocation  sync.RWMutex
	lockUpdateCondition sync.RWMutex
	lockGetTags         sync.RWMutex
	lockSetTags         sync.RWMutex
	lockUpsertPurchase  sync.RWMutex
	lockUpsertListing   sync.RWMutex
	lockRecordSale      sync.RWMutex
}

func (mock *itemServiceMock) CreateItem(ctx context.Context, actor domain.Actor, input item.CreateItemInput) (*item.ItemDetail, error) {
	if mock.CreateItemFunc == nil {
		panic("itemServiceMock.CreateItemFunc: method is nil but itemService.CreateItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input item.CreateItemInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockCreateItem.Lock()
	mock.calls.CreateItem = append(mock.calls.CreateItem, callInfo)
	mock.lockCreateItem.Unlock()
	return mock.CreateItemFunc(ctx, actor, input)
}

func (mock *itemServiceMock) CreateItemCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input item.CreateItemInput
} {
	mock.lockCreateItem.RLock()
	calls := mock.calls.CreateItem
	mock.lockCreateItem.RUnlock()
	return calls
}

func (mock *itemServiceMock) GetItem(ctx context.Context, actor domain.Actor, id uuid.UUID) (*item.ItemDetail, error) {
	if mock.GetItemFunc == nil {
		panic("itemServiceMock.GetItemFunc: method is nil but itemService.GetItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		ID    uuid.UUID
	}{Ctx: ctx, Actor: actor, ID: id}
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, actor, id)
}

func (mock *itemServiceMock) GetItemCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	ID    uuid.UUID
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *itemServiceMock) ListItems(ctx context.Context, actor domain.Actor, filter domain.ItemFilter) ([]item.InventoryRow, error) {
	if mock.ListItemsFunc == nil {
		panic("itemServiceMock.ListItemsFunc: method is nil but itemService.ListItems was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Actor  domain.Actor
		Filter domain.ItemFilter
	}{Ctx: ctx, Actor: actor, Filter: filter}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, callInfo)
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx, actor, filter)
}

func (mock *itemServiceMock) ListItemsCalls() []struct {
	Ctx    context.Context
	Actor  domain.Actor
	Filter domain.ItemFilter
} {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

func (mock *itemServiceMock) UpdateItem(ctx context.Context, actor domain.Actor, input item.UpdateItemInput) (*domain.Item, error) {
	if mock.UpdateItemFunc == nil {
		panic("itemServiceMock.UpdateItemFunc: method is nil but itemService.UpdateItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input item.UpdateItemInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockUpdateItem.Lock()
	mock.calls.UpdateItem = append(mock.calls.UpdateItem, callInfo)
	mock.lockUpdateItem.Unlock()
	return mock.UpdateItemFunc(ctx, actor, input)
}

func (mock *itemServiceMock) UpdateItemCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input item.UpdateItemInput
} {
	mock.lockUpdateItem.RLock()
	calls := mock.calls.UpdateItem
	mock.lockUpdateItem.RUnlock()
	return calls
}

func (mock *itemServiceMock) DeleteItem(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if mock.DeleteItemFunc == nil {
		panic("itemServiceMock.DeleteItemFunc: method is nil but itemService.DeleteItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		ID    uuid.UUID
	}{Ctx: ctx, Actor: actor, ID: id}
	mock.lockDeleteItem.Lock()
	mock.calls.DeleteItem = append(mock.calls.DeleteItem, callInfo)
	mock.lockDeleteItem.Unlock()
	return mock.DeleteItemFunc(ctx, actor, id)
}

func (mock *itemServiceMock) DeleteItemCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	ID    uuid.UUID
} {
	mock.lockDeleteItem.RLock()
	calls := mock.calls.DeleteItem
	mock.lockDeleteItem.RUnlock()
	return calls
}

func (mock *itemServiceMock) AssignCategory(ctx context.Context, actor domain.Actor, id uuid.UUID, categoryID *uuid.UUID) (*domain.Item, error) {
	if mock.AssignCategoryFunc == nil {
		panic("itemServiceMock.AssignCategoryFunc: method is nil but itemService.AssignCategory was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Actor      domain.Actor
		ID         uuid.UUID
		CategoryID *uuid.UUID
	}{Ctx: ctx, Actor: actor, ID: id, CategoryID: categoryID}
	mock.lockAssignCategory.Lock()
	mock.calls.AssignCategory = append(mock.calls.AssignCategory, callInfo)
	mock.lockAssignCategory.Unlock()
	return mock.AssignCategoryFunc(ctx, actor, id, categoryID)
}

func (mock *itemServiceMock) AssignCategoryCalls() []struct {
	Ctx        context.Context
	Actor      domain.Actor
	ID         uuid.UUID
	CategoryID *uuid.UUID
} {
	mock.lockAssignCategory.RLock()
	calls := mock.calls.AssignCategory
	mock.lockAssignCategory.RUnlock()
	return calls
}

func (mock *itemServiceMock) AssignLocation(ctx context.Context, actor domain.Actor, id uuid.UUID, locationID *uuid.UUID) (*domain.Item, error) {
	if mock.AssignLocationFunc == nil {
		panic("itemServiceMock.AssignLocationFunc: method is nil but itemService.AssignLocation was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Actor      domain.Actor
		ID         uuid.UUID
		LocationID *uuid.UUID
	}{Ctx: ctx, Actor: actor, ID: id, LocationID: locationID}
	mock.lockAssignLocation.Lock()
	mock.calls.AssignLocation = append(mock.calls.AssignLocation, callInfo)
	mock.lockAssignLocation.Unlock()
	return mock.AssignLocationFunc(ctx, actor, id, locationID)
}

func (mock *itemServiceMock) AssignLocationCalls() []struct {
	Ctx        context.Context
	Actor      domain.Actor
	ID         uuid.UUID
	LocationID *uuid.UUID
} {
	mock.lockAssignLocation.RLock()
	calls := mock.calls.AssignLocation
	mock.lockAssignLocation.RUnlock()
	return calls
}

func (mock *itemServiceMock) UpdateCondition(ctx context.Context, actor domain.Actor, input item.UpdateConditionInput) (*domain.Item, error) {
	if mock.UpdateConditionFunc == nil {
		panic("itemServiceMock.UpdateConditionFunc: method is nil but itemService.UpdateCondition was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input item.UpdateConditionInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockUpdateCondition.Lock()
	mock.calls.UpdateCondition = append(mock.calls.UpdateCondition, callInfo)
	mock.lockUpdateCondition.Unlock()
	return mock.UpdateConditionFunc(ctx, actor, input)
}

func (mock *itemServiceMock) UpdateConditionCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input item.UpdateConditionInput
} {
	mock.lockUpdateCondition.RLock()
	calls := mock.calls.UpdateCondition
	mock.lockUpdateCondition.RUnlock()
	return calls
}

func (mock *itemServiceMock) GetTags(ctx context.Context, actor domain.Actor, id uuid.UUID) ([]uuid.UUID, error) {
	if mock.GetTagsFunc == nil {
		panic("itemServiceMock.GetTagsFunc: method is nil but itemService.GetTags was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		ID    uuid.UUID
	}{Ctx: ctx, Actor: actor, ID: id}
	mock.lockGetTags.Lock()
	mock.calls.GetTags = append(mock.calls.GetTags, callInfo)
	mock.lockGetTags.Unlock()
	return mock.GetTagsFunc(ctx, actor, id)
}

func (mock *itemServiceMock) GetTagsCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	ID    uuid.UUID
} {
	mock.lockGetTags.RLock()
	calls := mock.calls.GetTags
	mock.lockGetTags.RUnlock()
	return calls
}

func (mock *itemServiceMock) SetTags(ctx context.Context, actor domain.Actor, id uuid.UUID, tagIDs []uuid.UUID) ([]uuid.UUID, error) {
	if mock.SetTagsFunc == nil {
		panic("itemServiceMock.SetTagsFunc: method is nil but itemService.SetTags was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Actor  domain.Actor
		ID     uuid.UUID
		TagIDs []uuid.UUID
	}{Ctx: ctx, Actor: actor, ID: id, TagIDs: tagIDs}
	mock.lockSetTags.Lock()
	mock.calls.SetTags = append(mock.calls.SetTags, callInfo)
	mock.lockSetTags.Unlock()
	return mock.SetTagsFunc(ctx, actor, id, tagIDs)
}

func (mock *itemServiceMock) SetTagsCalls() []struct {
	Ctx    context.Context
	Actor  domain.Actor
	ID     uuid.UUID
	TagIDs []uuid.UUID
} {
	mock.lockSetTags.RLock()
	calls := mock.calls.SetTags
	mock.lockSetTags.RUnlock()
	return calls
}

func (mock *itemServiceMock) UpsertPurchase(ctx context.Context, actor domain.Actor, input item.PurchaseInput) (*domain.Purchase, error) {
	if mock.UpsertPurchaseFunc == nil {
		panic("itemServiceMock.UpsertPurchaseFunc: method is nil but itemService.UpsertPurchase was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input item.PurchaseInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockUpsertPurchase.Lock()
	mock.calls.UpsertPurchase = append(mock.calls.UpsertPurchase, callInfo)
	mock.lockUpsertPurchase.Unlock()
	return mock.UpsertPurchaseFunc(ctx, actor, input)
}

func (mock *itemServiceMock) UpsertPurchaseCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input item.PurchaseInput
} {
	mock.lockUpsertPurchase.RLock()
	calls := mock.calls.UpsertPurchase
	mock.lockUpsertPurchase.RUnlock()
	return calls
}

func (mock *itemServiceMock) UpsertListing(ctx context.Context, actor domain.Actor, input item.ListingInput) (*domain.Listing, error) {
	if mock.UpsertListingFunc == nil {
		panic("itemServiceMock.UpsertListingFunc: method is nil but itemService.UpsertListing was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input item.ListingInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockUpsertListing.Lock()
	mock.calls.UpsertListing = append(mock.calls.UpsertListing, callInfo)
	mock.lockUpsertListing.Unlock()
	return mock.UpsertListingFunc(ctx, actor, input)
}

func (mock *itemServiceMock) UpsertListingCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input item.ListingInput
} {
	mock.lockUpsertListing.RLock()
	calls := mock.calls.UpsertListing
	mock.lockUpsertListing.RUnlock()
	return calls
}

func (mock *itemServiceMock) RecordSale(ctx context.Context, actor domain.Actor, input item.SaleInput) (*domain.Sale, error) {
	if mock.RecordSaleFunc == nil {
		panic("itemServiceMock.RecordSaleFunc: method is nil but itemService.RecordSale was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input item.SaleInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockRecordSale.Lock()
	mock.calls.RecordSale = append(mock.calls.RecordSale, callInfo)
	mock.lockRecordSale.Unlock()
	return mock.RecordSaleFunc(ctx, actor, input)
}

func (mock *itemServiceMock) RecordSaleCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input item.SaleInput
} {
	mock.lockRecordSale.RLock()
	calls := mock.calls.RecordSale
	mock.lockRecordSale.RUnlock()
	return calls
}
