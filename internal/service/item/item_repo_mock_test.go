package item

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"sync"
	"time"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc             func(context.Context, *domain.Item) (*domain.Item, error)
	GetByIDFunc            func(context.Context, uuid.UUID) (*domain.Item, error)
	ListFunc               func(context.Context, uuid.UUID, domain.ItemFilter) ([]domain.Item, error)
	UpdateTitleFunc        func(context.Context, uuid.UUID, string) (*domain.Item, error)
	UpdateConditionFunc    func(context.Context, uuid.UUID, domain.ConditionUpdate) (*domain.Item, error)
	SetCategoryFunc        func(context.Context, uuid.UUID, *uuid.UUID) error
	SetLocationFunc        func(context.Context, uuid.UUID, *uuid.UUID) error
	SetStatusFunc          func(context.Context, uuid.UUID, domain.ItemStatus) error
	SoftDeleteFunc         func(context.Context, uuid.UUID) error
	HardDeleteFunc         func(context.Context, uuid.UUID) error
	PurgeDeletedBeforeFunc func(context.Context, time.Time) (int64, error)
	AddImageFunc           func(context.Context, uuid.UUID, string) (*domain.ItemImage, error)
	ListImagesFunc         func(context.Context, uuid.UUID) ([]domain.ItemImage, error)
	PrimaryImagesFunc      func(context.Context, []uuid.UUID) (map[uuid.UUID]domain.ItemImage, error)
	GetTagIDsFunc          func(context.Context, uuid.UUID) ([]uuid.UUID, error)
	ReplaceTagsFunc        func(context.Context, uuid.UUID, []uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item *domain.Item
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Filter  domain.ItemFilter
		}
		UpdateTitle []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Title string
		}
		UpdateCondition []struct {
			Ctx context.Context
			ID  uuid.UUID
			Upd domain.ConditionUpdate
		}
		SetCategory []struct {
			Ctx        context.Context
			ID         uuid.UUID
			CategoryID *uuid.UUID
		}
		SetLocation []struct {
			Ctx        context.Context
			ID         uuid.UUID
			LocationID *uuid.UUID
		}
		SetStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.ItemStatus
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		HardDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		PurgeDeletedBefore []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
		AddImage []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			URL    string
		}
		ListImages []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		PrimaryImages []struct {
			Ctx     context.Context
			ItemIDs []uuid.UUID
		}
		GetTagIDs []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		ReplaceTags []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			TagIDs []uuid.UUID
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockList               sync.RWMutex
	lockUpdateTitle        sync.RWMutex
	lockUpdateCondition    sync.RWMutex
	lockSetCategory        sync.RWMutex
	lockSetLocation        sync.RWMutex
	lockSetStatus          sync.RWMutex
	lockSoftDelete         sync.RWMutex
	lockHardDelete         sync.RWMutex
	lockPurgeDeletedBefore sync.RWMutex
	lockAddImage           sync.RWMutex
	lockListImages         sync.RWMutex
	lockPrimaryImages      sync.RWMutex
	lockGetTagIDs          sync.RWMutex
	lockReplaceTags        sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.Item
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.Item
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *itemRepoMock) List(ctx context.Context, ownerID uuid.UUID, filter domain.ItemFilter) ([]domain.Item, error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.ItemFilter
	}{Ctx: ctx, OwnerID: ownerID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, filter)
}

func (mock *itemRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Filter  domain.ItemFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*domain.Item, error) {
	if mock.UpdateTitleFunc == nil {
		panic("itemRepoMock.UpdateTitleFunc: method is nil but itemRepo.UpdateTitle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Title string
	}{Ctx: ctx, ID: id, Title: title}
	mock.lockUpdateTitle.Lock()
	mock.calls.UpdateTitle = append(mock.calls.UpdateTitle, callInfo)
	mock.lockUpdateTitle.Unlock()
	return mock.UpdateTitleFunc(ctx, id, title)
}

func (mock *itemRepoMock) UpdateTitleCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Title string
} {
	mock.lockUpdateTitle.RLock()
	calls := mock.calls.UpdateTitle
	mock.lockUpdateTitle.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateCondition(ctx context.Context, id uuid.UUID, upd domain.ConditionUpdate) (*domain.Item, error) {
	if mock.UpdateConditionFunc == nil {
		panic("itemRepoMock.UpdateConditionFunc: method is nil but itemRepo.UpdateCondition was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Upd domain.ConditionUpdate
	}{Ctx: ctx, ID: id, Upd: upd}
	mock.lockUpdateCondition.Lock()
	mock.calls.UpdateCondition = append(mock.calls.UpdateCondition, callInfo)
	mock.lockUpdateCondition.Unlock()
	return mock.UpdateConditionFunc(ctx, id, upd)
}

func (mock *itemRepoMock) UpdateConditionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Upd domain.ConditionUpdate
} {
	mock.lockUpdateCondition.RLock()
	calls := mock.calls.UpdateCondition
	mock.lockUpdateCondition.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetCategory(ctx context.Context, id uuid.UUID, categoryID *uuid.UUID) error {
	if mock.SetCategoryFunc == nil {
		panic("itemRepoMock.SetCategoryFunc: method is nil but itemRepo.SetCategory was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		CategoryID *uuid.UUID
	}{Ctx: ctx, ID: id, CategoryID: categoryID}
	mock.lockSetCategory.Lock()
	mock.calls.SetCategory = append(mock.calls.SetCategory, callInfo)
	mock.lockSetCategory.Unlock()
	return mock.SetCategoryFunc(ctx, id, categoryID)
}

func (mock *itemRepoMock) SetCategoryCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	CategoryID *uuid.UUID
} {
	mock.lockSetCategory.RLock()
	calls := mock.calls.SetCategory
	mock.lockSetCategory.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetLocation(ctx context.Context, id uuid.UUID, locationID *uuid.UUID) error {
	if mock.SetLocationFunc == nil {
		panic("itemRepoMock.SetLocationFunc: method is nil but itemRepo.SetLocation was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		LocationID *uuid.UUID
	}{Ctx: ctx, ID: id, LocationID: locationID}
	mock.lockSetLocation.Lock()
	mock.calls.SetLocation = append(mock.calls.SetLocation, callInfo)
	mock.lockSetLocation.Unlock()
	return mock.SetLocationFunc(ctx, id, locationID)
}

func (mock *itemRepoMock) SetLocationCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	LocationID *uuid.UUID
} {
	mock.lockSetLocation.RLock()
	calls := mock.calls.SetLocation
	mock.lockSetLocation.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error {
	if mock.SetStatusFunc == nil {
		panic("itemRepoMock.SetStatusFunc: method is nil but itemRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.ItemStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *itemRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.ItemStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *itemRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("itemRepoMock.SoftDeleteFunc: method is nil but itemRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *itemRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *itemRepoMock) HardDelete(ctx context.Context, id uuid.UUID) error {
	if mock.HardDeleteFunc == nil {
		panic("itemRepoMock.HardDeleteFunc: method is nil but itemRepo.HardDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockHardDelete.Lock()
	mock.calls.HardDelete = append(mock.calls.HardDelete, callInfo)
	mock.lockHardDelete.Unlock()
	return mock.HardDeleteFunc(ctx, id)
}

func (mock *itemRepoMock) HardDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockHardDelete.RLock()
	calls := mock.calls.HardDelete
	mock.lockHardDelete.RUnlock()
	return calls
}

func (mock *itemRepoMock) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.PurgeDeletedBeforeFunc == nil {
		panic("itemRepoMock.PurgeDeletedBeforeFunc: method is nil but itemRepo.PurgeDeletedBefore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockPurgeDeletedBefore.Lock()
	mock.calls.PurgeDeletedBefore = append(mock.calls.PurgeDeletedBefore, callInfo)
	mock.lockPurgeDeletedBefore.Unlock()
	return mock.PurgeDeletedBeforeFunc(ctx, cutoff)
}

func (mock *itemRepoMock) PurgeDeletedBeforeCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.lockPurgeDeletedBefore.RLock()
	calls := mock.calls.PurgeDeletedBefore
	mock.lockPurgeDeletedBefore.RUnlock()
	return calls
}

func (mock *itemRepoMock) AddImage(ctx context.Context, itemID uuid.UUID, url string) (*domain.ItemImage, error) {
	if mock.AddImageFunc == nil {
		panic("itemRepoMock.AddImageFunc: method is nil but itemRepo.AddImage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		URL    string
	}{Ctx: ctx, ItemID: itemID, URL: url}
	mock.lockAddImage.Lock()
	mock.calls.AddImage = append(mock.calls.AddImage, callInfo)
	mock.lockAddImage.Unlock()
	return mock.AddImageFunc(ctx, itemID, url)
}

func (mock *itemRepoMock) AddImageCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	URL    string
} {
	mock.lockAddImage.RLock()
	calls := mock.calls.AddImage
	mock.lockAddImage.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListImages(ctx context.Context, itemID uuid.UUID) ([]domain.ItemImage, error) {
	if mock.ListImagesFunc == nil {
		panic("itemRepoMock.ListImagesFunc: method is nil but itemRepo.ListImages was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockListImages.Lock()
	mock.calls.ListImages = append(mock.calls.ListImages, callInfo)
	mock.lockListImages.Unlock()
	return mock.ListImagesFunc(ctx, itemID)
}

func (mock *itemRepoMock) ListImagesCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockListImages.RLock()
	calls := mock.calls.ListImages
	mock.lockListImages.RUnlock()
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

func (mock *itemRepoMock) GetTagIDs(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error) {
	if mock.GetTagIDsFunc == nil {
		panic("itemRepoMock.GetTagIDsFunc: method is nil but itemRepo.GetTagIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockGetTagIDs.Lock()
	mock.calls.GetTagIDs = append(mock.calls.GetTagIDs, callInfo)
	mock.lockGetTagIDs.Unlock()
	return mock.GetTagIDsFunc(ctx, itemID)
}

func (mock *itemRepoMock) GetTagIDsCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockGetTagIDs.RLock()
	calls := mock.calls.GetTagIDs
	mock.lockGetTagIDs.RUnlock()
	return calls
}

func (mock *itemRepoMock) ReplaceTags(ctx context.Context, itemID uuid.UUID, tagIDs []uuid.UUID) error {
	if mock.ReplaceTagsFunc == nil {
		panic("itemRepoMock.ReplaceTagsFunc: method is nil but itemRepo.ReplaceTags was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		TagIDs []uuid.UUID
	}{Ctx: ctx, ItemID: itemID, TagIDs: tagIDs}
	mock.lockReplaceTags.Lock()
	mock.calls.ReplaceTags = append(mock.calls.ReplaceTags, callInfo)
	mock.lockReplaceTags.Unlock()
	return mock.ReplaceTagsFunc(ctx, itemID, tagIDs)
}

func (mock *itemRepoMock) ReplaceTagsCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	TagIDs []uuid.UUID
} {
	mock.lockReplaceTags.RLock()
	calls := mock.calls.ReplaceTags
	mock.lockReplaceTags.RUnlock()
	return calls
}
