package imageedit

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"sync"
	"time"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc   func(context.Context, uuid.UUID) (*domain.Item, error)
	GetImageFunc  func(context.Context, uuid.UUID) (*domain.ItemImage, error)
	SetEditedFunc func(context.Context, uuid.UUID, string, string, time.Time) (*domain.ItemImage, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetImage []struct {
			Ctx     context.Context
			ImageID uuid.UUID
		}
		SetEdited []struct {
			Ctx       context.Context
			ImageID   uuid.UUID
			EditedURL string
			Prompt    string
			At        time.Time
		}
	}
	lockGetByID   sync.RWMutex
	lockGetImage  sync.RWMutex
	lockSetEdited sync.RWMutex
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

func (mock *itemRepoMock) GetImage(ctx context.Context, imageID uuid.UUID) (*domain.ItemImage, error) {
	if mock.GetImageFunc == nil {
		panic("itemRepoMock.GetImageFunc: method is nil but itemRepo.GetImage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ImageID uuid.UUID
	}{Ctx: ctx, ImageID: imageID}
	mock.lockGetImage.Lock()
	mock.calls.GetImage = append(mock.calls.GetImage, callInfo)
	mock.lockGetImage.Unlock()
	return mock.GetImageFunc(ctx, imageID)
}

func (mock *itemRepoMock) GetImageCalls() []struct {
	Ctx     context.Context
	ImageID uuid.UUID
} {
	mock.lockGetImage.RLock()
	calls := mock.calls.GetImage
	mock.lockGetImage.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetEdited(ctx context.Context, imageID uuid.UUID, editedURL string, prompt string, at time.Time) (*domain.ItemImage, error) {
	if mock.SetEditedFunc == nil {
		panic("itemRepoMock.SetEditedFunc: method is nil but itemRepo.SetEdited was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ImageID   uuid.UUID
		EditedURL string
		Prompt    string
		At        time.Time
	}{Ctx: ctx, ImageID: imageID, EditedURL: editedURL, Prompt: prompt, At: at}
	mock.lockSetEdited.Lock()
	mock.calls.SetEdited = append(mock.calls.SetEdited, callInfo)
	mock.lockSetEdited.Unlock()
	return mock.SetEditedFunc(ctx, imageID, editedURL, prompt, at)
}

func (mock *itemRepoMock) SetEditedCalls() []struct {
	Ctx       context.Context
	ImageID   uuid.UUID
	EditedURL string
	Prompt    string
	At        time.Time
} {
	mock.lockSetEdited.RLock()
	calls := mock.calls.SetEdited
	mock.lockSetEdited.RUnlock()
	return calls
}
