package imageedit

import (
	"context"
	"sync"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	UploadFunc func(context.Context, string, string, []byte) (string, error)

	calls struct {
		Upload []struct {
			Ctx         context.Context
			Path        string
			ContentType string
			Data        []byte
		}
	}
	lockUpload sync.RWMutex
}

func (mock *blobStoreMock) Upload(ctx context.Context, path string, contentType string, data []byte) (string, error) {
	if mock.UploadFunc == nil {
		panic("blobStoreMock.UploadFunc: method is nil but blobStore.Upload was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Path        string
		ContentType string
		Data        []byte
	}{Ctx: ctx, Path: path, ContentType: contentType, Data: data}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, path, contentType, data)
}

func (mock *blobStoreMock) UploadCalls() []struct {
	Ctx         context.Context
	Path        string
	ContentType string
	Data        []byte
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
