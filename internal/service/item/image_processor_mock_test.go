package item

import (
	"sync"
)

var _ imageProcessor = &imageProcessorMock{}

type imageProcessorMock struct {
	ProcessFunc func([]byte) ([]byte, error)

	calls struct {
		Process []struct {
			Data []byte
		}
	}
	lockProcess sync.RWMutex
}

func (mock *imageProcessorMock) Process(data []byte) ([]byte, error) {
	if mock.ProcessFunc == nil {
		panic("imageProcessorMock.ProcessFunc: method is nil but imageProcessor.Process was just called")
	}
	callInfo := struct {
		Data []byte
	}{Data: data}
	mock.lockProcess.Lock()
	mock.calls.Process = append(mock.calls.Process, callInfo)
	mock.lockProcess.Unlock()
	return mock.ProcessFunc(data)
}

func (mock *imageProcessorMock) ProcessCalls() []struct {
	Data []byte
} {
	mock.lockProcess.RLock()
	calls := mock.calls.Process
	mock.lockProcess.RUnlock()
	return calls
}
