package rest

import (
	"context"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"github.com/heartmarshall/resale-backend/internal/service/reporting"
	"io"
	"sync"
)

var _ reportingService = &reportingServiceMock{}

type reportingServiceMock struct {
	ReportFunc    func(context.Context, domain.Actor, domain.DateRange) (*reporting.Report, error)
	ExportCSVFunc func(context.Context, domain.Actor, domain.DateRange, io.Writer) error

	calls struct {
		Report []struct {
			Ctx   context.Context
			Actor domain.Actor
			Rng   domain.DateRange
		}
		ExportCSV []struct {
			Ctx   context.Context
			Actor domain.Actor
			Rng   domain.DateRange
			W     io.Writer
		}
	}
	lockReport    sync.RWMutex
	lockExportCSV sync.RWMutex
}

func (mock *reportingServiceMock) Report(ctx context.Context, actor domain.Actor, rng domain.DateRange) (*reporting.Report, error) {
	if mock.ReportFunc == nil {
		panic("reportingServiceMock.ReportFunc: method is nil but reportingService.Report was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Rng   domain.DateRange
	}{Ctx: ctx, Actor: actor, Rng: rng}
	mock.lockReport.Lock()
	mock.calls.Report = append(mock.calls.Report, callInfo)
	mock.lockReport.Unlock()
	return mock.ReportFunc(ctx, actor, rng)
}

func (mock *reportingServiceMock) ReportCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Rng   domain.DateRange
} {
	mock.lockReport.RLock()
	calls := mock.calls.Report
	mock.lockReport.RUnlock()
	return calls
}

func (mock *reportingServiceMock) ExportCSV(ctx context.Context, actor domain.Actor, rng domain.DateRange, w io.Writer) error {
	if mock.ExportCSVFunc == nil {
		panic("reportingServiceMock.ExportCSVFunc: method is nil but reportingService.ExportCSV was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Rng   domain.DateRange
		W     io.Writer
	}{Ctx: ctx, Actor: actor, Rng: rng, W: w}
	mock.lockExportCSV.Lock()
	mock.calls.ExportCSV = append(mock.calls.ExportCSV, callInfo)
	mock.lockExportCSV.Unlock()
	return mock.ExportCSVFunc(ctx, actor, rng, w)
}

func (mock *reportingServiceMock) ExportCSVCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Rng   domain.DateRange
	W     io.Writer
} {
	mock.lockExportCSV.RLock()
	calls := mock.calls.ExportCSV
	mock.lockExportCSV.RUnlock()
	return calls
}
