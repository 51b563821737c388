package reporting

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/resale-backend/internal/domain"
	"sync"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	EntriesFunc func(context.Context, uuid.UUID, domain.DateRange) ([]domain.ReportEntry, error)

	calls struct {
		Entries []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Rng     domain.DateRange
		}
	}
	lockEntries sync.RWMutex
}

func (mock *reportRepoMock) Entries(ctx context.Context, ownerID uuid.UUID, rng domain.DateRange) ([]domain.ReportEntry, error) {
	if mock.EntriesFunc == nil {
		panic("reportRepoMock.EntriesFunc: method is nil but reportRepo.Entries was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Rng     domain.DateRange
	}{Ctx: ctx, OwnerID: ownerID, Rng: rng}
	mock.lockEntries.Lock()
	mock.calls.Entries = append(mock.calls.Entries, callInfo)
	mock.lockEntries.Unlock()
	return mock.EntriesFunc(ctx, ownerID, rng)
}

func (mock *reportRepoMock) EntriesCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Rng     domain.DateRange
} {
	mock.lockEntries.RLock()
	calls := mock.calls.Entries
	mock.lockEntries.RUnlock()
	return calls
}
