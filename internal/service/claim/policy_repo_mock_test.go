package claim

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"sync"
)

var _ policyRepo = &policyRepoMock{}

type policyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Policy, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *policyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Policy, error) {
	if mock.GetByIDFunc == nil {
		panic("policyRepoMock.GetByIDFunc: method is nil but policyRepo.GetByID was just called")
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

func (mock *policyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
