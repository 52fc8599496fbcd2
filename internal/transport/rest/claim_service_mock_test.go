package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/service/claim"
	"sync"
)

var _ claimService = &claimServiceMock{}

type claimServiceMock struct {
	CreateFunc       func(ctx context.Context, input claim.CreateInput) (*domain.Claim, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	ListFunc         func(ctx context.Context, input claim.ListInput) ([]domain.Claim, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, input claim.StatusInput) (*domain.Claim, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input claim.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input claim.ListInput
		}
		UpdateStatus []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input claim.StatusInput
		}
	}
	lockCreate       sync.RWMutex
	lockGet          sync.RWMutex
	lockList         sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *claimServiceMock) Create(ctx context.Context, input claim.CreateInput) (*domain.Claim, error) {
	if mock.CreateFunc == nil {
		panic("claimServiceMock.CreateFunc: method is nil but claimService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input claim.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *claimServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input claim.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *claimServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	if mock.GetFunc == nil {
		panic("claimServiceMock.GetFunc: method is nil but claimService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *claimServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *claimServiceMock) List(ctx context.Context, input claim.ListInput) ([]domain.Claim, error) {
	if mock.ListFunc == nil {
		panic("claimServiceMock.ListFunc: method is nil but claimService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input claim.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *claimServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input claim.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *claimServiceMock) UpdateStatus(ctx context.Context, id uuid.UUID, input claim.StatusInput) (*domain.Claim, error) {
	if mock.UpdateStatusFunc == nil {
		panic("claimServiceMock.UpdateStatusFunc: method is nil but claimService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input claim.StatusInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, input)
}

func (mock *claimServiceMock) UpdateStatusCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input claim.StatusInput
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
