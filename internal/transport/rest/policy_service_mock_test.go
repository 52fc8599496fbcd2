package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/service/policy"
	"sync"
)

var _ policyService = &policyServiceMock{}

type policyServiceMock struct {
	CreateFunc     func(ctx context.Context, input policy.CreateInput) (*domain.Policy, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	GetFunc        func(ctx context.Context, id uuid.UUID) (*policy.Details, error)
	ListActiveFunc func(ctx context.Context, input policy.ListInput) ([]domain.Policy, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, input policy.UpdateInput) (*domain.Policy, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input policy.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListActive []struct {
			Ctx   context.Context
			Input policy.ListInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input policy.UpdateInput
		}
	}
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockGet        sync.RWMutex
	lockListActive sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *policyServiceMock) Create(ctx context.Context, input policy.CreateInput) (*domain.Policy, error) {
	if mock.CreateFunc == nil {
		panic("policyServiceMock.CreateFunc: method is nil but policyService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input policy.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *policyServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input policy.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *policyServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("policyServiceMock.DeleteFunc: method is nil but policyService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *policyServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *policyServiceMock) Get(ctx context.Context, id uuid.UUID) (*policy.Details, error) {
	if mock.GetFunc == nil {
		panic("policyServiceMock.GetFunc: method is nil but policyService.Get was just called")
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

func (mock *policyServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *policyServiceMock) ListActive(ctx context.Context, input policy.ListInput) ([]domain.Policy, error) {
	if mock.ListActiveFunc == nil {
		panic("policyServiceMock.ListActiveFunc: method is nil but policyService.ListActive was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input policy.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, input)
}

func (mock *policyServiceMock) ListActiveCalls() []struct {
	Ctx   context.Context
	Input policy.ListInput
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *policyServiceMock) Update(ctx context.Context, id uuid.UUID, input policy.UpdateInput) (*domain.Policy, error) {
	if mock.UpdateFunc == nil {
		panic("policyServiceMock.UpdateFunc: method is nil but policyService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input policy.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *policyServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input policy.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
