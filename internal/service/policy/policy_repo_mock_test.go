package policy

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"sync"
	"time"
)

var _ policyRepo = &policyRepoMock{}

type policyRepoMock struct {
	CreateFunc           func(ctx context.Context, p *domain.Policy) (*domain.Policy, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Policy, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Policy, error)
	ListFunc             func(ctx context.Context, f domain.PolicyFilter) ([]domain.Policy, error)
	MarkExpiredFunc      func(ctx context.Context, asOf time.Time) ([]domain.Policy, error)
	SoftDeleteFunc       func(ctx context.Context, id uuid.UUID) error
	UpdateFunc           func(ctx context.Context, p *domain.Policy) (*domain.Policy, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Policy
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.PolicyFilter
		}
		MarkExpired []struct {
			Ctx  context.Context
			AsOf time.Time
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			P   *domain.Policy
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockMarkExpired      sync.RWMutex
	lockSoftDelete       sync.RWMutex
	lockUpdate           sync.RWMutex
}

func (mock *policyRepoMock) Create(ctx context.Context, p *domain.Policy) (*domain.Policy, error) {
	if mock.CreateFunc == nil {
		panic("policyRepoMock.CreateFunc: method is nil but policyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Policy
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *policyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Policy
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *policyRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Policy, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("policyRepoMock.GetByIDForUpdateFunc: method is nil but policyRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *policyRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *policyRepoMock) List(ctx context.Context, f domain.PolicyFilter) ([]domain.Policy, error) {
	if mock.ListFunc == nil {
		panic("policyRepoMock.ListFunc: method is nil but policyRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PolicyFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *policyRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.PolicyFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *policyRepoMock) MarkExpired(ctx context.Context, asOf time.Time) ([]domain.Policy, error) {
	if mock.MarkExpiredFunc == nil {
		panic("policyRepoMock.MarkExpiredFunc: method is nil but policyRepo.MarkExpired was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		AsOf time.Time
	}{Ctx: ctx, AsOf: asOf}
	mock.lockMarkExpired.Lock()
	mock.calls.MarkExpired = append(mock.calls.MarkExpired, callInfo)
	mock.lockMarkExpired.Unlock()
	return mock.MarkExpiredFunc(ctx, asOf)
}

func (mock *policyRepoMock) MarkExpiredCalls() []struct {
	Ctx  context.Context
	AsOf time.Time
} {
	mock.lockMarkExpired.RLock()
	calls := mock.calls.MarkExpired
	mock.lockMarkExpired.RUnlock()
	return calls
}

func (mock *policyRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("policyRepoMock.SoftDeleteFunc: method is nil but policyRepo.SoftDelete was just called")
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

func (mock *policyRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *policyRepoMock) Update(ctx context.Context, p *domain.Policy) (*domain.Policy, error) {
	if mock.UpdateFunc == nil {
		panic("policyRepoMock.UpdateFunc: method is nil but policyRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Policy
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *policyRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   *domain.Policy
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
