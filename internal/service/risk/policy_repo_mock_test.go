package risk

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"sync"
)

var _ policyRepo = &policyRepoMock{}

type policyRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Policy, error)
	SetRiskLevelFunc     func(ctx context.Context, id uuid.UUID, level domain.RiskLevel) error

	calls struct {
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetRiskLevel []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Level domain.RiskLevel
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockSetRiskLevel     sync.RWMutex
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

func (mock *policyRepoMock) SetRiskLevel(ctx context.Context, id uuid.UUID, level domain.RiskLevel) error {
	if mock.SetRiskLevelFunc == nil {
		panic("policyRepoMock.SetRiskLevelFunc: method is nil but policyRepo.SetRiskLevel was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Level domain.RiskLevel
	}{Ctx: ctx, ID: id, Level: level}
	mock.lockSetRiskLevel.Lock()
	mock.calls.SetRiskLevel = append(mock.calls.SetRiskLevel, callInfo)
	mock.lockSetRiskLevel.Unlock()
	return mock.SetRiskLevelFunc(ctx, id, level)
}

func (mock *policyRepoMock) SetRiskLevelCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Level domain.RiskLevel
} {
	mock.lockSetRiskLevel.RLock()
	calls := mock.calls.SetRiskLevel
	mock.lockSetRiskLevel.RUnlock()
	return calls
}
