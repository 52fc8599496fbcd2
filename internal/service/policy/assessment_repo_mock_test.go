package policy

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"sync"
)

var _ assessmentRepo = &assessmentRepoMock{}

type assessmentRepoMock struct {
	CreateFunc       func(ctx context.Context, a *domain.RiskAssessment) (*domain.RiskAssessment, error)
	ListByPolicyFunc func(ctx context.Context, policyID uuid.UUID) ([]domain.RiskAssessment, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.RiskAssessment
		}
		ListByPolicy []struct {
			Ctx      context.Context
			PolicyID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockListByPolicy sync.RWMutex
}

func (mock *assessmentRepoMock) Create(ctx context.Context, a *domain.RiskAssessment) (*domain.RiskAssessment, error) {
	if mock.CreateFunc == nil {
		panic("assessmentRepoMock.CreateFunc: method is nil but assessmentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.RiskAssessment
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *assessmentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.RiskAssessment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *assessmentRepoMock) ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]domain.RiskAssessment, error) {
	if mock.ListByPolicyFunc == nil {
		panic("assessmentRepoMock.ListByPolicyFunc: method is nil but assessmentRepo.ListByPolicy was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PolicyID uuid.UUID
	}{Ctx: ctx, PolicyID: policyID}
	mock.lockListByPolicy.Lock()
	mock.calls.ListByPolicy = append(mock.calls.ListByPolicy, callInfo)
	mock.lockListByPolicy.Unlock()
	return mock.ListByPolicyFunc(ctx, policyID)
}

func (mock *assessmentRepoMock) ListByPolicyCalls() []struct {
	Ctx      context.Context
	PolicyID uuid.UUID
} {
	mock.lockListByPolicy.RLock()
	calls := mock.calls.ListByPolicy
	mock.lockListByPolicy.RUnlock()
	return calls
}
