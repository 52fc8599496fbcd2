package risk

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"sync"
)

var _ assessmentRepo = &assessmentRepoMock{}

type assessmentRepoMock struct {
	AnalyticsFunc func(ctx context.Context) ([]domain.RiskAnalytics, error)
	CreateFunc    func(ctx context.Context, a *domain.RiskAssessment) (*domain.RiskAssessment, error)
	LatestFunc    func(ctx context.Context, policyID uuid.UUID) (*domain.RiskAssessment, error)
	UpdateFunc    func(ctx context.Context, a *domain.RiskAssessment) (*domain.RiskAssessment, error)

	calls struct {
		Analytics []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			A   *domain.RiskAssessment
		}
		Latest []struct {
			Ctx      context.Context
			PolicyID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			A   *domain.RiskAssessment
		}
	}
	lockAnalytics sync.RWMutex
	lockCreate    sync.RWMutex
	lockLatest    sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *assessmentRepoMock) Analytics(ctx context.Context) ([]domain.RiskAnalytics, error) {
	if mock.AnalyticsFunc == nil {
		panic("assessmentRepoMock.AnalyticsFunc: method is nil but assessmentRepo.Analytics was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAnalytics.Lock()
	mock.calls.Analytics = append(mock.calls.Analytics, callInfo)
	mock.lockAnalytics.Unlock()
	return mock.AnalyticsFunc(ctx)
}

func (mock *assessmentRepoMock) AnalyticsCalls() []struct {
	Ctx context.Context
} {
	mock.lockAnalytics.RLock()
	calls := mock.calls.Analytics
	mock.lockAnalytics.RUnlock()
	return calls
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

func (mock *assessmentRepoMock) Latest(ctx context.Context, policyID uuid.UUID) (*domain.RiskAssessment, error) {
	if mock.LatestFunc == nil {
		panic("assessmentRepoMock.LatestFunc: method is nil but assessmentRepo.Latest was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PolicyID uuid.UUID
	}{Ctx: ctx, PolicyID: policyID}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, policyID)
}

func (mock *assessmentRepoMock) LatestCalls() []struct {
	Ctx      context.Context
	PolicyID uuid.UUID
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

func (mock *assessmentRepoMock) Update(ctx context.Context, a *domain.RiskAssessment) (*domain.RiskAssessment, error) {
	if mock.UpdateFunc == nil {
		panic("assessmentRepoMock.UpdateFunc: method is nil but assessmentRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.RiskAssessment
	}{Ctx: ctx, A: a}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, a)
}

func (mock *assessmentRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	A   *domain.RiskAssessment
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
