package risk

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ claimCounter = &claimCounterMock{}

type claimCounterMock struct {
	CountByPolicyFunc func(ctx context.Context, policyID uuid.UUID) (int, error)

	calls struct {
		CountByPolicy []struct {
			Ctx      context.Context
			PolicyID uuid.UUID
		}
	}
	lockCountByPolicy sync.RWMutex
}

func (mock *claimCounterMock) CountByPolicy(ctx context.Context, policyID uuid.UUID) (int, error) {
	if mock.CountByPolicyFunc == nil {
		panic("claimCounterMock.CountByPolicyFunc: method is nil but claimCounter.CountByPolicy was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PolicyID uuid.UUID
	}{Ctx: ctx, PolicyID: policyID}
	mock.lockCountByPolicy.Lock()
	mock.calls.CountByPolicy = append(mock.calls.CountByPolicy, callInfo)
	mock.lockCountByPolicy.Unlock()
	return mock.CountByPolicyFunc(ctx, policyID)
}

func (mock *claimCounterMock) CountByPolicyCalls() []struct {
	Ctx      context.Context
	PolicyID uuid.UUID
} {
	mock.lockCountByPolicy.RLock()
	calls := mock.calls.CountByPolicy
	mock.lockCountByPolicy.RUnlock()
	return calls
}
