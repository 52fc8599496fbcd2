package user

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFunc             func(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
	LockActiveAdminsFunc func(ctx context.Context) ([]uuid.UUID, error)
	SetStatusFunc        func(ctx context.Context, ids []uuid.UUID, status domain.UserStatus) (int64, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error)

	calls struct {
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
			F   domain.UserFilter
		}
		LockActiveAdmins []struct {
			Ctx context.Context
		}
		SetStatus []struct {
			Ctx    context.Context
			IDs    []uuid.UUID
			Status domain.UserStatus
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Patch domain.UserPatch
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockLockActiveAdmins sync.RWMutex
	lockSetStatus        sync.RWMutex
	lockUpdate           sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("userRepoMock.GetByIDForUpdateFunc: method is nil but userRepo.GetByIDForUpdate was just called")
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

func (mock *userRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.UserFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.UserFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) LockActiveAdmins(ctx context.Context) ([]uuid.UUID, error) {
	if mock.LockActiveAdminsFunc == nil {
		panic("userRepoMock.LockActiveAdminsFunc: method is nil but userRepo.LockActiveAdmins was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLockActiveAdmins.Lock()
	mock.calls.LockActiveAdmins = append(mock.calls.LockActiveAdmins, callInfo)
	mock.lockLockActiveAdmins.Unlock()
	return mock.LockActiveAdminsFunc(ctx)
}

func (mock *userRepoMock) LockActiveAdminsCalls() []struct {
	Ctx context.Context
} {
	mock.lockLockActiveAdmins.RLock()
	calls := mock.calls.LockActiveAdmins
	mock.lockLockActiveAdmins.RUnlock()
	return calls
}

func (mock *userRepoMock) SetStatus(ctx context.Context, ids []uuid.UUID, status domain.UserStatus) (int64, error) {
	if mock.SetStatusFunc == nil {
		panic("userRepoMock.SetStatusFunc: method is nil but userRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IDs    []uuid.UUID
		Status domain.UserStatus
	}{Ctx: ctx, IDs: ids, Status: status}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, ids, status)
}

func (mock *userRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	IDs    []uuid.UUID
	Status domain.UserStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Patch domain.UserPatch
	}{Ctx: ctx, ID: id, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Patch domain.UserPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
