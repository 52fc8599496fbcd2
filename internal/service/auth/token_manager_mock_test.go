package auth

import (
	"github.com/google/uuid"
	"sync"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateResetTokenFunc   func(userID uuid.UUID, stamp string) (string, error)
	GenerateSessionTokenFunc func(userID uuid.UUID, role string) (string, error)
	ValidateResetTokenFunc   func(token string) (uuid.UUID, string, error)
	ValidateSessionTokenFunc func(token string) (uuid.UUID, string, error)

	calls struct {
		GenerateResetToken []struct {
			UserID uuid.UUID
			Stamp  string
		}
		GenerateSessionToken []struct {
			UserID uuid.UUID
			Role   string
		}
		ValidateResetToken []struct {
			Token string
		}
		ValidateSessionToken []struct {
			Token string
		}
	}
	lockGenerateResetToken   sync.RWMutex
	lockGenerateSessionToken sync.RWMutex
	lockValidateResetToken   sync.RWMutex
	lockValidateSessionToken sync.RWMutex
}

func (mock *tokenManagerMock) GenerateResetToken(userID uuid.UUID, stamp string) (string, error) {
	if mock.GenerateResetTokenFunc == nil {
		panic("tokenManagerMock.GenerateResetTokenFunc: method is nil but tokenManager.GenerateResetToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Stamp  string
	}{UserID: userID, Stamp: stamp}
	mock.lockGenerateResetToken.Lock()
	mock.calls.GenerateResetToken = append(mock.calls.GenerateResetToken, callInfo)
	mock.lockGenerateResetToken.Unlock()
	return mock.GenerateResetTokenFunc(userID, stamp)
}

func (mock *tokenManagerMock) GenerateResetTokenCalls() []struct {
	UserID uuid.UUID
	Stamp  string
} {
	mock.lockGenerateResetToken.RLock()
	calls := mock.calls.GenerateResetToken
	mock.lockGenerateResetToken.RUnlock()
	return calls
}

func (mock *tokenManagerMock) GenerateSessionToken(userID uuid.UUID, role string) (string, error) {
	if mock.GenerateSessionTokenFunc == nil {
		panic("tokenManagerMock.GenerateSessionTokenFunc: method is nil but tokenManager.GenerateSessionToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Role   string
	}{UserID: userID, Role: role}
	mock.lockGenerateSessionToken.Lock()
	mock.calls.GenerateSessionToken = append(mock.calls.GenerateSessionToken, callInfo)
	mock.lockGenerateSessionToken.Unlock()
	return mock.GenerateSessionTokenFunc(userID, role)
}

func (mock *tokenManagerMock) GenerateSessionTokenCalls() []struct {
	UserID uuid.UUID
	Role   string
} {
	mock.lockGenerateSessionToken.RLock()
	calls := mock.calls.GenerateSessionToken
	mock.lockGenerateSessionToken.RUnlock()
	return calls
}

func (mock *tokenManagerMock) ValidateResetToken(token string) (uuid.UUID, string, error) {
	if mock.ValidateResetTokenFunc == nil {
		panic("tokenManagerMock.ValidateResetTokenFunc: method is nil but tokenManager.ValidateResetToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateResetToken.Lock()
	mock.calls.ValidateResetToken = append(mock.calls.ValidateResetToken, callInfo)
	mock.lockValidateResetToken.Unlock()
	return mock.ValidateResetTokenFunc(token)
}

func (mock *tokenManagerMock) ValidateResetTokenCalls() []struct {
	Token string
} {
	mock.lockValidateResetToken.RLock()
	calls := mock.calls.ValidateResetToken
	mock.lockValidateResetToken.RUnlock()
	return calls
}

func (mock *tokenManagerMock) ValidateSessionToken(token string) (uuid.UUID, string, error) {
	if mock.ValidateSessionTokenFunc == nil {
		panic("tokenManagerMock.ValidateSessionTokenFunc: method is nil but tokenManager.ValidateSessionToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateSessionToken.Lock()
	mock.calls.ValidateSessionToken = append(mock.calls.ValidateSessionToken, callInfo)
	mock.lockValidateSessionToken.Unlock()
	return mock.ValidateSessionTokenFunc(token)
}

func (mock *tokenManagerMock) ValidateSessionTokenCalls() []struct {
	Token string
} {
	mock.lockValidateSessionToken.RLock()
	calls := mock.calls.ValidateSessionToken
	mock.lockValidateSessionToken.RUnlock()
	return calls
}
