package notification

import (
	"context"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"sync"
)

var _ transport = &transportMock{}

type transportMock struct {
	SendFunc func(ctx context.Context, msg domain.Message) error

	calls struct {
		Send []struct {
			Ctx context.Context
			Msg domain.Message
		}
	}
	lockSend sync.RWMutex
}

func (mock *transportMock) Send(ctx context.Context, msg domain.Message) error {
	if mock.SendFunc == nil {
		panic("transportMock.SendFunc: method is nil but transport.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg domain.Message
	}{Ctx: ctx, Msg: msg}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, msg)
}

func (mock *transportMock) SendCalls() []struct {
	Ctx context.Context
	Msg domain.Message
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
