package policy

import (
	"context"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	DispatchFunc func(ctx context.Context, n *domain.Notification)
	EnqueueFunc  func(ctx context.Context, event domain.NotificationEvent, recipient string, payload domain.NotificationPayload) (*domain.Notification, error)

	calls struct {
		Dispatch []struct {
			Ctx context.Context
			N   *domain.Notification
		}
		Enqueue []struct {
			Ctx       context.Context
			Event     domain.NotificationEvent
			Recipient string
			Payload   domain.NotificationPayload
		}
	}
	lockDispatch sync.RWMutex
	lockEnqueue  sync.RWMutex
}

func (mock *notifierMock) Dispatch(ctx context.Context, n *domain.Notification) {
	if mock.DispatchFunc == nil {
		panic("notifierMock.DispatchFunc: method is nil but notifier.Dispatch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   *domain.Notification
	}{Ctx: ctx, N: n}
	mock.lockDispatch.Lock()
	mock.calls.Dispatch = append(mock.calls.Dispatch, callInfo)
	mock.lockDispatch.Unlock()
	mock.DispatchFunc(ctx, n)
}

func (mock *notifierMock) DispatchCalls() []struct {
	Ctx context.Context
	N   *domain.Notification
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}

func (mock *notifierMock) Enqueue(ctx context.Context, event domain.NotificationEvent, recipient string, payload domain.NotificationPayload) (*domain.Notification, error) {
	if mock.EnqueueFunc == nil {
		panic("notifierMock.EnqueueFunc: method is nil but notifier.Enqueue was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Event     domain.NotificationEvent
		Recipient string
		Payload   domain.NotificationPayload
	}{Ctx: ctx, Event: event, Recipient: recipient, Payload: payload}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(ctx, event, recipient, payload)
}

func (mock *notifierMock) EnqueueCalls() []struct {
	Ctx       context.Context
	Event     domain.NotificationEvent
	Recipient string
	Payload   domain.NotificationPayload
} {
	mock.lockEnqueue.RLock()
	calls := mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}
