package mocks

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/stretchr/testify/mock"
)

type TaskDispatcher struct {
	mock.Mock
}

func (t *TaskDispatcher) DispatchSend(ctx context.Context, task service.SendSmsTask) error {
	args := t.Called(ctx, task)
	return args.Error(0)
}

func (t *TaskDispatcher) DispatchNotification(ctx context.Context, task service.NotificationTask) error {
	args := t.Called(ctx, task)
	return args.Error(0)
}
