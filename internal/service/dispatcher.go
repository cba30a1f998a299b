package service

import "context"

// TaskDispatcher hands work to the background workers.
type TaskDispatcher interface {
	DispatchSend(ctx context.Context, task SendSmsTask) error
	DispatchNotification(ctx context.Context, task NotificationTask) error
}
