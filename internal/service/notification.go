package service

import (
	"context"

	"go.uber.org/zap"
)

// NotificationService queues operator notifications. Failures are logged and
// never returned to the caller.
type NotificationService interface {
	NotifyOffice(ctx context.Context, subject, body string)
	PostSlack(ctx context.Context, text string)
}

type notification struct {
	dispatcher TaskDispatcher
	logger     *zap.Logger
}

func NewNotificationService(dispatcher TaskDispatcher, logger *zap.Logger) NotificationService {
	return &notification{dispatcher: dispatcher, logger: logger}
}

func (n *notification) NotifyOffice(ctx context.Context, subject, body string) {
	n.dispatch(ctx, NotificationTask{Channel: ChannelOffice, Subject: subject, Body: body})
}

func (n *notification) PostSlack(ctx context.Context, text string) {
	n.dispatch(ctx, NotificationTask{Channel: ChannelSlack, Body: text})
}

func (n *notification) dispatch(ctx context.Context, task NotificationTask) {
	if err := n.dispatcher.DispatchNotification(ctx, task); err != nil {
		n.logger.Warn("Failed to queue notification",
			zap.String("channel", string(task.Channel)),
			zap.String("subject", task.Subject),
			zap.Error(err))
	}
}
