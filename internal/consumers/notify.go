package consumers

import (
	"context"
	"encoding/json"

	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"go.uber.org/zap"
)

type NotifyConsumer interface {
	Consume(ctx context.Context) error
}

type notifyConsumer struct {
	service  service.NotifyService
	consumer mq.Consumer
	prefetch int
	logger   *zap.Logger
}

func NewNotifyConsumer(service service.NotifyService, consumer mq.Consumer, cfg mq.Config,
	logger *zap.Logger) NotifyConsumer {
	return &notifyConsumer{service: service, consumer: consumer, prefetch: cfg.Prefetch, logger: logger}
}

func (n *notifyConsumer) Consume(ctx context.Context) error {
	return n.consumer.Consume(ctx, n.prefetch, constants.QueueNotifyOffice, n.handleMessage)
}

func (n *notifyConsumer) handleMessage(ctx context.Context, body []byte) error {
	var task service.NotificationTask
	if err := json.Unmarshal(body, &task); err != nil {
		n.logger.Warn("invalid notification task", zap.Error(err))
		return err
	}

	return n.service.Deliver(ctx, task)
}
