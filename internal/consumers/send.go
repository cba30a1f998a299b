package consumers

import (
	"context"
	"encoding/json"

	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"go.uber.org/zap"
)

type SendConsumer interface {
	Consume(ctx context.Context) error
}

type sendConsumer struct {
	service  service.SendService
	consumer mq.Consumer
	prefetch int
	logger   *zap.Logger
}

func NewSendConsumer(service service.SendService, consumer mq.Consumer, cfg mq.Config, logger *zap.Logger) SendConsumer {
	return &sendConsumer{
		service:  service,
		consumer: consumer,
		prefetch: cfg.Prefetch,
		logger:   logger,
	}
}

func (s *sendConsumer) Consume(ctx context.Context) error {
	return s.consumer.Consume(ctx, s.prefetch, constants.QueueSmsSend, s.handleMessage)
}

func (s *sendConsumer) handleMessage(ctx context.Context, body []byte) error {
	s.logger.Debug("received send task", zap.ByteString("body", body))

	var task service.SendSmsTask
	if err := json.Unmarshal(body, &task); err != nil {
		s.logger.Warn("invalid send task", zap.Error(err))
		return err
	}

	return s.service.SendMessage(ctx, task)
}
