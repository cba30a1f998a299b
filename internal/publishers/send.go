package publishers

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"go.uber.org/zap"
)

// SendPublisher moves due outbox rows onto the send queue.
type SendPublisher interface {
	Publish(ctx context.Context) error
}

type sendPublisher struct {
	service   service.MessageQueueService
	publisher mq.Publisher
	batchSize int
	logger    *zap.Logger
}

func NewSendPublisher(service service.MessageQueueService, publisher mq.Publisher, cfg *config.Config,
	logger *zap.Logger) SendPublisher {
	return &sendPublisher{service: service, publisher: publisher, batchSize: cfg.Sender.BatchSize, logger: logger}
}

func (s *sendPublisher) Publish(ctx context.Context) error {
	tasks, err := s.service.FindMessagesToQueue(ctx, s.batchSize)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		return nil
	}

	s.logger.Info("Publishing messages", zap.Int("count", len(tasks)))

	successCount := 0
	for _, task := range tasks {
		if err := mq.PublishJSON(ctx, s.publisher, constants.QueueSmsSend, task); err != nil {
			s.logger.Error("Failed to publish message",
				zap.Error(err),
				zap.Int64("queuedSmsID", task.QueuedSmsID))
			continue
		}

		if err := s.service.MarkMessageAsQueued(ctx, task.QueuedSmsID); err != nil {
			continue
		}

		successCount++
	}

	if successCount > 0 {
		s.logger.Info("Successfully published messages to send",
			zap.Int("published", successCount),
			zap.Int("total", len(tasks)))
	}

	return nil
}
