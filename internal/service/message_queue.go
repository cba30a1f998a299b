package service

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/repository"
	"go.uber.org/zap"
)

type MessageQueueService interface {
	FindMessagesToQueue(ctx context.Context, limit int) ([]SendSmsTask, error)
	MarkMessageAsQueued(ctx context.Context, queuedSmsID int64) error
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

type messageQueue struct {
	queued repository.QueuedSmsRepository
	logger *zap.Logger
}

func NewMessageQueueService(queuedRepo repository.QueuedSmsRepository, logger *zap.Logger) MessageQueueService {
	return &messageQueue{queued: queuedRepo, logger: logger}
}

func (m *messageQueue) FindMessagesToQueue(ctx context.Context, limit int) ([]SendSmsTask, error) {
	m.logger.Debug("Finding messages to publish", zap.Int("batchSize", limit))

	rows, err := m.queued.FindDueUnpublished(ctx, time.Now(), limit)
	if err != nil {
		m.logger.Error("Failed to find unpublished messages", zap.Error(err))
		return nil, err
	}

	if len(rows) == 0 {
		m.logger.Debug("No messages found to publish")
		return nil, nil
	}

	tasks := make([]SendSmsTask, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, SendSmsTask{QueuedSmsID: row.ID})
	}

	return tasks, nil
}

func (m *messageQueue) MarkMessageAsQueued(ctx context.Context, queuedSmsID int64) error {
	if err := m.queued.MarkPublished(ctx, queuedSmsID, time.Now()); err != nil {
		m.logger.Error("Failed to mark message as published",
			zap.Error(err),
			zap.Int64("queuedSmsID", queuedSmsID))
		return err
	}

	m.logger.Debug("Successfully marked message as published",
		zap.Int64("queuedSmsID", queuedSmsID))

	return nil
}

// Cleanup deletes sent outbox rows last touched before now minus retention.
func (m *messageQueue) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	deleted, err := m.queued.DeleteSentBefore(ctx, time.Now().Add(-retention))
	if err != nil {
		m.logger.Error("Failed to clean up sent messages", zap.Error(err))
		return 0, err
	}

	if deleted > 0 {
		m.logger.Info("Cleaned up sent messages",
			zap.Int64("deleted", deleted),
			zap.Duration("retention", retention))
	}

	return deleted, nil
}
