package service

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"github.com/Behyna/sms-services/campaign/pkg/smsprovider"
	"go.uber.org/zap"
)

const (
	reasonBlocking        = "recipient is blocking"
	reasonExceededRetries = "exceeded max retries"
)

type SendService interface {
	SendMessage(ctx context.Context, task SendSmsTask) error
}

type send struct {
	queuedRepo   repository.QueuedSmsRepository
	outboundRepo repository.OutboundRepository
	txManager    repository.TxManager
	provider     ProviderService
	maxAttempts  int
	staleAfter   time.Duration
	logger       *zap.Logger
}

func NewSendService(queuedRepo repository.QueuedSmsRepository, outboundRepo repository.OutboundRepository,
	txManager repository.TxManager, provider ProviderService, cfg *config.Config, logger *zap.Logger) SendService {
	return &send{
		queuedRepo:   queuedRepo,
		outboundRepo: outboundRepo,
		txManager:    txManager,
		provider:     provider,
		maxAttempts:  cfg.Sender.MaxAttempts,
		staleAfter:   cfg.Sender.StaleAfter,
		logger:       logger,
	}
}

func (s *send) SendMessage(ctx context.Context, task SendSmsTask) error {
	sms, err := s.queuedRepo.GetByID(ctx, task.QueuedSmsID)
	if err != nil {
		if errors.Is(err, repository.ErrQueuedSmsNotFound) {
			s.logger.Warn("Queued message not found, dropping task", zap.Int64("queuedSmsID", task.QueuedSmsID))
			return nil
		}

		s.logger.Error("Failed to load queued message", zap.Int64("queuedSmsID", task.QueuedSmsID), zap.Error(err))
		return mq.Temporary(ErrDatabase)
	}

	if sms.State == model.QueuedSmsStateSent || sms.State == model.QueuedSmsStateFailed {
		s.logger.Info("Message already processed",
			zap.Int64("queuedSmsID", sms.ID),
			zap.String("state", string(sms.State)))
		return nil
	}

	if sms.Recipient.IsBlocking {
		s.logger.Info("Recipient is blocking, not sending",
			zap.Int64("queuedSmsID", sms.ID),
			zap.Int64("recipientID", sms.RecipientID))
		return s.fail(ctx, sms.ID, reasonBlocking)
	}

	if s.maxAttempts > 0 && sms.AttemptCount >= s.maxAttempts {
		s.logger.Warn("Message exceeded max retries",
			zap.Int64("queuedSmsID", sms.ID),
			zap.Int("attempts", sms.AttemptCount))
		return s.fail(ctx, sms.ID, reasonExceededRetries)
	}

	now := time.Now()
	if err := s.queuedRepo.MarkSending(ctx, sms.ID, now, now.Add(-s.staleAfter)); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			s.logger.Info("Message being processed by another consumer", zap.Int64("queuedSmsID", sms.ID))
			return nil
		}

		s.logger.Error("Failed to claim message for sending", zap.Int64("queuedSmsID", sms.ID), zap.Error(err))
		return mq.Temporary(ErrDatabase)
	}

	response, sendErr := s.provider.Send(ctx, sms.Recipient.Number, sms.Content)
	if sendErr == nil {
		s.succeed(ctx, sms, response)
		return nil
	}

	if smsprovider.Code(sendErr) != "" && !smsprovider.IsTemporary(sendErr) {
		s.logger.Warn("Permanent send failure, not retrying",
			zap.Int64("queuedSmsID", sms.ID),
			zap.String("to", sms.Recipient.Number),
			zap.String("code", smsprovider.Code(sendErr)))
		return s.fail(ctx, sms.ID, sendErr.Error())
	}

	s.logger.Debug("Temporary failure, will retry",
		zap.Int64("queuedSmsID", sms.ID),
		zap.Int("attempt", sms.AttemptCount+1),
		zap.Error(sendErr))

	if err := s.queuedRepo.MarkRetry(ctx, sms.ID, sendErr.Error()); err != nil {
		s.logger.Error("Failed to release message for retry", zap.Int64("queuedSmsID", sms.ID), zap.Error(err))
	}

	return mq.Temporary(sendErr)
}

func (s *send) succeed(ctx context.Context, sms *model.QueuedSms, response smsprovider.Response) {
	recipientID := sms.RecipientID
	outbound := &model.SmsOutbound{
		Sid:              response.MessageID,
		Content:          sms.Content,
		TimeSent:         time.Now(),
		SentBy:           sms.SentBy,
		RecipientGroupID: sms.RecipientGroupID,
		RecipientID:      &recipientID,
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.outboundRepo.Create(ctx, outbound); err != nil && !errors.Is(err, repository.ErrOutboundDuplicate) {
			return err
		}
		return s.queuedRepo.MarkSent(ctx, sms.ID)
	})
	if err != nil {
		s.logger.Error("Failed to record sent message",
			zap.Int64("queuedSmsID", sms.ID),
			zap.String("providerMessageID", response.MessageID),
			zap.Error(err))
	}
}

func (s *send) fail(ctx context.Context, id int64, reason string) error {
	if err := s.queuedRepo.MarkFailed(ctx, id, reason); err != nil {
		s.logger.Error("Failed to mark message as failed", zap.Int64("queuedSmsID", id), zap.Error(err))
		return mq.Temporary(err)
	}
	return nil
}
