package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/reply"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"go.uber.org/zap"
)

type OutgoingService interface {
	SendAdhoc(ctx context.Context, cmd SendAdhocCommand) (SendResult, error)
	SendGroup(ctx context.Context, cmd SendGroupCommand) (SendResult, error)
	// SendToRecipient personalises content and queues it for one contact.
	// It returns false without error when the contact is blocking.
	SendToRecipient(ctx context.Context, recipient model.Recipient, content, sentBy string,
		groupID *int64, sendAt *time.Time) (bool, error)
	ValidateContent(ctx context.Context, content string) error
}

type outgoing struct {
	recipientRepo  repository.RecipientRepository
	groupRepo      repository.GroupRepository
	queuedRepo     repository.QueuedSmsRepository
	siteConfigRepo repository.SiteConfigRepository
	dispatcher     TaskDispatcher
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

func NewOutgoingService(recipientRepo repository.RecipientRepository, groupRepo repository.GroupRepository,
	queuedRepo repository.QueuedSmsRepository, siteConfigRepo repository.SiteConfigRepository,
	dispatcher TaskDispatcher, m *metrics.Metrics, logger *zap.Logger) OutgoingService {
	return &outgoing{
		recipientRepo:  recipientRepo,
		groupRepo:      groupRepo,
		queuedRepo:     queuedRepo,
		siteConfigRepo: siteConfigRepo,
		dispatcher:     dispatcher,
		metrics:        m,
		logger:         logger,
	}
}

func (o *outgoing) SendAdhoc(ctx context.Context, cmd SendAdhocCommand) (SendResult, error) {
	if err := o.ValidateContent(ctx, cmd.Content); err != nil {
		return SendResult{}, err
	}

	if len(cmd.RecipientIDs) == 0 {
		return SendResult{}, NewServiceError(constants.ErrCodeNoRecipients, ErrNoRecipients)
	}

	recipients, err := o.recipientRepo.ListByIDs(ctx, cmd.RecipientIDs)
	if err != nil {
		o.logger.Error("Failed to load recipients", zap.Int("count", len(cmd.RecipientIDs)), zap.Error(err))
		return SendResult{}, fromRepository(err)
	}

	if len(recipients) == 0 {
		return SendResult{}, NewServiceError(constants.ErrCodeNoRecipients, ErrNoRecipients)
	}

	return o.sendAll(ctx, recipients, cmd.Content, cmd.SentBy, nil, cmd.ScheduledTime)
}

func (o *outgoing) SendGroup(ctx context.Context, cmd SendGroupCommand) (SendResult, error) {
	if err := o.ValidateContent(ctx, cmd.Content); err != nil {
		return SendResult{}, err
	}

	group, err := o.groupRepo.GetByID(ctx, cmd.GroupID)
	if err != nil {
		return SendResult{}, fromRepository(err)
	}

	members, err := o.groupRepo.ActiveMembers(ctx, group.ID)
	if err != nil {
		o.logger.Error("Failed to load group members", zap.Int64("groupID", group.ID), zap.Error(err))
		return SendResult{}, fromRepository(err)
	}

	if len(members) == 0 {
		return SendResult{}, NewServiceError(constants.ErrCodeNoRecipients, ErrNoRecipients)
	}

	groupID := group.ID
	return o.sendAll(ctx, members, cmd.Content, cmd.SentBy, &groupID, cmd.ScheduledTime)
}

func (o *outgoing) sendAll(ctx context.Context, recipients []model.Recipient, content, sentBy string,
	groupID *int64, sendAt *time.Time) (SendResult, error) {
	var result SendResult
	for _, r := range recipients {
		queued, err := o.SendToRecipient(ctx, r, content, sentBy, groupID, sendAt)
		if err != nil {
			return result, err
		}
		if queued {
			result.Queued++
		} else {
			result.Skipped++
		}
	}

	o.logger.Info("Outbound messages queued",
		zap.Int("queued", result.Queued),
		zap.Int("skipped", result.Skipped),
		zap.String("sentBy", sentBy))

	return result, nil
}

func (o *outgoing) SendToRecipient(ctx context.Context, recipient model.Recipient, content, sentBy string,
	groupID *int64, sendAt *time.Time) (bool, error) {
	if recipient.IsBlocking {
		o.logger.Debug("Skipping blocking contact", zap.Int64("recipientID", recipient.ID))
		o.metrics.RecordQueued("skipped")
		return false, nil
	}

	now := time.Now()
	at := now
	if sendAt != nil && sendAt.After(now) {
		at = *sendAt
	}

	sms := &model.QueuedSms{
		RecipientID:      recipient.ID,
		RecipientGroupID: groupID,
		Content:          reply.Personalise(content, recipient),
		SentBy:           sentBy,
		SendAt:           at,
		State:            model.QueuedSmsStateCreated,
	}

	if err := o.queuedRepo.Create(ctx, sms); err != nil {
		o.logger.Error("Failed to queue message",
			zap.Int64("recipientID", recipient.ID),
			zap.Error(err))
		return false, NewServiceError(constants.ErrCodeInternalError, ErrDatabase)
	}

	o.metrics.RecordQueued("queued")

	if at.After(now) {
		o.logger.Debug("Message scheduled",
			zap.Int64("queuedSmsID", sms.ID),
			zap.Time("sendAt", at))
		return true, nil
	}

	o.publish(ctx, sms.ID)
	return true, nil
}

// publish hands an immediate send to the worker. A row that cannot be
// published stays in the outbox for the scheduler.
func (o *outgoing) publish(ctx context.Context, id int64) {
	if err := o.dispatcher.DispatchSend(ctx, SendSmsTask{QueuedSmsID: id}); err != nil {
		o.logger.Warn("Failed to publish send task, leaving for scheduler",
			zap.Int64("queuedSmsID", id),
			zap.Error(err))
		return
	}

	if err := o.queuedRepo.MarkPublished(ctx, id, time.Now()); err != nil && !errors.Is(err, repository.ErrNoRowsAffected) {
		o.logger.Error("Failed to mark message as published",
			zap.Int64("queuedSmsID", id),
			zap.Error(err))
	}
}

func (o *outgoing) ValidateContent(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return NewServiceError(constants.ErrCodeInvalidContent, fmt.Errorf("%w: empty message", ErrInvalidContent))
	}

	if !keyword.IsGSM(content) {
		return NewServiceError(constants.ErrCodeInvalidContent,
			fmt.Errorf("%w: characters outside the GSM charset", ErrInvalidContent))
	}

	limit := model.DefaultSiteConfiguration().SmsCharLimit
	if cfg, err := o.siteConfigRepo.GetSiteConfiguration(ctx); err == nil {
		limit = cfg.SmsCharLimit
	} else {
		o.logger.Warn("Failed to load site configuration, using default char limit", zap.Error(err))
	}

	if n := utf8.RuneCountInString(content); limit > 0 && n > limit {
		return NewServiceError(constants.ErrCodeInvalidContent,
			fmt.Errorf("%w: %d characters exceeds the limit of %d", ErrInvalidContent, n, limit))
	}

	return nil
}
