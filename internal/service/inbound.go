package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/cache"
	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/reply"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"go.uber.org/zap"
)

const sentByAutoNameRequest = "auto name request"

type InboundService interface {
	HandleInbound(ctx context.Context, cmd InboundCommand) (InboundResult, error)
}

type inbound struct {
	keywordRepo    repository.KeywordRepository
	recipientRepo  repository.RecipientRepository
	inboundRepo    repository.InboundRepository
	siteConfigRepo repository.SiteConfigRepository
	outgoing       OutgoingService
	notifications  NotificationService
	invalidator    cache.Invalidator
	tieBreak       keyword.TieBreak
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

func NewInboundService(keywordRepo repository.KeywordRepository, recipientRepo repository.RecipientRepository,
	inboundRepo repository.InboundRepository, siteConfigRepo repository.SiteConfigRepository,
	outgoing OutgoingService, notifications NotificationService, invalidator cache.Invalidator,
	matcherCfg keyword.Config, m *metrics.Metrics, logger *zap.Logger) InboundService {
	return &inbound{
		keywordRepo:    keywordRepo,
		recipientRepo:  recipientRepo,
		inboundRepo:    inboundRepo,
		siteConfigRepo: siteConfigRepo,
		outgoing:       outgoing,
		notifications:  notifications,
		invalidator:    invalidator,
		tieBreak:       matcherCfg.TieBreak,
		metrics:        m,
		logger:         logger,
	}
}

// HandleInbound logs one received message, applies its side effects and
// returns the reply for the webhook. Only a failure to record the message
// is returned as an error.
func (s *inbound) HandleInbound(ctx context.Context, cmd InboundCommand) (InboundResult, error) {
	now := time.Now()
	if cmd.ReceivedAt.IsZero() {
		cmd.ReceivedAt = now
	}
	cmd.Body = strings.TrimSpace(cmd.Body)

	match := s.match(ctx, cmd.Body)
	siteCfg, responses := s.settings(ctx)

	recipient, created, err := s.getOrCreateRecipient(ctx, cmd.From)
	if err != nil {
		return InboundResult{}, err
	}

	sms := &model.SmsInbound{
		Sid:            cmd.Sid,
		Content:        cmd.Body,
		TimeReceived:   &cmd.ReceivedAt,
		SenderName:     recipient.FullName(),
		SenderNum:      cmd.From,
		MatchedKeyword: keyword.Label(match),
		MatchedColour:  keyword.Colour(match),
		MatchedLink:    keyword.LogLink(match),
	}

	if err := s.inboundRepo.Create(ctx, sms); err != nil {
		if errors.Is(err, repository.ErrInboundDuplicate) {
			s.logger.Info("Inbound message already recorded, ignoring retry", zap.String("sid", cmd.Sid))
			return InboundResult{Match: match}, nil
		}

		s.logger.Error("Failed to record inbound message",
			zap.String("sid", cmd.Sid),
			zap.String("from", cmd.From),
			zap.Error(err))
		return InboundResult{}, ErrDatabase
	}

	s.invalidate(ctx, match)
	s.metrics.RecordInbound(match.Kind.String())

	if created && match.Kind != keyword.KindName {
		s.askForName(ctx, siteCfg, responses, *recipient, cmd)
	}

	s.notifications.PostSlack(ctx, fmt.Sprintf("%s\nFrom: %s\n(matched: %s)",
		cmd.Body, recipient.FullName(), keyword.Label(match)))

	text := s.reply(ctx, match, recipient, siteCfg, responses, cmd, now)

	result := InboundResult{
		Reply:     text,
		Send:      text != "" && !siteCfg.DisableAllReplies,
		Match:     match,
		InboundID: sms.ID,
	}

	switch {
	case result.Send:
		s.metrics.RecordReply("sent")
	case text != "":
		s.metrics.RecordReply("suppressed")
	}

	s.logger.Info("Inbound message handled",
		zap.Int64("inboundID", sms.ID),
		zap.String("from", cmd.From),
		zap.String("matched", sms.MatchedKeyword),
		zap.Bool("reply", result.Send))

	return result, nil
}

func (s *inbound) match(ctx context.Context, body string) keyword.MatchResult {
	keywords, err := s.keywordRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load keywords, matching control words only", zap.Error(err))
		keywords = nil
	}

	match, err := keyword.NewMatcher(keywords, s.tieBreak).Match(body)
	if err != nil {
		return keyword.NoMatch()
	}
	return match
}

func (s *inbound) settings(ctx context.Context) (model.SiteConfiguration, model.DefaultResponses) {
	siteCfg := model.DefaultSiteConfiguration()
	if cfg, err := s.siteConfigRepo.GetSiteConfiguration(ctx); err != nil {
		s.logger.Error("Failed to load site configuration, using defaults", zap.Error(err))
	} else {
		siteCfg = *cfg
	}

	responses := model.DefaultDefaultResponses()
	if r, err := s.siteConfigRepo.GetDefaultResponses(ctx); err != nil {
		s.logger.Error("Failed to load default responses, using defaults", zap.Error(err))
	} else {
		responses = *r
	}

	return siteCfg, responses
}

func (s *inbound) getOrCreateRecipient(ctx context.Context, number string) (*model.Recipient, bool, error) {
	recipient, err := s.recipientRepo.GetByNumber(ctx, number)
	if err == nil {
		return recipient, false, nil
	}
	if !errors.Is(err, repository.ErrRecipientNotFound) {
		s.logger.Error("Failed to look up sender", zap.String("from", number), zap.Error(err))
		return nil, false, ErrDatabase
	}

	recipient = &model.Recipient{
		FirstName: model.UnknownFirstName,
		LastName:  model.UnknownLastName,
		Number:    number,
	}

	err = s.recipientRepo.Create(ctx, recipient)
	if err == nil {
		s.logger.Info("Created contact for unknown sender",
			zap.Int64("recipientID", recipient.ID),
			zap.String("from", number))
		return recipient, true, nil
	}

	if !errors.Is(err, repository.ErrRecipientDuplicate) {
		s.logger.Error("Failed to create contact", zap.String("from", number), zap.Error(err))
		return nil, false, ErrDatabase
	}

	recipient, err = s.recipientRepo.GetByNumber(ctx, number)
	if err != nil {
		s.logger.Error("Failed to re-read contact after duplicate insert", zap.String("from", number), zap.Error(err))
		return nil, false, ErrDatabase
	}

	return recipient, false, nil
}

func (s *inbound) askForName(ctx context.Context, siteCfg model.SiteConfiguration, responses model.DefaultResponses,
	recipient model.Recipient, cmd InboundCommand) {
	if siteCfg.DisableAllReplies {
		return
	}

	content := reply.Template(responses, reply.KindAutoNameRequest)
	if _, err := s.outgoing.SendToRecipient(ctx, recipient, content, sentByAutoNameRequest, nil, nil); err != nil {
		s.logger.Warn("Failed to queue name request",
			zap.Int64("recipientID", recipient.ID),
			zap.Error(err))
	}

	s.notifications.NotifyOffice(ctx,
		fmt.Sprintf("[%s] Unknown Contact!", siteCfg.SiteName),
		fmt.Sprintf("SMS:%s\nFrom:%s\n\n\nThis person is unknown and has been asked for their name.", cmd.Body, cmd.From))
}

func (s *inbound) reply(ctx context.Context, match keyword.MatchResult, recipient *model.Recipient,
	siteCfg model.SiteConfiguration, responses model.DefaultResponses, cmd InboundCommand, now time.Time) string {
	switch match.Kind {
	case keyword.KindStart:
		if err := s.recipientRepo.UpdateBlocking(ctx, recipient.ID, false); err != nil {
			s.logger.Error("Failed to unblock contact", zap.Int64("recipientID", recipient.ID), zap.Error(err))
		}
		recipient.IsBlocking = false
		return reply.Personalise(reply.Template(responses, reply.KindStartReply), *recipient)

	case keyword.KindStop:
		if err := s.recipientRepo.UpdateBlocking(ctx, recipient.ID, true); err != nil {
			s.logger.Error("Failed to block contact", zap.Int64("recipientID", recipient.ID), zap.Error(err))
		}
		recipient.IsBlocking = true
		s.notifications.NotifyOffice(ctx,
			fmt.Sprintf("[%s] %s has opted out", siteCfg.SiteName, recipient.FullName()),
			fmt.Sprintf("%s (%s) has blacklisted us and will no longer receive messages.", recipient.FullName(), cmd.From))
		return ""

	case keyword.KindName:
		s.warnIfBlocking(ctx, siteCfg, *recipient, cmd)
		return s.updateName(ctx, recipient, siteCfg, responses, cmd)

	default:
		s.warnIfBlocking(ctx, siteCfg, *recipient, cmd)
		return reply.Resolve(match, *recipient, responses, now)
	}
}

func (s *inbound) updateName(ctx context.Context, recipient *model.Recipient, siteCfg model.SiteConfiguration,
	responses model.DefaultResponses, cmd InboundCommand) string {
	signup := fmt.Sprintf("SMS:\n\t%s\nFrom:\n\t%s\n", cmd.Body, cmd.From)

	first, last, err := reply.ParseName(cmd.Body)
	if err == nil {
		err = s.recipientRepo.UpdateName(ctx, recipient.ID, first, last)
	}
	if err != nil {
		s.logger.Info("Name update failed",
			zap.Int64("recipientID", recipient.ID),
			zap.String("from", cmd.From),
			zap.Error(err))
		s.notifications.NotifyOffice(ctx, fmt.Sprintf("[%s] New Signup - FAILED!", siteCfg.SiteName), signup)
		return reply.Personalise(reply.Template(responses, reply.KindNameFailureReply), *recipient)
	}

	recipient.FirstName = first
	recipient.LastName = last

	if err := s.inboundRepo.UpdateSenderName(ctx, recipient.Number, recipient.FullName()); err != nil {
		s.logger.Warn("Failed to relabel past messages", zap.Int64("recipientID", recipient.ID), zap.Error(err))
	} else {
		s.invalidate(ctx, keyword.NoMatch())
	}

	s.notifications.NotifyOffice(ctx, fmt.Sprintf("[%s] New Signup!", siteCfg.SiteName), signup)
	return reply.Personalise(reply.Template(responses, reply.KindNameUpdateReply), *recipient)
}

func (s *inbound) warnIfBlocking(ctx context.Context, siteCfg model.SiteConfiguration, recipient model.Recipient,
	cmd InboundCommand) {
	if !recipient.IsBlocking {
		return
	}

	s.notifications.NotifyOffice(ctx,
		fmt.Sprintf("[%s] %s sent a message while blocking", siteCfg.SiteName, recipient.FullName()),
		fmt.Sprintf("%s (%s) has blacklisted us in the past but has just sent this message:\n\n\t%s\n\n"+
			"They will not receive replies until they send \"start\".", recipient.FullName(), cmd.From, cmd.Body))
}

func (s *inbound) invalidate(ctx context.Context, match keyword.MatchResult) {
	var keywordID int64
	if match.Kind == keyword.KindKeyword && match.Keyword != nil {
		keywordID = match.Keyword.ID
	}

	if err := s.invalidator.InvalidateInbound(ctx, keywordID); err != nil {
		s.logger.Warn("Failed to invalidate inbound caches", zap.Int64("keywordID", keywordID), zap.Error(err))
	}
}
