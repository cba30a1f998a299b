package service

import (
	"context"
	"fmt"

	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SiteConfigService interface {
	GetSiteConfiguration(ctx context.Context) (*model.SiteConfiguration, error)
	UpdateSiteConfiguration(ctx context.Context, cmd SiteConfigCommand) (*model.SiteConfiguration, error)
	GetDefaultResponses(ctx context.Context) (*model.DefaultResponses, error)
	UpdateDefaultResponses(ctx context.Context, cmd DefaultResponsesCommand) (*model.DefaultResponses, error)
}

type siteConfigService struct {
	repo   repository.SiteConfigRepository
	logger *zap.Logger
}

func NewSiteConfigService(repo repository.SiteConfigRepository, logger *zap.Logger) SiteConfigService {
	return &siteConfigService{repo: repo, logger: logger}
}

func (s *siteConfigService) GetSiteConfiguration(ctx context.Context) (*model.SiteConfiguration, error) {
	cfg, err := s.repo.GetSiteConfiguration(ctx)
	if err != nil {
		s.logger.Error("Failed to load site configuration", zap.Error(err))
		return nil, fromRepository(err)
	}
	return cfg, nil
}

func (s *siteConfigService) UpdateSiteConfiguration(ctx context.Context, cmd SiteConfigCommand) (*model.SiteConfiguration, error) {
	cost, err := decimal.NewFromString(cmd.SendingCost)
	if err != nil || cost.IsNegative() {
		return nil, NewServiceError(constants.ErrCodeValidation, fmt.Errorf("invalid sending cost %q", cmd.SendingCost))
	}

	cfg := &model.SiteConfiguration{
		ID:                model.SingletonID,
		SiteName:          cmd.SiteName,
		SmsCharLimit:      cmd.SmsCharLimit,
		DisableAllReplies: cmd.DisableAllReplies,
		OfficeEmail:       cmd.OfficeEmail,
		SlackWebhook:      cmd.SlackWebhook,
		SendingCost:       cost,
	}

	if err := s.repo.SaveSiteConfiguration(ctx, cfg); err != nil {
		s.logger.Error("Failed to save site configuration", zap.Error(err))
		return nil, fromRepository(err)
	}

	s.logger.Info("Site configuration updated", zap.Bool("disableAllReplies", cfg.DisableAllReplies))
	return cfg, nil
}

func (s *siteConfigService) GetDefaultResponses(ctx context.Context) (*model.DefaultResponses, error) {
	responses, err := s.repo.GetDefaultResponses(ctx)
	if err != nil {
		s.logger.Error("Failed to load default responses", zap.Error(err))
		return nil, fromRepository(err)
	}
	return responses, nil
}

func (s *siteConfigService) UpdateDefaultResponses(ctx context.Context, cmd DefaultResponsesCommand) (*model.DefaultResponses, error) {
	responses := &model.DefaultResponses{
		ID:                        model.SingletonID,
		DefaultNoKeywordAutoReply: cmd.DefaultNoKeywordAutoReply,
		DefaultNoKeywordNotLive:   cmd.DefaultNoKeywordNotLive,
		KeywordNoMatch:            cmd.KeywordNoMatch,
		StartReply:                cmd.StartReply,
		NameUpdateReply:           cmd.NameUpdateReply,
		NameFailureReply:          cmd.NameFailureReply,
		AutoNameRequest:           cmd.AutoNameRequest,
	}

	for _, text := range []string{
		responses.DefaultNoKeywordAutoReply, responses.DefaultNoKeywordNotLive, responses.KeywordNoMatch,
		responses.StartReply, responses.NameUpdateReply, responses.NameFailureReply, responses.AutoNameRequest,
	} {
		if !keyword.IsGSM(text) {
			return nil, NewServiceError(constants.ErrCodeInvalidContent,
				fmt.Errorf("%w: %q uses characters outside the GSM charset", ErrInvalidContent, text))
		}
	}

	if err := s.repo.SaveDefaultResponses(ctx, responses); err != nil {
		s.logger.Error("Failed to save default responses", zap.Error(err))
		return nil, fromRepository(err)
	}

	return responses, nil
}
