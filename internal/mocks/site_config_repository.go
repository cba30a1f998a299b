package mocks

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/stretchr/testify/mock"
)

type SiteConfigRepository struct {
	mock.Mock
}

func (s *SiteConfigRepository) GetSiteConfiguration(ctx context.Context) (*model.SiteConfiguration, error) {
	args := s.Called(ctx)
	cfg, _ := args.Get(0).(*model.SiteConfiguration)
	return cfg, args.Error(1)
}

func (s *SiteConfigRepository) SaveSiteConfiguration(ctx context.Context, cfg *model.SiteConfiguration) error {
	args := s.Called(ctx, cfg)
	return args.Error(0)
}

func (s *SiteConfigRepository) GetDefaultResponses(ctx context.Context) (*model.DefaultResponses, error) {
	args := s.Called(ctx)
	responses, _ := args.Get(0).(*model.DefaultResponses)
	return responses, args.Error(1)
}

func (s *SiteConfigRepository) SaveDefaultResponses(ctx context.Context, responses *model.DefaultResponses) error {
	args := s.Called(ctx, responses)
	return args.Error(0)
}
