package repository

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"gorm.io/gorm"
)

// SiteConfigRepository lazily creates the singleton rows on first read.
type SiteConfigRepository interface {
	GetSiteConfiguration(ctx context.Context) (*model.SiteConfiguration, error)
	SaveSiteConfiguration(ctx context.Context, cfg *model.SiteConfiguration) error
	GetDefaultResponses(ctx context.Context) (*model.DefaultResponses, error)
	SaveDefaultResponses(ctx context.Context, responses *model.DefaultResponses) error
}

type SiteConfig struct {
	db *gorm.DB
}

func NewSiteConfigRepository(db *gorm.DB) SiteConfigRepository {
	return &SiteConfig{db: db}
}

func (s *SiteConfig) GetSiteConfiguration(ctx context.Context) (*model.SiteConfiguration, error) {
	cfg := model.DefaultSiteConfiguration()
	err := GetTx(ctx, s.db).Where("id = ?", model.SingletonID).FirstOrCreate(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *SiteConfig) SaveSiteConfiguration(ctx context.Context, cfg *model.SiteConfiguration) error {
	cfg.ID = model.SingletonID
	return GetTx(ctx, s.db).Save(cfg).Error
}

func (s *SiteConfig) GetDefaultResponses(ctx context.Context) (*model.DefaultResponses, error) {
	responses := model.DefaultDefaultResponses()
	err := GetTx(ctx, s.db).Where("id = ?", model.SingletonID).FirstOrCreate(&responses).Error
	if err != nil {
		return nil, err
	}
	return &responses, nil
}

func (s *SiteConfig) SaveDefaultResponses(ctx context.Context, responses *model.DefaultResponses) error {
	responses.ID = model.SingletonID
	return GetTx(ctx, s.db).Save(responses).Error
}
