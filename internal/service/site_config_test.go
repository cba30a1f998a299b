package service_test

import (
	"context"
	"testing"

	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSiteConfig(t *testing.T) {
	ctx := context.Background()
	svc := service.NewSiteConfigService(repository.NewSiteConfigRepository(newTestDB(t)), zap.NewNop())

	t.Run("defaults are created on first read", func(t *testing.T) {
		cfg, err := svc.GetSiteConfiguration(ctx)
		require.NoError(t, err)
		assert.Equal(t, 160, cfg.SmsCharLimit)
		assert.False(t, cfg.DisableAllReplies)

		responses, err := svc.GetDefaultResponses(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultDefaultResponses().StartReply, responses.StartReply)
	})

	t.Run("update site configuration", func(t *testing.T) {
		_, err := svc.UpdateSiteConfiguration(ctx, service.SiteConfigCommand{
			SiteName: "choir", SmsCharLimit: 320, DisableAllReplies: true, SendingCost: "0.05",
		})
		require.NoError(t, err)

		cfg, err := svc.GetSiteConfiguration(ctx)
		require.NoError(t, err)
		assert.Equal(t, "choir", cfg.SiteName)
		assert.Equal(t, 320, cfg.SmsCharLimit)
		assert.True(t, cfg.DisableAllReplies)
		assert.Equal(t, "0.05", cfg.SendingCost.String())
	})

	t.Run("negative sending cost is rejected", func(t *testing.T) {
		_, err := svc.UpdateSiteConfiguration(ctx, service.SiteConfigCommand{SiteName: "x", SmsCharLimit: 160, SendingCost: "-1"})
		assertServiceCode(t, err, constants.ErrCodeValidation)
	})

	t.Run("default responses must be GSM", func(t *testing.T) {
		cmd := service.DefaultResponsesCommand{
			DefaultNoKeywordAutoReply: "Thanks ☃",
			DefaultNoKeywordNotLive:   "not live",
			KeywordNoMatch:            "no match",
			NameUpdateReply:           "Thanks %name%!",
			NameFailureReply:          "try again",
			AutoNameRequest:           "who are you?",
		}
		_, err := svc.UpdateDefaultResponses(ctx, cmd)
		assertServiceCode(t, err, constants.ErrCodeInvalidContent)

		cmd.DefaultNoKeywordAutoReply = "Thanks"
		responses, err := svc.UpdateDefaultResponses(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "Thanks", responses.DefaultNoKeywordAutoReply)

		stored, err := svc.GetDefaultResponses(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Thanks", stored.DefaultNoKeywordAutoReply)
	})
}
