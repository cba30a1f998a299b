package repository_test

import (
	"context"
	"testing"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteConfigRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("lazily created with defaults", func(t *testing.T) {
		repo := repository.NewSiteConfigRepository(newTestDB(t))

		cfg, err := repo.GetSiteConfiguration(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.SingletonID, cfg.ID)
		assert.Equal(t, 160, cfg.SmsCharLimit)
		assert.False(t, cfg.DisableAllReplies)

		responses, err := repo.GetDefaultResponses(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Thanks for signing up!", responses.StartReply)
	})

	t.Run("save and reload", func(t *testing.T) {
		repo := repository.NewSiteConfigRepository(newTestDB(t))

		cfg, err := repo.GetSiteConfiguration(ctx)
		require.NoError(t, err)
		cfg.DisableAllReplies = true
		cfg.SendingCost = decimal.RequireFromString("0.05")
		require.NoError(t, repo.SaveSiteConfiguration(ctx, cfg))

		responses, err := repo.GetDefaultResponses(ctx)
		require.NoError(t, err)
		responses.StartReply = "Welcome back"
		require.NoError(t, repo.SaveDefaultResponses(ctx, responses))

		cfg, err = repo.GetSiteConfiguration(ctx)
		require.NoError(t, err)
		assert.True(t, cfg.DisableAllReplies)
		assert.True(t, decimal.RequireFromString("0.05").Equal(cfg.SendingCost))

		responses, err = repo.GetDefaultResponses(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Welcome back", responses.StartReply)
	})
}
