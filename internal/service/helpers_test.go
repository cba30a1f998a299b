package service_test

import (
	"testing"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/cache"
	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Redis:   cache.Config{TTL: time.Minute},
		Matcher: keyword.Config{TieBreak: keyword.TieBreakFirst},
		Sender:  config.Sender{MaxAttempts: 3, StaleAfter: 5 * time.Minute},
	}
}

func boolPtr(b bool) *bool { return &b }
