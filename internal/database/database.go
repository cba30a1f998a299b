package database

import (
	"context"
	"fmt"

	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(context.Background(), cfg.Database, logger)
}

// Migrate creates or updates the tables of every persisted model.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		logger.Error("Failed to migrate database", zap.Error(err))
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database schema is up to date")
	return nil
}
