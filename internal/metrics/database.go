package metrics

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DatabaseMetricsCollector samples connection pool stats.
type DatabaseMetricsCollector struct {
	metrics *Metrics
	logger  *zap.Logger
	sqlDB   *sql.DB
}

func NewDatabaseMetricsCollector(metrics *Metrics, logger *zap.Logger, db *gorm.DB) *DatabaseMetricsCollector {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get sql.DB from gorm.DB", zap.Error(err))
	}

	return &DatabaseMetricsCollector{metrics: metrics, logger: logger, sqlDB: sqlDB}
}

// Run samples every interval until ctx is cancelled.
func (d *DatabaseMetricsCollector) Run(ctx context.Context, interval time.Duration) {
	if d.sqlDB == nil {
		d.logger.Warn("Cannot start database metrics collector: sqlDB is nil")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.Collect()
	for {
		select {
		case <-ticker.C:
			d.Collect()
		case <-ctx.Done():
			return
		}
	}
}

func (d *DatabaseMetricsCollector) Collect() {
	if d.sqlDB == nil {
		return
	}

	stats := d.sqlDB.Stats()
	d.metrics.DBConnectionsInUse.Set(float64(stats.InUse))
	d.metrics.DBConnectionsIdle.Set(float64(stats.Idle))
	d.metrics.DBWaitCount.Set(float64(stats.WaitCount))
}
