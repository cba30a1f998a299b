package main

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/api"
	v1 "github.com/Behyna/sms-services/campaign/internal/api/v1"
	"github.com/Behyna/sms-services/campaign/internal/api/validator"
	"github.com/Behyna/sms-services/campaign/internal/cache"
	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/database"
	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/Behyna/sms-services/campaign/internal/publishers"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewRegistry,
			NewMetrics,

			database.NewConnection,
			NewMQConnection,
			NewMQPublisher,
			publishers.NewTaskPublisher,
			NewCache,
			cache.NewInvalidator,

			repository.NewRecipientRepository,
			repository.NewGroupRepository,
			repository.NewKeywordRepository,
			repository.NewInboundRepository,
			repository.NewOutboundRepository,
			repository.NewQueuedSmsRepository,
			repository.NewSiteConfigRepository,
			repository.NewTransactionManager,

			NewMatcherConfig,
			service.NewNotificationService,
			service.NewOutgoingService,
			service.NewInboundService,
			service.NewKeywordService,
			service.NewRecipientService,
			service.NewGroupService,
			service.NewLogService,
			service.NewSiteConfigService,

			validator.NewXValidator,
			v1.NewHandler,
			api.NewApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, db *gorm.DB, rabbit *mq.RabbitMQ,
	m *metrics.Metrics, registry *prometheus.Registry, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, registry)
	collector := metrics.NewDatabaseMetricsCollector(m, logger, db)

	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := database.Migrate(db, logger); err != nil {
				return err
			}

			if err := rabbit.DeclareTopology(constants.Queues); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go collector.Run(appCtx, 15*time.Second)

			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("server stopped", zap.Error(err))
				}
			}()

			logger.Info("api server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping api server")
			cancel()
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return rabbit.Close()
		},
	})
}

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func NewMetrics(registry *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(registry)
}

func NewCache(cfg *config.Config, logger *zap.Logger) cache.Cache {
	return cache.New(cfg.Redis, logger)
}

func NewMatcherConfig(cfg *config.Config) keyword.Config {
	return cfg.Matcher
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}
