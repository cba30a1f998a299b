package main

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/consumers"
	"github.com/Behyna/sms-services/campaign/internal/database"
	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/Behyna/sms-services/campaign/pkg/httpclient"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"github.com/Behyna/sms-services/campaign/pkg/notifier"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			metrics.NewDefaultMetrics,
			database.NewConnection,
			NewMQConnection,
			NewMQConsumer,
			NewMQConfig,

			repository.NewSiteConfigRepository,
			NewNotifierConfig,
			NewNotifier,
			service.NewNotifyService,

			consumers.NewNotifyConsumer,
		),
		fx.Invoke(runNotifyConsumer),
	).Run()
}

func runNotifyConsumer(notifyConsumer consumers.NotifyConsumer, logger *zap.Logger, rabbit *mq.RabbitMQ,
	lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{constants.QueueNotifyOffice}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", constants.QueueNotifyOffice))

			go func() {
				if err := notifyConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("notify consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping notify consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewNotifierConfig(cfg *config.Config) notifier.Config {
	return cfg.Notifier
}

func NewNotifier(cfg notifier.Config) notifier.Notifier {
	return notifier.NewWebhookNotifier(httpclient.NewHTTPClient(cfg.Timeout))
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}

func NewMQConfig(cfg *config.Config) mq.Config {
	return cfg.RabbitMQ
}
