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
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"github.com/Behyna/sms-services/campaign/pkg/smsprovider"
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

			repository.NewQueuedSmsRepository,
			repository.NewOutboundRepository,
			repository.NewTransactionManager,
			NewSMSProvider,
			service.NewProviderService,
			service.NewSendService,

			consumers.NewSendConsumer,
		),
		fx.Invoke(runSendConsumer),
	).Run()
}

func runSendConsumer(sendConsumer consumers.SendConsumer, logger *zap.Logger, rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{constants.QueueSmsSend}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", constants.QueueSmsSend))

			go func() {
				if err := sendConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("send consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping send consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewSMSProvider(cfg *config.Config, logger *zap.Logger) smsprovider.Provider {
	return smsprovider.New(cfg.Twilio, logger)
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
