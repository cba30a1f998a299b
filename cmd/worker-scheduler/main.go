package main

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/database"
	"github.com/Behyna/sms-services/campaign/internal/publishers"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			database.NewConnection,
			NewMQConnection,
			NewMQPublisher,

			repository.NewQueuedSmsRepository,

			service.NewMessageQueueService,

			publishers.NewSendPublisher,
		),
		fx.Invoke(runSendPublisher, runCleanup),
	).Run()
}

func runSendPublisher(cfg *config.Config, publisher publishers.SendPublisher, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{constants.QueueSmsSend}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			logger.Info("queue declared", zap.String("queue", constants.QueueSmsSend))

			go every(appCtx, cfg.Sender.PollInterval, func() {
				if err := publisher.Publish(appCtx); err != nil {
					logger.Error("failed to publish due messages", zap.Error(err))
				}
			})

			logger.Info("send publisher started", zap.Duration("interval", cfg.Sender.PollInterval))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping send publisher")
			cancel()
			return rabbit.Close()
		},
	})
}

func runCleanup(cfg *config.Config, queue service.MessageQueueService, logger *zap.Logger, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go every(appCtx, cfg.Cleanup.Interval, func() {
				if _, err := queue.Cleanup(appCtx, cfg.Cleanup.Retention); err != nil {
					logger.Error("failed to clean up sent messages", zap.Error(err))
				}
			})

			logger.Info("cleanup started",
				zap.Duration("interval", cfg.Cleanup.Interval),
				zap.Duration("retention", cfg.Cleanup.Retention))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}

func every(ctx context.Context, interval time.Duration, run func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			run()
		case <-ctx.Done():
			return
		}
	}
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}
