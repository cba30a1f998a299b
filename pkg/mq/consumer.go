package mq

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Handle func(ctx context.Context, body []byte) error

type Consumer interface {
	Consume(ctx context.Context, prefetch int, queue string, handler Handle) error
}

type RabbitConsumer struct {
	ch     *amqp.Channel
	logger *zap.Logger
}

func NewRabbitConsumer(ch *amqp.Channel, logger *zap.Logger) Consumer {
	return &RabbitConsumer{ch: ch, logger: logger}
}

func (c *RabbitConsumer) Consume(ctx context.Context, prefetch int, queue string, handler Handle) error {
	if prefetch <= 0 {
		prefetch = 1
	}

	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return err
	}

	deliveries, err := c.ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	c.logger.Info("Consumer started", zap.String("queue", queue), zap.Int("prefetch", prefetch))

	for {
		select {
		case <-ctx.Done():
			_ = c.ch.Cancel("", false)
			time.Sleep(50 * time.Millisecond)
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				c.logger.Warn("Delivery channel closed", zap.String("queue", queue))
				return nil
			}

			err := handler(ctx, d.Body)
			if err == nil {
				_ = d.Ack(false)
				continue
			}

			requeue := ShouldRequeue(err)
			c.logger.Warn("Message handling failed",
				zap.String("queue", queue),
				zap.Bool("requeue", requeue),
				zap.Error(err))
			_ = d.Nack(false, requeue)
		}
	}
}

// ShouldRequeue reports whether err was marked with Temporary anywhere in its chain.
func ShouldRequeue(err error) bool {
	var te TempError
	return errors.As(err, &te) && te.Temporary()
}
