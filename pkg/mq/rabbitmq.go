package mq

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// DeadLetterExchange receives deliveries that were rejected without requeue.
const DeadLetterExchange = "campaign.dead"

type Config struct {
	URL       string        `mapstructure:"url"`
	Prefetch  int           `mapstructure:"prefetch"`
	Heartbeat time.Duration `mapstructure:"heartbeat"`
	// DeadLetter parks dropped deliveries on "<queue>.dead" instead of discarding them.
	DeadLetter bool `mapstructure:"dead_letter"`
}

type RabbitMQ struct {
	conn   *amqp.Connection
	cfg    Config
	logger *zap.Logger
}

func NewConnection(cfg Config, logger *zap.Logger) (*RabbitMQ, error) {
	conn, err := amqp.DialConfig(cfg.URL, amqp.Config{
		Heartbeat: cfg.Heartbeat,
		Locale:    "en_US",
	})
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ", zap.Error(err))
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	logger.Info("Connected to RabbitMQ",
		zap.Int("prefetch", cfg.Prefetch),
		zap.Bool("deadLetter", cfg.DeadLetter))

	return &RabbitMQ{conn: conn, cfg: cfg, logger: logger}, nil
}

func (r *RabbitMQ) OpenChannel() (*amqp.Channel, error) {
	if r.conn == nil || r.conn.IsClosed() {
		return nil, fmt.Errorf("connection is closed")
	}

	ch, err := r.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	return ch, nil
}

// DeadLetterQueue names the queue holding the rejected deliveries of queue.
func DeadLetterQueue(queue string) string {
	return queue + ".dead"
}

// QueueArgs are the declaration arguments of a work queue.
func QueueArgs(cfg Config, queue string) amqp.Table {
	if !cfg.DeadLetter {
		return nil
	}
	return amqp.Table{
		"x-dead-letter-exchange":    DeadLetterExchange,
		"x-dead-letter-routing-key": queue,
	}
}

// DeclareTopology declares the durable work queues and, with dead lettering
// on, the exchange and parking queue behind each of them.
func (r *RabbitMQ) DeclareTopology(queues []string) error {
	ch, err := r.OpenChannel()
	if err != nil {
		return fmt.Errorf("failed to open channel for topology: %w", err)
	}
	defer ch.Close()

	if r.cfg.DeadLetter {
		if err := ch.ExchangeDeclare(DeadLetterExchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", DeadLetterExchange, err)
		}
	}

	for _, queue := range queues {
		if r.cfg.DeadLetter {
			dead := DeadLetterQueue(queue)
			if _, err := ch.QueueDeclare(dead, true, false, false, false, nil); err != nil {
				return fmt.Errorf("failed to declare queue %s: %w", dead, err)
			}
			if err := ch.QueueBind(dead, queue, DeadLetterExchange, false, nil); err != nil {
				return fmt.Errorf("failed to bind queue %s: %w", dead, err)
			}
		}

		if _, err := ch.QueueDeclare(queue, true, false, false, false, QueueArgs(r.cfg, queue)); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
	}

	r.logger.Info("Queues declared",
		zap.Strings("queues", queues),
		zap.Bool("deadLetter", r.cfg.DeadLetter))

	return nil
}

func (r *RabbitMQ) CreatePublisher() (Publisher, error) {
	ch, err := r.OpenChannel()
	if err != nil {
		return nil, fmt.Errorf("failed to get channel for publisher: %w", err)
	}

	return NewRabbitPublisher(ch), nil
}

func (r *RabbitMQ) CreateConsumer() (Consumer, error) {
	ch, err := r.OpenChannel()
	if err != nil {
		return nil, fmt.Errorf("failed to get channel for consumer: %w", err)
	}

	return NewRabbitConsumer(ch, r.logger), nil
}

func (r *RabbitMQ) Close() error {
	if r.conn != nil && !r.conn.IsClosed() {
		return r.conn.Close()
	}

	return nil
}
