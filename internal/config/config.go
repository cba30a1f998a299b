package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/cache"
	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"github.com/Behyna/sms-services/campaign/pkg/mysql"
	"github.com/Behyna/sms-services/campaign/pkg/notifier"
	"github.com/Behyna/sms-services/campaign/pkg/smsprovider"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	API      API                `mapstructure:"api"`
	Database mysql.Config       `mapstructure:"database"`
	RabbitMQ mq.Config          `mapstructure:"rabbitmq"`
	Redis    cache.Config       `mapstructure:"redis"`
	Twilio   smsprovider.Config `mapstructure:"twilio"`
	Notifier notifier.Config    `mapstructure:"notifier"`
	Matcher  keyword.Config     `mapstructure:"matcher"`
	Sender   Sender             `mapstructure:"sender"`
	Cleanup  Cleanup            `mapstructure:"cleanup"`
}

type API struct {
	Port string `mapstructure:"port"`
	// PublicURL is the externally visible base URL used to check webhook signatures.
	PublicURL       string `mapstructure:"public_url"`
	ValidateWebhook bool   `mapstructure:"validate_webhook"`
}

type Sender struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	StaleAfter   time.Duration `mapstructure:"stale_after"`
}

type Cleanup struct {
	Interval  time.Duration `mapstructure:"interval"`
	Retention time.Duration `mapstructure:"retention"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", ":8080")
	v.SetDefault("rabbitmq.prefetch", 1)
	v.SetDefault("rabbitmq.heartbeat", 10*time.Second)
	v.SetDefault("rabbitmq.dead_letter", true)
	v.SetDefault("redis.ttl", 10*time.Minute)
	v.SetDefault("twilio.timeout", 10*time.Second)
	v.SetDefault("notifier.timeout", 5*time.Second)
	v.SetDefault("matcher.tie_break", string(keyword.TieBreakFirst))
	v.SetDefault("sender.poll_interval", 30*time.Second)
	v.SetDefault("sender.batch_size", 100)
	v.SetDefault("sender.max_attempts", 3)
	v.SetDefault("sender.stale_after", 5*time.Minute)
	v.SetDefault("cleanup.interval", time.Hour)
	v.SetDefault("cleanup.retention", 30*24*time.Hour)
}
