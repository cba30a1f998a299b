package smsprovider

import (
	"context"
	"time"
)

const (
	ProviderTwilio = "twilio"
	ProviderDryRun = "dry-run"
)

type Provider interface {
	Send(ctx context.Context, to string, body string) (Response, error)
}

type Response struct {
	MessageID string
	Provider  string
	Status    string
}

type Config struct {
	Enable     bool          `mapstructure:"enable"`
	AccountSid string        `mapstructure:"account_sid"`
	AuthToken  string        `mapstructure:"auth_token"`
	From       string        `mapstructure:"from"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RateLimit  float64       `mapstructure:"rate_limit"`
	Burst      int           `mapstructure:"burst"`
}
