package smsprovider

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DryRunProvider logs sends instead of delivering them. Used when the
// provider is disabled in config.
type DryRunProvider struct {
	logger *zap.Logger
}

func NewDryRunProvider(logger *zap.Logger) Provider {
	return &DryRunProvider{logger: logger}
}

func (p *DryRunProvider) Send(ctx context.Context, to string, body string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, newError(ErrorCodeTimeout, err)
	}

	sid := "DR" + uuid.NewString()
	p.logger.Info("Dry-run send", zap.String("to", to), zap.String("sid", sid), zap.Int("length", len(body)))

	return Response{MessageID: sid, Provider: ProviderDryRun, Status: "queued"}, nil
}

// New picks the Twilio provider when enabled, the dry-run one otherwise.
func New(cfg Config, logger *zap.Logger) Provider {
	if !cfg.Enable {
		logger.Warn("SMS provider disabled, using dry-run sender")
		return NewDryRunProvider(logger)
	}
	return NewTwilioProvider(cfg)
}
