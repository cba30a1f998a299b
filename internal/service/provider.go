package service

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/Behyna/sms-services/campaign/pkg/smsprovider"
	"go.uber.org/zap"
)

type ProviderService interface {
	Send(ctx context.Context, to, text string) (smsprovider.Response, error)
}

type Provider struct {
	provider smsprovider.Provider
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewProviderService(provider smsprovider.Provider, m *metrics.Metrics, logger *zap.Logger) ProviderService {
	return &Provider{provider: provider, metrics: m, logger: logger}
}

// Send makes a single delivery attempt. Retries are left to the queue.
func (p *Provider) Send(ctx context.Context, to, text string) (smsprovider.Response, error) {
	p.logger.Debug("Attempting to send SMS", zap.String("to", to))

	start := time.Now()
	response, err := p.provider.Send(ctx, to, text)
	if err != nil {
		code := smsprovider.Code(err)
		if code == "" {
			code = smsprovider.ErrorCodeNetworkError
		}
		p.metrics.RecordOutbound(code, time.Since(start))

		p.logger.Warn("SMS send attempt failed",
			zap.String("to", to),
			zap.String("code", code),
			zap.Error(err))
		return smsprovider.Response{}, err
	}

	p.metrics.RecordOutbound("sent", time.Since(start))
	p.logger.Info("SMS sent successfully",
		zap.String("messageId", response.MessageID),
		zap.String("provider", response.Provider),
		zap.String("status", response.Status))

	return response, nil
}
