package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/Behyna/sms-services/campaign/pkg/httpclient"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"github.com/Behyna/sms-services/campaign/pkg/notifier"
	"go.uber.org/zap"
)

// NotifyService delivers queued notifications from the worker.
type NotifyService interface {
	Deliver(ctx context.Context, task NotificationTask) error
}

type notify struct {
	notifier   notifier.Notifier
	siteConfig repository.SiteConfigRepository
	cfg        notifier.Config
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func NewNotifyService(n notifier.Notifier, siteConfig repository.SiteConfigRepository, cfg notifier.Config,
	m *metrics.Metrics, logger *zap.Logger) NotifyService {
	return &notify{notifier: n, siteConfig: siteConfig, cfg: cfg, metrics: m, logger: logger}
}

func (n *notify) Deliver(ctx context.Context, task NotificationTask) error {
	url, text, err := n.route(ctx, task)
	if err != nil {
		return mq.Temporary(err)
	}

	if url == "" {
		n.logger.Debug("No target configured for notification", zap.String("channel", string(task.Channel)))
		n.metrics.RecordNotification(string(task.Channel), "skipped")
		return nil
	}

	if err := n.notifier.Notify(ctx, url, text); err != nil {
		n.metrics.RecordNotification(string(task.Channel), "failed")

		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < 500 {
			n.logger.Warn("Notification rejected, dropping",
				zap.String("channel", string(task.Channel)),
				zap.Int("status", statusErr.StatusCode))
			return nil
		}

		n.logger.Warn("Notification delivery failed, will retry",
			zap.String("channel", string(task.Channel)),
			zap.Error(err))
		return mq.Temporary(err)
	}

	n.metrics.RecordNotification(string(task.Channel), "sent")
	return nil
}

func (n *notify) route(ctx context.Context, task NotificationTask) (string, string, error) {
	switch task.Channel {
	case ChannelSlack:
		cfg, err := n.siteConfig.GetSiteConfiguration(ctx)
		if err != nil {
			return "", "", fmt.Errorf("load site configuration: %w", err)
		}
		return cfg.SlackWebhook, task.Body, nil

	default:
		if !n.cfg.Enable {
			return "", "", nil
		}
		text := task.Body
		if task.Subject != "" {
			text = task.Subject + "\n" + task.Body
		}
		return n.cfg.WebhookURL, text, nil
	}
}
