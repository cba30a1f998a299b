package notifier

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/campaign/pkg/httpclient"
)

type Config struct {
	Enable     bool          `mapstructure:"enable"`
	WebhookURL string        `mapstructure:"webhook_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Notifier posts operator notifications to a Slack compatible webhook.
type Notifier interface {
	Notify(ctx context.Context, url string, text string) error
}

type webhookNotifier struct {
	client httpclient.HTTPClient
}

type payload struct {
	Text string `json:"text"`
}

func NewWebhookNotifier(client httpclient.HTTPClient) Notifier {
	return &webhookNotifier{client: client}
}

func (n *webhookNotifier) Notify(ctx context.Context, url string, text string) error {
	if url == "" {
		return nil
	}
	return n.client.PostJSON(ctx, url, payload{Text: text})
}
