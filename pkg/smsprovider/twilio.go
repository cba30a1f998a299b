package smsprovider

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/twilio/twilio-go"
	twilioClient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"golang.org/x/time/rate"
)

// Twilio error codes that mean the destination can never be reached.
var invalidNumberCodes = map[int]struct{}{
	21211: {}, // invalid 'To' number
	21408: {}, // region not enabled
	21610: {}, // recipient unsubscribed
	21614: {}, // not a mobile number
}

type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioProvider struct {
	cfg     Config
	api     MessageCreator
	limiter *rate.Limiter
}

// NewTwilioProvider bounds each REST call with cfg.Timeout on the HTTP client.
func NewTwilioProvider(cfg Config) Provider {
	httpClient := &twilioClient.Client{
		Credentials: twilioClient.NewCredentials(cfg.AccountSid, cfg.AuthToken),
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
	}
	httpClient.SetAccountSid(cfg.AccountSid)

	client := twilio.NewRestClientWithParams(twilio.ClientParams{Client: httpClient})
	return NewTwilioProviderWithAPI(cfg, client.Api)
}

func NewTwilioProviderWithAPI(cfg Config, api MessageCreator) *TwilioProvider {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &TwilioProvider{cfg: cfg, api: api, limiter: rate.NewLimiter(limit, burst)}
}

func (p *TwilioProvider) Send(ctx context.Context, to string, body string) (Response, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return Response{}, newError(ErrorCodeTimeout, err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(p.cfg.From)
	params.SetBody(body)

	msg, err := p.api.CreateMessage(params)
	if err != nil {
		return Response{}, classify(err)
	}
	if msg == nil || msg.Sid == nil {
		return Response{}, newError(ErrorCodeServerError, errors.New("response without sid"))
	}

	status := ""
	if msg.Status != nil {
		status = *msg.Status
	}

	return Response{MessageID: *msg.Sid, Provider: ProviderTwilio, Status: status}, nil
}

func classify(err error) *Error {
	var restErr *twilioClient.TwilioRestError
	if !errors.As(err, &restErr) {
		// The request may have reached Twilio before the deadline.
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return newError(ErrorCodeUnknownOutcome, err)
		}
		return newError(ErrorCodeNetworkError, err)
	}

	if _, ok := invalidNumberCodes[restErr.Code]; ok {
		return newError(ErrorCodeInvalidNumber, err)
	}

	switch {
	case restErr.Status == http.StatusBadRequest:
		return newError(ErrorCodeInvalidNumber, err)
	default:
		return newError(ErrorCodeServerError, err)
	}
}
