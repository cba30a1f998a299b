package mocks

import (
	"context"

	"github.com/Behyna/sms-services/campaign/pkg/smsprovider"
	"github.com/stretchr/testify/mock"
)

type ProviderService struct {
	mock.Mock
}

func (p *ProviderService) Send(ctx context.Context, to, text string) (smsprovider.Response, error) {
	args := p.Called(ctx, to, text)
	return args.Get(0).(smsprovider.Response), args.Error(1)
}
