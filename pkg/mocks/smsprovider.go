package mocks

import (
	"context"

	"github.com/Behyna/sms-services/campaign/pkg/smsprovider"
	"github.com/stretchr/testify/mock"
)

type SmsProvider struct {
	mock.Mock
}

func (_m *SmsProvider) Send(ctx context.Context, to string, body string) (smsprovider.Response, error) {
	ret := _m.Called(ctx, to, body)
	resp, _ := ret.Get(0).(smsprovider.Response)
	return resp, ret.Error(1)
}
