package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func (_m *Notifier) Notify(ctx context.Context, url string, text string) error {
	ret := _m.Called(ctx, url, text)
	return ret.Error(0)
}
