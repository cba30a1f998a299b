package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Invalidator struct {
	mock.Mock
}

func (i *Invalidator) InvalidateInbound(ctx context.Context, keywordID int64) error {
	args := i.Called(ctx, keywordID)
	return args.Error(0)
}
