package mocks

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/stretchr/testify/mock"
)

type OutboundRepository struct {
	mock.Mock
}

func (o *OutboundRepository) Create(ctx context.Context, sms *model.SmsOutbound) error {
	args := o.Called(ctx, sms)
	return args.Error(0)
}

func (o *OutboundRepository) List(ctx context.Context, page repository.Page) ([]model.SmsOutbound, error) {
	args := o.Called(ctx, page)
	messages, _ := args.Get(0).([]model.SmsOutbound)
	return messages, args.Error(1)
}

func (o *OutboundRepository) ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]model.SmsOutbound, error) {
	args := o.Called(ctx, recipientID, limit)
	messages, _ := args.Get(0).([]model.SmsOutbound)
	return messages, args.Error(1)
}
