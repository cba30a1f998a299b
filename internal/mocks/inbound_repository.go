package mocks

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/stretchr/testify/mock"
)

type InboundRepository struct {
	mock.Mock
}

func (i *InboundRepository) Create(ctx context.Context, sms *model.SmsInbound) error {
	args := i.Called(ctx, sms)
	return args.Error(0)
}

func (i *InboundRepository) Update(ctx context.Context, sms *model.SmsInbound) error {
	args := i.Called(ctx, sms)
	return args.Error(0)
}

func (i *InboundRepository) GetByID(ctx context.Context, id int64) (*model.SmsInbound, error) {
	args := i.Called(ctx, id)
	sms, _ := args.Get(0).(*model.SmsInbound)
	return sms, args.Error(1)
}

func (i *InboundRepository) List(ctx context.Context, filter repository.InboundFilter) ([]model.SmsInbound, error) {
	args := i.Called(ctx, filter)
	messages, _ := args.Get(0).([]model.SmsInbound)
	return messages, args.Error(1)
}

func (i *InboundRepository) UpdateSenderName(ctx context.Context, number string, name string) error {
	args := i.Called(ctx, number, name)
	return args.Error(0)
}

func (i *InboundRepository) ArchiveByKeyword(ctx context.Context, keyword string) (int64, error) {
	args := i.Called(ctx, keyword)
	return args.Get(0).(int64), args.Error(1)
}

func (i *InboundRepository) CountByKeyword(ctx context.Context, keyword string, archived bool) (int64, error) {
	args := i.Called(ctx, keyword, archived)
	return args.Get(0).(int64), args.Error(1)
}
