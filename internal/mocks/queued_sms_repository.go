package mocks

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/stretchr/testify/mock"
)

type QueuedSmsRepository struct {
	mock.Mock
}

func (q *QueuedSmsRepository) Create(ctx context.Context, sms *model.QueuedSms) error {
	args := q.Called(ctx, sms)
	return args.Error(0)
}

func (q *QueuedSmsRepository) GetByID(ctx context.Context, id int64) (*model.QueuedSms, error) {
	args := q.Called(ctx, id)
	sms, _ := args.Get(0).(*model.QueuedSms)
	return sms, args.Error(1)
}

func (q *QueuedSmsRepository) FindDueUnpublished(ctx context.Context, now time.Time, limit int) ([]model.QueuedSms, error) {
	args := q.Called(ctx, now, limit)
	rows, _ := args.Get(0).([]model.QueuedSms)
	return rows, args.Error(1)
}

func (q *QueuedSmsRepository) MarkPublished(ctx context.Context, id int64, at time.Time) error {
	args := q.Called(ctx, id, at)
	return args.Error(0)
}

func (q *QueuedSmsRepository) MarkSending(ctx context.Context, id int64, at time.Time, staleThreshold time.Time) error {
	args := q.Called(ctx, id, at, staleThreshold)
	return args.Error(0)
}

func (q *QueuedSmsRepository) MarkSent(ctx context.Context, id int64) error {
	args := q.Called(ctx, id)
	return args.Error(0)
}

func (q *QueuedSmsRepository) MarkRetry(ctx context.Context, id int64, reason string) error {
	args := q.Called(ctx, id, reason)
	return args.Error(0)
}

func (q *QueuedSmsRepository) MarkFailed(ctx context.Context, id int64, reason string) error {
	args := q.Called(ctx, id, reason)
	return args.Error(0)
}

func (q *QueuedSmsRepository) DeleteSentBefore(ctx context.Context, before time.Time) (int64, error) {
	args := q.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}
