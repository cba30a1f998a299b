package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/mocks"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestMessageQueue_FindMessagesToQueue(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns due messages as send tasks", func(t *testing.T) {
		mockQueued := &mocks.QueuedSmsRepository{}
		svc := service.NewMessageQueueService(mockQueued, logger)

		mockQueued.On("FindDueUnpublished", ctx, mock.AnythingOfType("time.Time"), 100).
			Return([]model.QueuedSms{{ID: 101}, {ID: 102}}, nil)

		tasks, err := svc.FindMessagesToQueue(ctx, 100)

		assert.NoError(t, err)
		assert.Equal(t, []service.SendSmsTask{{QueuedSmsID: 101}, {QueuedSmsID: 102}}, tasks)
		mockQueued.AssertExpectations(t)
	})

	t.Run("returns nothing when no messages are due", func(t *testing.T) {
		mockQueued := &mocks.QueuedSmsRepository{}
		svc := service.NewMessageQueueService(mockQueued, logger)

		mockQueued.On("FindDueUnpublished", ctx, mock.Anything, 100).Return([]model.QueuedSms{}, nil)

		tasks, err := svc.FindMessagesToQueue(ctx, 100)

		assert.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("returns repository errors", func(t *testing.T) {
		mockQueued := &mocks.QueuedSmsRepository{}
		svc := service.NewMessageQueueService(mockQueued, logger)

		mockQueued.On("FindDueUnpublished", ctx, mock.Anything, 100).Return(nil, errors.New("database error"))

		tasks, err := svc.FindMessagesToQueue(ctx, 100)

		assert.Error(t, err)
		assert.Nil(t, tasks)
	})
}

func TestMessageQueue_MarkMessageAsQueued(t *testing.T) {
	ctx := context.Background()
	mockQueued := &mocks.QueuedSmsRepository{}
	svc := service.NewMessageQueueService(mockQueued, zap.NewNop())

	mockQueued.On("MarkPublished", ctx, int64(7), mock.AnythingOfType("time.Time")).Return(nil).Once()
	mockQueued.On("MarkPublished", ctx, int64(8), mock.AnythingOfType("time.Time")).Return(errors.New("boom")).Once()

	assert.NoError(t, svc.MarkMessageAsQueued(ctx, 7))
	assert.Error(t, svc.MarkMessageAsQueued(ctx, 8))
	mockQueued.AssertExpectations(t)
}

func TestMessageQueue_Cleanup(t *testing.T) {
	ctx := context.Background()
	mockQueued := &mocks.QueuedSmsRepository{}
	svc := service.NewMessageQueueService(mockQueued, zap.NewNop())

	retention := 24 * time.Hour
	mockQueued.On("DeleteSentBefore", ctx, mock.MatchedBy(func(before time.Time) bool {
		age := time.Since(before)
		return age >= retention && age < retention+time.Minute
	})).Return(int64(5), nil)

	deleted, err := svc.Cleanup(ctx, retention)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}
