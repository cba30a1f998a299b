package publishers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/mocks"
	"github.com/Behyna/sms-services/campaign/internal/publishers"
	"github.com/Behyna/sms-services/campaign/internal/service"
	pkgmocks "github.com/Behyna/sms-services/campaign/pkg/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSendPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Sender: config.Sender{BatchSize: 50}}

	t.Run("publishes due messages and marks them queued", func(t *testing.T) {
		mockService := &mocks.MessageQueueService{}
		mockPublisher := &pkgmocks.Publisher{}
		p := publishers.NewSendPublisher(mockService, mockPublisher, cfg, zap.NewNop())

		mockService.On("FindMessagesToQueue", ctx, 50).
			Return([]service.SendSmsTask{{QueuedSmsID: 1}, {QueuedSmsID: 2}}, nil)
		mockPublisher.On("Publish", ctx, "", constants.QueueSmsSend, []byte(`{"queued_sms_id":1}`)).Return(nil)
		mockPublisher.On("Publish", ctx, "", constants.QueueSmsSend, []byte(`{"queued_sms_id":2}`)).
			Return(errors.New("channel closed"))
		mockService.On("MarkMessageAsQueued", ctx, int64(1)).Return(nil)

		err := p.Publish(ctx)

		assert.NoError(t, err)
		mockService.AssertExpectations(t)
		mockService.AssertNotCalled(t, "MarkMessageAsQueued", ctx, int64(2))
	})

	t.Run("nothing due", func(t *testing.T) {
		mockService := &mocks.MessageQueueService{}
		mockPublisher := &pkgmocks.Publisher{}
		p := publishers.NewSendPublisher(mockService, mockPublisher, cfg, zap.NewNop())

		mockService.On("FindMessagesToQueue", ctx, 50).Return(nil, nil)

		assert.NoError(t, p.Publish(ctx))
		mockPublisher.AssertNumberOfCalls(t, "Publish", 0)
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		mockService := &mocks.MessageQueueService{}
		p := publishers.NewSendPublisher(mockService, &pkgmocks.Publisher{}, cfg, zap.NewNop())

		mockService.On("FindMessagesToQueue", ctx, 50).Return(nil, errors.New("db down"))

		assert.Error(t, p.Publish(ctx))
	})
}

func TestTaskPublisher(t *testing.T) {
	ctx := context.Background()
	mockPublisher := &pkgmocks.Publisher{}
	dispatcher := publishers.NewTaskPublisher(mockPublisher)

	mockPublisher.On("Publish", ctx, "", constants.QueueSmsSend, []byte(`{"queued_sms_id":9}`)).Return(nil)
	mockPublisher.On("Publish", ctx, "", constants.QueueNotifyOffice, mock.MatchedBy(func(body []byte) bool {
		return string(body) == `{"channel":"office","subject":"hi","body":"there"}`
	})).Return(nil)

	assert.NoError(t, dispatcher.DispatchSend(ctx, service.SendSmsTask{QueuedSmsID: 9}))
	assert.NoError(t, dispatcher.DispatchNotification(ctx, service.NotificationTask{
		Channel: service.ChannelOffice, Subject: "hi", Body: "there",
	}))
	mockPublisher.AssertExpectations(t)
}
