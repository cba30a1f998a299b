package consumers_test

import (
	"context"
	"testing"

	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/consumers"
	"github.com/Behyna/sms-services/campaign/internal/mocks"
	"github.com/Behyna/sms-services/campaign/internal/service"
	pkgmocks "github.com/Behyna/sms-services/campaign/pkg/mocks"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// deliver makes the mocked consumer hand body to the registered handler once.
func deliver(consumer *pkgmocks.Consumer, queue string, body string, handled *error) {
	consumer.On("Consume", mock.Anything, 2, queue, mock.Anything).
		Run(func(args mock.Arguments) {
			handler := args.Get(3).(mq.Handle)
			*handled = handler(args.Get(0).(context.Context), []byte(body))
		}).
		Return(nil)
}

func TestSendConsumer(t *testing.T) {
	ctx := context.Background()
	cfg := mq.Config{Prefetch: 2}

	t.Run("decodes the task", func(t *testing.T) {
		mockConsumer := &pkgmocks.Consumer{}
		mockService := &mocks.SendService{}
		var handled error
		deliver(mockConsumer, constants.QueueSmsSend, `{"queued_sms_id":42}`, &handled)
		mockService.On("SendMessage", ctx, service.SendSmsTask{QueuedSmsID: 42}).Return(nil)

		c := consumers.NewSendConsumer(mockService, mockConsumer, cfg, zap.NewNop())

		assert.NoError(t, c.Consume(ctx))
		assert.NoError(t, handled)
		mockService.AssertExpectations(t)
	})

	t.Run("malformed body is not requeued", func(t *testing.T) {
		mockConsumer := &pkgmocks.Consumer{}
		mockService := &mocks.SendService{}
		var handled error
		deliver(mockConsumer, constants.QueueSmsSend, `not json`, &handled)

		c := consumers.NewSendConsumer(mockService, mockConsumer, cfg, zap.NewNop())

		assert.NoError(t, c.Consume(ctx))
		assert.Error(t, handled)
		assert.False(t, mq.ShouldRequeue(handled))
		mockService.AssertNumberOfCalls(t, "SendMessage", 0)
	})
}

func TestNotifyConsumer(t *testing.T) {
	ctx := context.Background()
	mockConsumer := &pkgmocks.Consumer{}
	mockService := &mocks.NotifyService{}
	var handled error
	deliver(mockConsumer, constants.QueueNotifyOffice, `{"channel":"slack","body":"hello"}`, &handled)
	mockService.On("Deliver", ctx, service.NotificationTask{Channel: service.ChannelSlack, Body: "hello"}).
		Return(mq.Temporary(assert.AnError))

	c := consumers.NewNotifyConsumer(mockService, mockConsumer, mq.Config{Prefetch: 2}, zap.NewNop())

	assert.NoError(t, c.Consume(ctx))
	assert.True(t, mq.ShouldRequeue(handled))
}
