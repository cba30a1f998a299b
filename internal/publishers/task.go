package publishers

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/Behyna/sms-services/campaign/pkg/mq"
)

// TaskPublisher sends worker tasks straight to their queues.
type TaskPublisher struct {
	publisher mq.Publisher
}

func NewTaskPublisher(publisher mq.Publisher) service.TaskDispatcher {
	return &TaskPublisher{publisher: publisher}
}

func (t *TaskPublisher) DispatchSend(ctx context.Context, task service.SendSmsTask) error {
	return mq.PublishJSON(ctx, t.publisher, constants.QueueSmsSend, task)
}

func (t *TaskPublisher) DispatchNotification(ctx context.Context, task service.NotificationTask) error {
	return mq.PublishJSON(ctx, t.publisher, constants.QueueNotifyOffice, task)
}
