package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/Behyna/sms-services/campaign/internal/mocks"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type outgoingMocks struct {
	recipients *mocks.RecipientRepository
	groups     *mocks.GroupRepository
	queued     *mocks.QueuedSmsRepository
	siteConfig *mocks.SiteConfigRepository
	dispatcher *mocks.TaskDispatcher
}

func newOutgoing() (service.OutgoingService, *outgoingMocks) {
	m := &outgoingMocks{
		recipients: &mocks.RecipientRepository{},
		groups:     &mocks.GroupRepository{},
		queued:     &mocks.QueuedSmsRepository{},
		siteConfig: &mocks.SiteConfigRepository{},
		dispatcher: &mocks.TaskDispatcher{},
	}

	cfg := model.DefaultSiteConfiguration()
	m.siteConfig.On("GetSiteConfiguration", mock.Anything).Return(&cfg, nil)

	svc := service.NewOutgoingService(m.recipients, m.groups, m.queued, m.siteConfig, m.dispatcher,
		metrics.NewMetrics(prometheus.NewRegistry()), zap.NewNop())
	return svc, m
}

func assertServiceCode(t *testing.T, err error, code string) {
	t.Helper()
	var svcErr service.Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, code, svcErr.Code)
}

func TestOutgoing_ValidateContent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOutgoing()

	assert.NoError(t, svc.ValidateContent(ctx, "Hello %name%"))
	assertServiceCode(t, svc.ValidateContent(ctx, "   "), constants.ErrCodeInvalidContent)
	assertServiceCode(t, svc.ValidateContent(ctx, "emoji 😀"), constants.ErrCodeInvalidContent)
	assertServiceCode(t, svc.ValidateContent(ctx, strings.Repeat("a", 161)), constants.ErrCodeInvalidContent)
}

func TestOutgoing_SendToRecipient(t *testing.T) {
	ctx := context.Background()
	recipient := model.Recipient{ID: 7, FirstName: "John", LastName: "Calvin", Number: knownNumber}

	t.Run("immediate send is personalised, queued and published", func(t *testing.T) {
		svc, m := newOutgoing()

		m.queued.On("Create", ctx, mock.MatchedBy(func(q *model.QueuedSms) bool {
			return q.RecipientID == 7 && q.Content == "Hi John" && q.State == model.QueuedSmsStateCreated
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.QueuedSms).ID = 99
		}).Return(nil)
		m.dispatcher.On("DispatchSend", ctx, service.SendSmsTask{QueuedSmsID: 99}).Return(nil)
		m.queued.On("MarkPublished", ctx, int64(99), mock.AnythingOfType("time.Time")).Return(nil)

		queued, err := svc.SendToRecipient(ctx, recipient, "Hi %name%", "admin", nil, nil)

		assert.NoError(t, err)
		assert.True(t, queued)
		m.queued.AssertExpectations(t)
		m.dispatcher.AssertExpectations(t)
	})

	t.Run("blocking recipients are skipped", func(t *testing.T) {
		svc, m := newOutgoing()
		blocked := recipient
		blocked.IsBlocking = true

		queued, err := svc.SendToRecipient(ctx, blocked, "Hi", "admin", nil, nil)

		assert.NoError(t, err)
		assert.False(t, queued)
		m.queued.AssertNotCalled(t, "Create")
	})

	t.Run("scheduled send is left for the scheduler", func(t *testing.T) {
		svc, m := newOutgoing()
		at := time.Now().Add(time.Hour)

		m.queued.On("Create", ctx, mock.MatchedBy(func(q *model.QueuedSms) bool {
			return q.SendAt.Equal(at)
		})).Return(nil)

		queued, err := svc.SendToRecipient(ctx, recipient, "Hi", "admin", nil, &at)

		assert.NoError(t, err)
		assert.True(t, queued)
		m.dispatcher.AssertNotCalled(t, "DispatchSend")
	})

	t.Run("publish failure keeps the row unpublished", func(t *testing.T) {
		svc, m := newOutgoing()

		m.queued.On("Create", ctx, mock.Anything).Return(nil)
		m.dispatcher.On("DispatchSend", ctx, mock.Anything).Return(errors.New("channel closed"))

		queued, err := svc.SendToRecipient(ctx, recipient, "Hi", "admin", nil, nil)

		assert.NoError(t, err)
		assert.True(t, queued)
		m.queued.AssertNotCalled(t, "MarkPublished")
	})
}

func TestOutgoing_SendGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("queues every active member except blocking ones", func(t *testing.T) {
		svc, m := newOutgoing()

		m.groups.On("GetByID", ctx, int64(3)).Return(&model.RecipientGroup{ID: 3, Name: "choir"}, nil)
		m.groups.On("ActiveMembers", ctx, int64(3)).Return([]model.Recipient{
			{ID: 1, FirstName: "A", Number: "+1"},
			{ID: 2, FirstName: "B", Number: "+2", IsBlocking: true},
			{ID: 3, FirstName: "C", Number: "+3"},
		}, nil)
		m.queued.On("Create", ctx, mock.MatchedBy(func(q *model.QueuedSms) bool {
			return q.RecipientGroupID != nil && *q.RecipientGroupID == 3
		})).Return(nil)
		m.dispatcher.On("DispatchSend", ctx, mock.Anything).Return(nil)
		m.queued.On("MarkPublished", ctx, mock.Anything, mock.Anything).Return(nil)

		result, err := svc.SendGroup(ctx, service.SendGroupCommand{GroupID: 3, Content: "Practice tonight", SentBy: "admin"})

		assert.NoError(t, err)
		assert.Equal(t, service.SendResult{Queued: 2, Skipped: 1}, result)
		m.queued.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("unknown group", func(t *testing.T) {
		svc, m := newOutgoing()
		m.groups.On("GetByID", ctx, int64(3)).Return(nil, repository.ErrGroupNotFound)

		_, err := svc.SendGroup(ctx, service.SendGroupCommand{GroupID: 3, Content: "Hi"})

		assertServiceCode(t, err, constants.ErrCodeGroupNotFound)
	})

	t.Run("empty group", func(t *testing.T) {
		svc, m := newOutgoing()
		m.groups.On("GetByID", ctx, int64(3)).Return(&model.RecipientGroup{ID: 3}, nil)
		m.groups.On("ActiveMembers", ctx, int64(3)).Return([]model.Recipient{}, nil)

		_, err := svc.SendGroup(ctx, service.SendGroupCommand{GroupID: 3, Content: "Hi"})

		assertServiceCode(t, err, constants.ErrCodeNoRecipients)
	})
}

func TestOutgoing_SendAdhoc(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects invalid content before loading recipients", func(t *testing.T) {
		svc, m := newOutgoing()

		_, err := svc.SendAdhoc(ctx, service.SendAdhocCommand{RecipientIDs: []int64{1}, Content: ""})

		assertServiceCode(t, err, constants.ErrCodeInvalidContent)
		m.recipients.AssertNotCalled(t, "ListByIDs")
	})

	t.Run("requires recipients", func(t *testing.T) {
		svc, _ := newOutgoing()

		_, err := svc.SendAdhoc(ctx, service.SendAdhocCommand{Content: "Hi"})

		assertServiceCode(t, err, constants.ErrCodeNoRecipients)
	})

	t.Run("queues each recipient", func(t *testing.T) {
		svc, m := newOutgoing()
		at := time.Now().Add(time.Hour)

		m.recipients.On("ListByIDs", ctx, []int64{1, 2}).Return([]model.Recipient{
			{ID: 1, FirstName: "A"}, {ID: 2, FirstName: "B"},
		}, nil)
		m.queued.On("Create", ctx, mock.Anything).Return(nil)

		result, err := svc.SendAdhoc(ctx, service.SendAdhocCommand{
			RecipientIDs: []int64{1, 2}, Content: "Hi %name%", ScheduledTime: &at, SentBy: "admin",
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Queued)
		m.dispatcher.AssertNotCalled(t, "DispatchSend")
	})
}
