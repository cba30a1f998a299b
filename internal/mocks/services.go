package mocks

import (
	"context"
	"io"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/stretchr/testify/mock"
)

type OutgoingService struct {
	mock.Mock
}

func (o *OutgoingService) SendAdhoc(ctx context.Context, cmd service.SendAdhocCommand) (service.SendResult, error) {
	args := o.Called(ctx, cmd)
	return args.Get(0).(service.SendResult), args.Error(1)
}

func (o *OutgoingService) SendGroup(ctx context.Context, cmd service.SendGroupCommand) (service.SendResult, error) {
	args := o.Called(ctx, cmd)
	return args.Get(0).(service.SendResult), args.Error(1)
}

func (o *OutgoingService) SendToRecipient(ctx context.Context, recipient model.Recipient, content, sentBy string,
	groupID *int64, sendAt *time.Time) (bool, error) {
	args := o.Called(ctx, recipient, content, sentBy, groupID, sendAt)
	return args.Bool(0), args.Error(1)
}

func (o *OutgoingService) ValidateContent(ctx context.Context, content string) error {
	args := o.Called(ctx, content)
	return args.Error(0)
}

type NotificationService struct {
	mock.Mock
}

func (n *NotificationService) NotifyOffice(ctx context.Context, subject, body string) {
	n.Called(ctx, subject, body)
}

func (n *NotificationService) PostSlack(ctx context.Context, text string) {
	n.Called(ctx, text)
}

type InboundService struct {
	mock.Mock
}

func (i *InboundService) HandleInbound(ctx context.Context, cmd service.InboundCommand) (service.InboundResult, error) {
	args := i.Called(ctx, cmd)
	return args.Get(0).(service.InboundResult), args.Error(1)
}

type SendService struct {
	mock.Mock
}

func (s *SendService) SendMessage(ctx context.Context, task service.SendSmsTask) error {
	args := s.Called(ctx, task)
	return args.Error(0)
}

type NotifyService struct {
	mock.Mock
}

func (n *NotifyService) Deliver(ctx context.Context, task service.NotificationTask) error {
	args := n.Called(ctx, task)
	return args.Error(0)
}

type MessageQueueService struct {
	mock.Mock
}

func (m *MessageQueueService) FindMessagesToQueue(ctx context.Context, limit int) ([]service.SendSmsTask, error) {
	args := m.Called(ctx, limit)
	tasks, _ := args.Get(0).([]service.SendSmsTask)
	return tasks, args.Error(1)
}

func (m *MessageQueueService) MarkMessageAsQueued(ctx context.Context, queuedSmsID int64) error {
	args := m.Called(ctx, queuedSmsID)
	return args.Error(0)
}

func (m *MessageQueueService) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	args := m.Called(ctx, retention)
	return args.Get(0).(int64), args.Error(1)
}

type KeywordService struct {
	mock.Mock
}

func (k *KeywordService) Create(ctx context.Context, cmd service.KeywordCommand) (*service.KeywordView, error) {
	args := k.Called(ctx, cmd)
	view, _ := args.Get(0).(*service.KeywordView)
	return view, args.Error(1)
}

func (k *KeywordService) Update(ctx context.Context, id int64, cmd service.KeywordCommand) (*service.KeywordView, error) {
	args := k.Called(ctx, id, cmd)
	view, _ := args.Get(0).(*service.KeywordView)
	return view, args.Error(1)
}

func (k *KeywordService) Get(ctx context.Context, id int64) (*service.KeywordView, error) {
	args := k.Called(ctx, id)
	view, _ := args.Get(0).(*service.KeywordView)
	return view, args.Error(1)
}

func (k *KeywordService) List(ctx context.Context, includeArchived bool) ([]service.KeywordView, error) {
	args := k.Called(ctx, includeArchived)
	views, _ := args.Get(0).([]service.KeywordView)
	return views, args.Error(1)
}

func (k *KeywordService) Archive(ctx context.Context, id int64) error {
	args := k.Called(ctx, id)
	return args.Error(0)
}

func (k *KeywordService) Responses(ctx context.Context, id int64, archived bool) ([]model.SmsInbound, error) {
	args := k.Called(ctx, id, archived)
	messages, _ := args.Get(0).([]model.SmsInbound)
	return messages, args.Error(1)
}

func (k *KeywordService) ArchiveResponses(ctx context.Context, id int64) (int64, error) {
	args := k.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (k *KeywordService) ExportCSV(ctx context.Context, id int64, w io.Writer) error {
	args := k.Called(ctx, id, w)
	return args.Error(0)
}

type RecipientService struct {
	mock.Mock
}

func (r *RecipientService) Create(ctx context.Context, cmd service.RecipientCommand) (*model.Recipient, error) {
	args := r.Called(ctx, cmd)
	recipient, _ := args.Get(0).(*model.Recipient)
	return recipient, args.Error(1)
}

func (r *RecipientService) Update(ctx context.Context, id int64, cmd service.RecipientCommand) (*model.Recipient, error) {
	args := r.Called(ctx, id, cmd)
	recipient, _ := args.Get(0).(*model.Recipient)
	return recipient, args.Error(1)
}

func (r *RecipientService) Get(ctx context.Context, id int64) (*model.Recipient, error) {
	args := r.Called(ctx, id)
	recipient, _ := args.Get(0).(*model.Recipient)
	return recipient, args.Error(1)
}

func (r *RecipientService) List(ctx context.Context, includeArchived bool, limit, offset int) ([]model.Recipient, error) {
	args := r.Called(ctx, includeArchived, limit, offset)
	recipients, _ := args.Get(0).([]model.Recipient)
	return recipients, args.Error(1)
}

func (r *RecipientService) Archive(ctx context.Context, id int64) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

func (r *RecipientService) RecentMessages(ctx context.Context, id int64) ([]model.SmsInbound, error) {
	args := r.Called(ctx, id)
	messages, _ := args.Get(0).([]model.SmsInbound)
	return messages, args.Error(1)
}

type GroupService struct {
	mock.Mock
}

func (g *GroupService) Create(ctx context.Context, cmd service.GroupCommand) (*service.GroupView, error) {
	args := g.Called(ctx, cmd)
	view, _ := args.Get(0).(*service.GroupView)
	return view, args.Error(1)
}

func (g *GroupService) Update(ctx context.Context, id int64, cmd service.GroupCommand) (*service.GroupView, error) {
	args := g.Called(ctx, id, cmd)
	view, _ := args.Get(0).(*service.GroupView)
	return view, args.Error(1)
}

func (g *GroupService) Get(ctx context.Context, id int64) (*service.GroupView, error) {
	args := g.Called(ctx, id)
	view, _ := args.Get(0).(*service.GroupView)
	return view, args.Error(1)
}

func (g *GroupService) List(ctx context.Context, includeArchived bool) ([]service.GroupView, error) {
	args := g.Called(ctx, includeArchived)
	views, _ := args.Get(0).([]service.GroupView)
	return views, args.Error(1)
}

func (g *GroupService) Archive(ctx context.Context, id int64) error {
	args := g.Called(ctx, id)
	return args.Error(0)
}

func (g *GroupService) AddMembers(ctx context.Context, id int64, recipientIDs []int64) (*service.GroupView, error) {
	args := g.Called(ctx, id, recipientIDs)
	view, _ := args.Get(0).(*service.GroupView)
	return view, args.Error(1)
}

func (g *GroupService) RemoveMembers(ctx context.Context, id int64, recipientIDs []int64) (*service.GroupView, error) {
	args := g.Called(ctx, id, recipientIDs)
	view, _ := args.Get(0).(*service.GroupView)
	return view, args.Error(1)
}

type LogService struct {
	mock.Mock
}

func (l *LogService) ListInbound(ctx context.Context, query service.ListInboundQuery) ([]model.SmsInbound, error) {
	args := l.Called(ctx, query)
	messages, _ := args.Get(0).([]model.SmsInbound)
	return messages, args.Error(1)
}

func (l *LogService) GetInbound(ctx context.Context, id int64) (*model.SmsInbound, error) {
	args := l.Called(ctx, id)
	sms, _ := args.Get(0).(*model.SmsInbound)
	return sms, args.Error(1)
}

func (l *LogService) UpdateFlags(ctx context.Context, id int64, cmd service.InboundFlagsCommand) (*model.SmsInbound, error) {
	args := l.Called(ctx, id, cmd)
	sms, _ := args.Get(0).(*model.SmsInbound)
	return sms, args.Error(1)
}

func (l *LogService) Reimport(ctx context.Context, id int64) (*model.SmsInbound, error) {
	args := l.Called(ctx, id)
	sms, _ := args.Get(0).(*model.SmsInbound)
	return sms, args.Error(1)
}

func (l *LogService) ListOutbound(ctx context.Context, limit, offset int) ([]model.SmsOutbound, error) {
	args := l.Called(ctx, limit, offset)
	messages, _ := args.Get(0).([]model.SmsOutbound)
	return messages, args.Error(1)
}

func (l *LogService) Wall(ctx context.Context, onlyLive bool) ([]model.SmsInbound, error) {
	args := l.Called(ctx, onlyLive)
	messages, _ := args.Get(0).([]model.SmsInbound)
	return messages, args.Error(1)
}

func (l *LogService) KeywordWall(ctx context.Context, keywordID int64, onlyLive bool) ([]model.SmsInbound, error) {
	args := l.Called(ctx, keywordID, onlyLive)
	messages, _ := args.Get(0).([]model.SmsInbound)
	return messages, args.Error(1)
}

type SiteConfigService struct {
	mock.Mock
}

func (s *SiteConfigService) GetSiteConfiguration(ctx context.Context) (*model.SiteConfiguration, error) {
	args := s.Called(ctx)
	cfg, _ := args.Get(0).(*model.SiteConfiguration)
	return cfg, args.Error(1)
}

func (s *SiteConfigService) UpdateSiteConfiguration(ctx context.Context, cmd service.SiteConfigCommand) (*model.SiteConfiguration, error) {
	args := s.Called(ctx, cmd)
	cfg, _ := args.Get(0).(*model.SiteConfiguration)
	return cfg, args.Error(1)
}

func (s *SiteConfigService) GetDefaultResponses(ctx context.Context) (*model.DefaultResponses, error) {
	args := s.Called(ctx)
	responses, _ := args.Get(0).(*model.DefaultResponses)
	return responses, args.Error(1)
}

func (s *SiteConfigService) UpdateDefaultResponses(ctx context.Context, cmd service.DefaultResponsesCommand) (*model.DefaultResponses, error) {
	args := s.Called(ctx, cmd)
	responses, _ := args.Get(0).(*model.DefaultResponses)
	return responses, args.Error(1)
}
