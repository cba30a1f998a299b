package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/cache"
	"github.com/Behyna/sms-services/campaign/internal/keyword"
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
	"gorm.io/gorm"
)

const (
	knownNumber   = "+447700900001"
	unknownNumber = "+447700900999"
)

type inboundFixture struct {
	db            *gorm.DB
	svc           service.InboundService
	keywords      repository.KeywordRepository
	recipients    repository.RecipientRepository
	inbound       repository.InboundRepository
	siteConfig    repository.SiteConfigRepository
	outgoing      *mocks.OutgoingService
	notifications *mocks.NotificationService
}

func newInboundFixture(t *testing.T) *inboundFixture {
	t.Helper()

	db := newTestDB(t)
	f := &inboundFixture{
		db:            db,
		keywords:      repository.NewKeywordRepository(db),
		recipients:    repository.NewRecipientRepository(db),
		inbound:       repository.NewInboundRepository(db),
		siteConfig:    repository.NewSiteConfigRepository(db),
		outgoing:      &mocks.OutgoingService{},
		notifications: &mocks.NotificationService{},
	}

	f.notifications.On("PostSlack", mock.Anything, mock.Anything).Return()

	f.svc = service.NewInboundService(f.keywords, f.recipients, f.inbound, f.siteConfig,
		f.outgoing, f.notifications, cache.NewInvalidator(cache.NewInMemoryCache()),
		keyword.Config{TieBreak: keyword.TieBreakFirst}, metrics.NewMetrics(prometheus.NewRegistry()), zap.NewNop())

	return f
}

func (f *inboundFixture) addRecipient(t *testing.T, first, last, number string) *model.Recipient {
	t.Helper()
	r := &model.Recipient{FirstName: first, LastName: last, Number: number}
	require.NoError(t, f.recipients.Create(context.Background(), r))
	return r
}

func (f *inboundFixture) addKeyword(t *testing.T, k model.Keyword) *model.Keyword {
	t.Helper()
	if k.ActivateTime.IsZero() {
		k.ActivateTime = time.Now().Add(-time.Hour)
	}
	require.NoError(t, f.keywords.Create(context.Background(), &k))
	return &k
}

func (f *inboundFixture) handle(t *testing.T, sid, from, body string) service.InboundResult {
	t.Helper()
	result, err := f.svc.HandleInbound(context.Background(), service.InboundCommand{Sid: sid, From: from, Body: body})
	require.NoError(t, err)
	return result
}

func TestInbound_HandleInbound(t *testing.T) {
	ctx := context.Background()

	t.Run("replies with the custom response of a live keyword", func(t *testing.T) {
		f := newInboundFixture(t)
		f.addRecipient(t, "John", "Calvin", knownNumber)
		kw := f.addKeyword(t, model.Keyword{Keyword: "test", CustomResponse: "Test custom response"})

		result := f.handle(t, "SM1", knownNumber, "Test")

		assert.True(t, result.Send)
		assert.Equal(t, "Test custom response", result.Reply)
		assert.Equal(t, keyword.KindKeyword, result.Match.Kind)

		sms, err := f.inbound.GetByID(ctx, result.InboundID)
		require.NoError(t, err)
		assert.Equal(t, "test", sms.MatchedKeyword)
		assert.Equal(t, keyword.ResponsesLink(kw.ID), sms.MatchedLink)
		assert.Equal(t, "John Calvin", sms.SenderName)

		f.outgoing.AssertNotCalled(t, "SendToRecipient")
		f.notifications.AssertCalled(t, "PostSlack", mock.Anything, "Test\nFrom: John Calvin\n(matched: test)")
	})

	t.Run("prefix match uses the default auto reply when no custom response", func(t *testing.T) {
		f := newInboundFixture(t)
		f.addRecipient(t, "John", "Calvin", knownNumber)
		f.addKeyword(t, model.Keyword{Keyword: "test"})

		result := f.handle(t, "SM1", knownNumber, "testing 123")

		assert.True(t, result.Send)
		assert.Equal(t, "Thank you, John, your message has been received.", result.Reply)
	})

	t.Run("keyword not yet active replies with too early response", func(t *testing.T) {
		f := newInboundFixture(t)
		f.addRecipient(t, "John", "Calvin", knownNumber)
		f.addKeyword(t, model.Keyword{
			Keyword:          "early",
			CustomResponse:   "Active!",
			TooEarlyResponse: "Too early",
			ActivateTime:     time.Now().Add(time.Hour),
		})

		result := f.handle(t, "SM1", knownNumber, "early bird")

		assert.Equal(t, "Too early", result.Reply)
	})

	t.Run("deactivated keyword without response uses the not live template", func(t *testing.T) {
		f := newInboundFixture(t)
		f.addRecipient(t, "John", "Calvin", knownNumber)
		deactivated := time.Now().Add(-time.Minute)
		f.addKeyword(t, model.Keyword{
			Keyword:        "late",
			CustomResponse: "Active!",
			ActivateTime:   time.Now().Add(-time.Hour),
			DeactivateTime: &deactivated,
		})

		result := f.handle(t, "SM1", knownNumber, "late")

		assert.Equal(t, "Thank you, John, for your text. But \"late\" is not active..", result.Reply)
	})

	t.Run("no match replies with keyword_no_match", func(t *testing.T) {
		f := newInboundFixture(t)
		f.addRecipient(t, "John", "Calvin", knownNumber)

		result := f.handle(t, "SM1", knownNumber, "hello there")

		assert.Equal(t, keyword.KindNoMatch, result.Match.Kind)
		assert.Contains(t, result.Reply, "Thank you, John, your message has not matched any of our keywords.")

		sms, err := f.inbound.GetByID(ctx, result.InboundID)
		require.NoError(t, err)
		assert.Equal(t, keyword.NoMatchLabel, sms.MatchedKeyword)
		assert.Equal(t, keyword.ColourNoMatch, sms.MatchedColour)
	})

	t.Run("stop blocks the contact and sends no reply", func(t *testing.T) {
		f := newInboundFixture(t)
		r := f.addRecipient(t, "John", "Calvin", knownNumber)
		f.notifications.On("NotifyOffice", mock.Anything, mock.Anything, mock.Anything).Return()

		result := f.handle(t, "SM1", knownNumber, "STOP now")

		assert.Equal(t, keyword.KindStop, result.Match.Kind)
		assert.False(t, result.Send)
		assert.Empty(t, result.Reply)

		updated, err := f.recipients.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.True(t, updated.IsBlocking)
		f.notifications.AssertNumberOfCalls(t, "NotifyOffice", 1)
	})

	t.Run("start unblocks the contact", func(t *testing.T) {
		f := newInboundFixture(t)
		r := f.addRecipient(t, "John", "Calvin", knownNumber)
		require.NoError(t, f.recipients.UpdateBlocking(ctx, r.ID, true))

		result := f.handle(t, "SM1", knownNumber, "Start")

		assert.True(t, result.Send)
		assert.Equal(t, "Thanks for signing up!", result.Reply)

		updated, err := f.recipients.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.False(t, updated.IsBlocking)
	})

	t.Run("blocking contact texting a keyword notifies the office", func(t *testing.T) {
		f := newInboundFixture(t)
		r := f.addRecipient(t, "John", "Calvin", knownNumber)
		require.NoError(t, f.recipients.UpdateBlocking(ctx, r.ID, true))
		f.addKeyword(t, model.Keyword{Keyword: "test", CustomResponse: "Custom!"})
		f.notifications.On("NotifyOffice", mock.Anything, mock.Anything, mock.Anything).Return()

		result := f.handle(t, "SM1", knownNumber, "test")

		assert.Equal(t, "Custom!", result.Reply)
		f.notifications.AssertNumberOfCalls(t, "NotifyOffice", 1)
	})

	t.Run("name updates the contact and relabels past messages", func(t *testing.T) {
		f := newInboundFixture(t)
		r := f.addRecipient(t, "Unknown", "Person", knownNumber)
		f.notifications.On("NotifyOffice", mock.Anything, "[apostello] New Signup!", mock.Anything).Return()

		first := f.handle(t, "SM1", knownNumber, "hello")
		result := f.handle(t, "SM2", knownNumber, "name John Calvin")

		assert.Equal(t, keyword.KindName, result.Match.Kind)
		assert.Equal(t, "Thanks John!", result.Reply)

		updated, err := f.recipients.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "John", updated.FirstName)
		assert.Equal(t, "Calvin", updated.LastName)

		earlier, err := f.inbound.GetByID(ctx, first.InboundID)
		require.NoError(t, err)
		assert.Equal(t, "John Calvin", earlier.SenderName)
		f.notifications.AssertExpectations(t)
	})

	t.Run("malformed name keeps the old name and replies with failure", func(t *testing.T) {
		f := newInboundFixture(t)
		r := f.addRecipient(t, "Jane", "Doe", knownNumber)
		f.notifications.On("NotifyOffice", mock.Anything, "[apostello] New Signup - FAILED!", mock.Anything).Return()

		result := f.handle(t, "SM1", knownNumber, "name John")

		assert.Equal(t, model.DefaultDefaultResponses().NameFailureReply, result.Reply)

		updated, err := f.recipients.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", updated.FirstName)
		assert.Equal(t, "Doe", updated.LastName)
		f.notifications.AssertExpectations(t)
	})

	t.Run("unknown sender is created and asked for their name", func(t *testing.T) {
		f := newInboundFixture(t)
		f.outgoing.On("SendToRecipient", mock.Anything,
			mock.MatchedBy(func(r model.Recipient) bool { return r.Number == unknownNumber }),
			model.DefaultDefaultResponses().AutoNameRequest, "auto name request",
			(*int64)(nil), (*time.Time)(nil)).Return(true, nil)
		f.notifications.On("NotifyOffice", mock.Anything, "[apostello] Unknown Contact!", mock.Anything).Return()

		result := f.handle(t, "SM1", unknownNumber, "hello")

		assert.True(t, result.Send)

		created, err := f.recipients.GetByNumber(ctx, unknownNumber)
		require.NoError(t, err)
		assert.Equal(t, model.UnknownFirstName, created.FirstName)
		assert.Equal(t, model.UnknownLastName, created.LastName)

		f.outgoing.AssertExpectations(t)
		f.notifications.AssertExpectations(t)
	})

	t.Run("unknown sender sending their name is not asked for it", func(t *testing.T) {
		f := newInboundFixture(t)
		f.notifications.On("NotifyOffice", mock.Anything, "[apostello] New Signup!", mock.Anything).Return()

		result := f.handle(t, "SM1", unknownNumber, "name Ada Lovelace")

		assert.Equal(t, "Thanks Ada!", result.Reply)
		f.outgoing.AssertNotCalled(t, "SendToRecipient")
	})

	t.Run("disable_all_replies still records but suppresses the reply", func(t *testing.T) {
		f := newInboundFixture(t)
		cfg := model.DefaultSiteConfiguration()
		cfg.DisableAllReplies = true
		require.NoError(t, f.siteConfig.SaveSiteConfiguration(ctx, &cfg))
		f.addKeyword(t, model.Keyword{Keyword: "test", CustomResponse: "Custom!"})

		result := f.handle(t, "SM1", unknownNumber, "test")

		assert.False(t, result.Send)
		assert.Equal(t, "Custom!", result.Reply)

		_, err := f.recipients.GetByNumber(ctx, unknownNumber)
		assert.NoError(t, err)

		sms, err := f.inbound.GetByID(ctx, result.InboundID)
		require.NoError(t, err)
		assert.Equal(t, "test", sms.MatchedKeyword)

		f.outgoing.AssertNotCalled(t, "SendToRecipient")
		f.notifications.AssertNotCalled(t, "NotifyOffice")
	})

	t.Run("retried webhook with the same sid has no side effects", func(t *testing.T) {
		f := newInboundFixture(t)
		f.addRecipient(t, "John", "Calvin", knownNumber)

		first := f.handle(t, "SM1", knownNumber, "hello")
		second := f.handle(t, "SM1", knownNumber, "hello")

		assert.NotZero(t, first.InboundID)
		assert.Zero(t, second.InboundID)
		assert.False(t, second.Send)

		messages, err := f.inbound.List(ctx, repository.InboundFilter{SenderNum: knownNumber})
		require.NoError(t, err)
		assert.Len(t, messages, 1)
	})

	t.Run("body is stored trimmed", func(t *testing.T) {
		f := newInboundFixture(t)
		f.addRecipient(t, "John", "Calvin", knownNumber)
		f.addKeyword(t, model.Keyword{Keyword: "test", CustomResponse: "Custom!"})

		result := f.handle(t, "SM1", knownNumber, "  test me \n")

		sms, err := f.inbound.GetByID(ctx, result.InboundID)
		require.NoError(t, err)
		assert.Equal(t, "test me", sms.Content)
		assert.Equal(t, "Custom!", result.Reply)
		f.notifications.AssertCalled(t, "PostSlack", mock.Anything, "test me\nFrom: John Calvin\n(matched: test)")
	})

	t.Run("empty body is logged as no match", func(t *testing.T) {
		f := newInboundFixture(t)
		f.addRecipient(t, "John", "Calvin", knownNumber)

		result := f.handle(t, "SM1", knownNumber, "   ")

		assert.Equal(t, keyword.KindNoMatch, result.Match.Kind)
		assert.NotZero(t, result.InboundID)
	})
}
