package reply_test

import (
	"testing"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/reply"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

func TestStateOf(t *testing.T) {
	k := model.Keyword{ActivateTime: now.Add(-time.Hour)}

	t.Run("active without deactivation", func(t *testing.T) {
		assert.Equal(t, reply.StateActive, reply.StateOf(k, now))
		assert.True(t, reply.IsLive(k, now))
	})

	t.Run("active at activation instant", func(t *testing.T) {
		assert.Equal(t, reply.StateActive, reply.StateOf(model.Keyword{ActivateTime: now}, now))
	})

	t.Run("not yet active", func(t *testing.T) {
		assert.Equal(t, reply.StateNotYetActive, reply.StateOf(model.Keyword{ActivateTime: now.Add(time.Minute)}, now))
	})

	t.Run("deactivated at deactivation instant", func(t *testing.T) {
		d := k
		d.DeactivateTime = ptr(now)
		assert.Equal(t, reply.StateDeactivated, reply.StateOf(d, now))
		assert.False(t, reply.IsLive(d, now))
	})
}

func TestResolve(t *testing.T) {
	responses := model.DefaultDefaultResponses()
	john := model.Recipient{FirstName: "John", LastName: "Calvin"}

	match := func(k model.Keyword) keyword.MatchResult {
		return keyword.MatchResult{Kind: keyword.KindKeyword, Keyword: &k}
	}

	t.Run("active custom response", func(t *testing.T) {
		k := model.Keyword{Keyword: "test", CustomResponse: "Custom!", ActivateTime: now.Add(-time.Hour)}
		assert.Equal(t, "Custom!", reply.Resolve(match(k), john, responses, now))
	})

	t.Run("active custom response is personalised", func(t *testing.T) {
		k := model.Keyword{Keyword: "test", CustomResponse: "Hi %name%", ActivateTime: now.Add(-time.Hour)}
		assert.Equal(t, "Hi John", reply.Resolve(match(k), john, responses, now))
	})

	t.Run("active without custom response uses auto reply", func(t *testing.T) {
		k := model.Keyword{Keyword: "test", ActivateTime: now.Add(-time.Hour)}
		assert.Equal(t, "Thank you, John, your message has been received.", reply.Resolve(match(k), john, responses, now))
	})

	t.Run("too early response", func(t *testing.T) {
		k := model.Keyword{Keyword: "test", CustomResponse: "Custom!", TooEarlyResponse: "Too soon", ActivateTime: now.Add(time.Hour)}
		assert.Equal(t, "Too soon", reply.Resolve(match(k), john, responses, now))
	})

	t.Run("too early without response uses not live template", func(t *testing.T) {
		k := model.Keyword{Keyword: "test", CustomResponse: "Custom!", ActivateTime: now.Add(time.Hour)}
		got := reply.Resolve(match(k), john, responses, now)
		assert.Equal(t, `Thank you, John, for your text. But "test" is not active..`, got)
		assert.NotContains(t, got, "Custom!")
	})

	t.Run("deactivated response", func(t *testing.T) {
		k := model.Keyword{Keyword: "test", DeactivatedResponse: "Over, %name%", ActivateTime: now.Add(-2 * time.Hour), DeactivateTime: ptr(now.Add(-time.Hour))}
		assert.Equal(t, "Over, John", reply.Resolve(match(k), john, responses, now))
	})

	t.Run("deactivated without response uses not live template", func(t *testing.T) {
		k := model.Keyword{Keyword: "test", ActivateTime: now.Add(-2 * time.Hour), DeactivateTime: ptr(now.Add(-time.Hour))}
		assert.Equal(t, `Thank you, John, for your text. But "test" is not active..`, reply.Resolve(match(k), john, responses, now))
	})

	t.Run("no match", func(t *testing.T) {
		got := reply.Resolve(keyword.NoMatch(), john, responses, now)
		assert.Equal(t, "Thank you, John, your message has not matched any of our keywords. Please correct your message and try again.", got)
	})

	t.Run("info routes to no match", func(t *testing.T) {
		got := reply.Resolve(keyword.MatchResult{Kind: keyword.KindInfo}, john, responses, now)
		assert.Contains(t, got, "has not matched any of our keywords")
	})
}

func TestTemplate_EveryKind(t *testing.T) {
	responses := model.DefaultDefaultResponses()
	kinds := []reply.Kind{
		reply.KindNoKeywordAutoReply, reply.KindNoKeywordNotLive, reply.KindKeywordNoMatch,
		reply.KindStartReply, reply.KindNameUpdateReply, reply.KindNameFailureReply, reply.KindAutoNameRequest,
	}
	for _, k := range kinds {
		assert.NotEmpty(t, reply.Template(responses, k))
	}
	assert.Equal(t, "Thanks for signing up!", reply.Template(responses, reply.KindStartReply))
}
