package keyword_test

import (
	"testing"

	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestLabelColourLink(t *testing.T) {
	kw := &model.Keyword{ID: 7, Keyword: "test"}

	t.Run("stop", func(t *testing.T) {
		r := keyword.MatchResult{Kind: keyword.KindStop}
		assert.Equal(t, "stop", keyword.Label(r))
		assert.Equal(t, "#FFCDD2", keyword.Colour(r))
		assert.Equal(t, "#", keyword.LogLink(r))
	})

	t.Run("name", func(t *testing.T) {
		r := keyword.MatchResult{Kind: keyword.KindName}
		assert.Equal(t, "name", keyword.Label(r))
		assert.Equal(t, "#BBDEFB", keyword.Colour(r))
	})

	t.Run("no match", func(t *testing.T) {
		r := keyword.NoMatch()
		assert.Equal(t, "No Match", keyword.Label(r))
		assert.Equal(t, "#B6B6B6", keyword.Colour(r))
		assert.Equal(t, "#", keyword.LogLink(r))
	})

	t.Run("start hashes its label", func(t *testing.T) {
		r := keyword.MatchResult{Kind: keyword.KindStart}
		// md5("start") = ea2b2676c28c0db26d39331a336c6b92
		assert.Equal(t, "#ea2b26", keyword.Colour(r))
	})

	t.Run("keyword", func(t *testing.T) {
		r := keyword.MatchResult{Kind: keyword.KindKeyword, Keyword: kw}
		assert.Equal(t, "test", keyword.Label(r))
		// md5("test") = 098f6bcd4621d373cade4e832627b4f6
		assert.Equal(t, "#098f6b", keyword.Colour(r))
		assert.Equal(t, "/keyword/responses/7/", keyword.LogLink(r))
	})

	t.Run("colour is deterministic", func(t *testing.T) {
		r := keyword.MatchResult{Kind: keyword.KindKeyword, Keyword: kw}
		assert.Equal(t, keyword.Colour(r), keyword.Colour(r))
	})
}
