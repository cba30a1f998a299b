package keyword

import (
	"errors"
	"sort"
	"strings"

	"github.com/Behyna/sms-services/campaign/internal/model"
)

var ErrEmptyMessage = errors.New("empty message")

type Kind int

const (
	KindNoMatch Kind = iota
	KindStop
	KindStart
	KindInfo
	KindName
	KindKeyword
)

func (k Kind) String() string {
	switch k {
	case KindStop:
		return "stop"
	case KindStart:
		return "start"
	case KindInfo:
		return "info"
	case KindName:
		return "name"
	case KindKeyword:
		return "keyword"
	default:
		return "no_match"
	}
}

var (
	StopWords  = []string{"stop", "stopall", "unsubscribe", "cancel", "end", "quit"}
	StartWords = []string{"start", "yes"}
	InfoWords  = []string{"info", "help"}
	NameWord   = "name"
)

// ReservedWords cannot be used as keywords.
func ReservedWords() []string {
	words := make([]string, 0, len(StopWords)+len(StartWords)+len(InfoWords)+1)
	words = append(words, StopWords...)
	words = append(words, StartWords...)
	words = append(words, InfoWords...)
	return append(words, NameWord)
}

// MatchResult is the outcome of matching one message. Keyword is set only
// when Kind is KindKeyword.
type MatchResult struct {
	Kind    Kind
	Keyword *model.Keyword
}

func NoMatch() MatchResult { return MatchResult{Kind: KindNoMatch} }

type TieBreak string

const (
	// TieBreakFirst scans keywords in ascending order and takes the first prefix.
	TieBreakFirst TieBreak = "first"
	// TieBreakLongest picks the longest keyword that prefixes the message.
	TieBreakLongest TieBreak = "longest"
)

type Config struct {
	TieBreak TieBreak `mapstructure:"tie_break"`
}

// Matcher matches message bodies against control words and a snapshot of keywords.
type Matcher struct {
	keywords []model.Keyword
	tieBreak TieBreak
}

func NewMatcher(keywords []model.Keyword, tieBreak TieBreak) *Matcher {
	live := make([]model.Keyword, 0, len(keywords))
	for _, k := range keywords {
		if k.IsArchived {
			continue
		}
		k.Keyword = strings.ToLower(k.Keyword)
		live = append(live, k)
	}

	sort.SliceStable(live, func(i, j int) bool { return live[i].Keyword < live[j].Keyword })

	if tieBreak != TieBreakLongest {
		tieBreak = TieBreakFirst
	}

	return &Matcher{keywords: live, tieBreak: tieBreak}
}

// Match classifies body. An empty body returns ErrEmptyMessage together with
// a NoMatch result.
func (m *Matcher) Match(body string) (MatchResult, error) {
	normalized := normalize(body)
	if normalized == "" {
		return NoMatch(), ErrEmptyMessage
	}

	if kind, ok := controlWord(normalized); ok {
		return MatchResult{Kind: kind}, nil
	}

	var found *model.Keyword
	for i := range m.keywords {
		k := &m.keywords[i]
		if k.Keyword == "" || !strings.HasPrefix(normalized, k.Keyword) {
			continue
		}
		if m.tieBreak == TieBreakFirst {
			found = k
			break
		}
		if found == nil || len(k.Keyword) > len(found.Keyword) {
			found = k
		}
	}

	if found == nil {
		return NoMatch(), nil
	}

	matched := *found
	return MatchResult{Kind: KindKeyword, Keyword: &matched}, nil
}

func normalize(body string) string {
	return strings.ToLower(strings.TrimSpace(body))
}

func controlWord(normalized string) (Kind, bool) {
	switch {
	case hasAnyPrefix(normalized, StopWords):
		return KindStop, true
	case hasAnyPrefix(normalized, StartWords):
		return KindStart, true
	case hasAnyPrefix(normalized, InfoWords):
		return KindInfo, true
	case strings.HasPrefix(normalized, NameWord):
		return KindName, true
	}
	return KindNoMatch, false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
