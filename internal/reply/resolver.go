package reply

import (
	"time"

	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/model"
)

type State int

const (
	StateNotYetActive State = iota
	StateActive
	StateDeactivated
)

func (s State) String() string {
	switch s {
	case StateNotYetActive:
		return "not_yet_active"
	case StateActive:
		return "active"
	default:
		return "deactivated"
	}
}

// StateOf places k in its activation window at now. A keyword is active from
// activate_time inclusive until deactivate_time exclusive.
func StateOf(k model.Keyword, now time.Time) State {
	if k.DeactivateTime != nil && !now.Before(*k.DeactivateTime) {
		return StateDeactivated
	}
	if now.Before(k.ActivateTime) {
		return StateNotYetActive
	}
	return StateActive
}

func IsLive(k model.Keyword, now time.Time) bool {
	return StateOf(k, now) == StateActive
}

// ForKeyword builds the reply for a message that matched k.
func ForKeyword(k model.Keyword, recipient model.Recipient, responses model.DefaultResponses, now time.Time) string {
	switch StateOf(k, now) {
	case StateActive:
		if k.CustomResponse != "" {
			return Personalise(k.CustomResponse, recipient)
		}
		return Personalise(Template(responses, KindNoKeywordAutoReply), recipient)

	case StateDeactivated:
		if k.DeactivatedResponse != "" {
			return Personalise(k.DeactivatedResponse, recipient)
		}

	case StateNotYetActive:
		if k.TooEarlyResponse != "" {
			return Personalise(k.TooEarlyResponse, recipient)
		}
	}

	return withKeyword(Personalise(Template(responses, KindNoKeywordNotLive), recipient), k.Keyword)
}

// Resolve builds the reply for keyword, info and no-match results. Control
// words with side effects (stop, start, name) are handled by the caller.
func Resolve(match keyword.MatchResult, recipient model.Recipient, responses model.DefaultResponses, now time.Time) string {
	if match.Kind == keyword.KindKeyword && match.Keyword != nil {
		return ForKeyword(*match.Keyword, recipient, responses, now)
	}
	return Personalise(Template(responses, KindKeywordNoMatch), recipient)
}
