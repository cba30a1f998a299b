package reply

import (
	"strings"

	"github.com/Behyna/sms-services/campaign/internal/model"
)

type Kind int

const (
	KindNoKeywordAutoReply Kind = iota
	KindNoKeywordNotLive
	KindKeywordNoMatch
	KindStartReply
	KindNameUpdateReply
	KindNameFailureReply
	KindAutoNameRequest
)

// Template returns the configured text for kind.
func Template(responses model.DefaultResponses, kind Kind) string {
	switch kind {
	case KindNoKeywordAutoReply:
		return responses.DefaultNoKeywordAutoReply
	case KindNoKeywordNotLive:
		return responses.DefaultNoKeywordNotLive
	case KindKeywordNoMatch:
		return responses.KeywordNoMatch
	case KindStartReply:
		return responses.StartReply
	case KindNameUpdateReply:
		return responses.NameUpdateReply
	case KindNameFailureReply:
		return responses.NameFailureReply
	case KindAutoNameRequest:
		return responses.AutoNameRequest
	default:
		return ""
	}
}

// Personalise substitutes %name% with the contact's first name.
func Personalise(text string, recipient model.Recipient) string {
	return strings.ReplaceAll(text, "%name%", recipient.FirstName)
}

func withKeyword(text string, kw string) string {
	return strings.ReplaceAll(text, "%keyword%", kw)
}
