package service

import (
	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/shopspring/decimal"
)

// InboundResult tells the webhook what to answer. Reply is only delivered
// when Send is true.
type InboundResult struct {
	Reply     string
	Send      bool
	Match     keyword.MatchResult
	InboundID int64
}

type KeywordView struct {
	model.Keyword
	IsLive             bool
	NumMatches         int64
	NumArchivedMatches int64
}

type GroupView struct {
	model.RecipientGroup
	MemberCount int
	Cost        decimal.Decimal
}

type SendResult struct {
	Queued  int
	Skipped int
}
