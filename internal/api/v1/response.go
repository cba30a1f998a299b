package v1

import (
	"time"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/service"
)

type KeywordResponse struct {
	ID                  int64      `json:"id"`
	Keyword             string     `json:"keyword"`
	Description         string     `json:"description"`
	CustomResponse      string     `json:"custom_response"`
	DeactivatedResponse string     `json:"deactivated_response"`
	TooEarlyResponse    string     `json:"too_early_response"`
	ActivateTime        time.Time  `json:"activate_time"`
	DeactivateTime      *time.Time `json:"deactivate_time"`
	IsArchived          bool       `json:"is_archived"`
	IsLive              bool       `json:"is_live"`
	IsLocked            bool       `json:"is_locked"`
	Owners              []string   `json:"owners"`
	NumMatches          int64      `json:"num_matches"`
	NumArchivedMatches  int64      `json:"num_archived_matches"`
}

type RecipientResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Number     string `json:"number"`
	IsBlocking bool   `json:"is_blocking"`
	IsArchived bool   `json:"is_archived"`
}

type GroupResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	IsArchived  bool                `json:"is_archived"`
	MemberCount int                 `json:"member_count"`
	Cost        string              `json:"cost"`
	Members     []RecipientResponse `json:"members,omitempty"`
}

type InboundResponse struct {
	ID             int64      `json:"id"`
	Sid            string     `json:"sid"`
	Content        string     `json:"content"`
	TimeReceived   *time.Time `json:"time_received"`
	SenderName     string     `json:"sender_name"`
	SenderNum      string     `json:"sender_num"`
	MatchedKeyword string     `json:"matched_keyword"`
	MatchedColour  string     `json:"matched_colour"`
	MatchedLink    string     `json:"matched_link"`
	IsArchived     bool       `json:"is_archived"`
	DealtWith      bool       `json:"dealt_with"`
	DisplayOnWall  bool       `json:"display_on_wall"`
}

type OutboundResponse struct {
	ID               int64     `json:"id"`
	Sid              string    `json:"sid"`
	Content          string    `json:"content"`
	TimeSent         time.Time `json:"time_sent"`
	SentBy           string    `json:"sent_by"`
	RecipientID      *int64    `json:"recipient_id"`
	RecipientGroupID *int64    `json:"recipient_group_id"`
}

type SendResponse struct {
	Queued  int `json:"queued"`
	Skipped int `json:"skipped"`
}

type ArchiveResponse struct {
	Archived int64 `json:"archived"`
}

type SiteConfigResponse struct {
	SiteName          string `json:"site_name"`
	SmsCharLimit      int    `json:"sms_char_limit"`
	DisableAllReplies bool   `json:"disable_all_replies"`
	OfficeEmail       string `json:"office_email"`
	SlackWebhook      string `json:"slack_webhook"`
	SendingCost       string `json:"sending_cost"`
}

type DefaultResponsesResponse struct {
	DefaultNoKeywordAutoReply string `json:"default_no_keyword_auto_reply"`
	DefaultNoKeywordNotLive   string `json:"default_no_keyword_not_live"`
	KeywordNoMatch            string `json:"keyword_no_match"`
	StartReply                string `json:"start_reply"`
	NameUpdateReply           string `json:"name_update_reply"`
	NameFailureReply          string `json:"name_failure_reply"`
	AutoNameRequest           string `json:"auto_name_request"`
}

func newKeywordResponse(v service.KeywordView) KeywordResponse {
	owners := make([]string, 0, len(v.Owners))
	for _, o := range v.Owners {
		owners = append(owners, o.Username)
	}

	return KeywordResponse{
		ID:                  v.ID,
		Keyword:             v.Keyword.Keyword,
		Description:         v.Description,
		CustomResponse:      v.CustomResponse,
		DeactivatedResponse: v.DeactivatedResponse,
		TooEarlyResponse:    v.TooEarlyResponse,
		ActivateTime:        v.ActivateTime,
		DeactivateTime:      v.DeactivateTime,
		IsArchived:          v.IsArchived,
		IsLive:              v.IsLive,
		IsLocked:            v.IsLocked(),
		Owners:              owners,
		NumMatches:          v.NumMatches,
		NumArchivedMatches:  v.NumArchivedMatches,
	}
}

func newRecipientResponse(r model.Recipient) RecipientResponse {
	return RecipientResponse{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		FullName:   r.FullName(),
		Number:     r.Number,
		IsBlocking: r.IsBlocking,
		IsArchived: r.IsArchived,
	}
}

func newRecipientResponses(recipients []model.Recipient) []RecipientResponse {
	out := make([]RecipientResponse, 0, len(recipients))
	for _, r := range recipients {
		out = append(out, newRecipientResponse(r))
	}
	return out
}

func newGroupResponse(v service.GroupView) GroupResponse {
	resp := GroupResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		IsArchived:  v.IsArchived,
		MemberCount: v.MemberCount,
		Cost:        v.Cost.StringFixed(2),
	}
	if len(v.Recipients) > 0 {
		resp.Members = newRecipientResponses(v.Recipients)
	}
	return resp
}

func newInboundResponse(m model.SmsInbound) InboundResponse {
	return InboundResponse{
		ID:             m.ID,
		Sid:            m.Sid,
		Content:        m.Content,
		TimeReceived:   m.TimeReceived,
		SenderName:     m.SenderName,
		SenderNum:      m.SenderNum,
		MatchedKeyword: m.MatchedKeyword,
		MatchedColour:  m.MatchedColour,
		MatchedLink:    m.MatchedLink,
		IsArchived:     m.IsArchived,
		DealtWith:      m.DealtWith,
		DisplayOnWall:  m.DisplayOnWall,
	}
}

func newInboundResponses(messages []model.SmsInbound) []InboundResponse {
	out := make([]InboundResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, newInboundResponse(m))
	}
	return out
}

func newOutboundResponses(messages []model.SmsOutbound) []OutboundResponse {
	out := make([]OutboundResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, OutboundResponse{
			ID:               m.ID,
			Sid:              m.Sid,
			Content:          m.Content,
			TimeSent:         m.TimeSent,
			SentBy:           m.SentBy,
			RecipientID:      m.RecipientID,
			RecipientGroupID: m.RecipientGroupID,
		})
	}
	return out
}

func newSiteConfigResponse(cfg model.SiteConfiguration) SiteConfigResponse {
	return SiteConfigResponse{
		SiteName:          cfg.SiteName,
		SmsCharLimit:      cfg.SmsCharLimit,
		DisableAllReplies: cfg.DisableAllReplies,
		OfficeEmail:       cfg.OfficeEmail,
		SlackWebhook:      cfg.SlackWebhook,
		SendingCost:       cfg.SendingCost.String(),
	}
}

func newDefaultResponsesResponse(r model.DefaultResponses) DefaultResponsesResponse {
	return DefaultResponsesResponse{
		DefaultNoKeywordAutoReply: r.DefaultNoKeywordAutoReply,
		DefaultNoKeywordNotLive:   r.DefaultNoKeywordNotLive,
		KeywordNoMatch:            r.KeywordNoMatch,
		StartReply:                r.StartReply,
		NameUpdateReply:           r.NameUpdateReply,
		NameFailureReply:          r.NameFailureReply,
		AutoNameRequest:           r.AutoNameRequest,
	}
}
