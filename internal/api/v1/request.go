package v1

import "time"

// InboundSmsRequest carries the form fields Twilio posts to the webhook.
type InboundSmsRequest struct {
	From       string `form:"From"`
	Body       string `form:"Body"`
	MessageSid string `form:"MessageSid"`
}

type KeywordRequest struct {
	Keyword             string     `json:"keyword" validate:"required,max=12,keyword"`
	Description         string     `json:"description" validate:"max=200"`
	CustomResponse      string     `json:"custom_response" validate:"max=100,gsm"`
	DeactivatedResponse string     `json:"deactivated_response" validate:"max=100,gsm"`
	TooEarlyResponse    string     `json:"too_early_response" validate:"max=1000,gsm"`
	ActivateTime        time.Time  `json:"activate_time"`
	DeactivateTime      *time.Time `json:"deactivate_time"`
	Owners              []string   `json:"owners" validate:"dive,required,max=150"`
}

type RecipientRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=16,gsm"`
	LastName   string `json:"last_name" validate:"required,max=40,gsm"`
	Number     string `json:"number" validate:"required,e164"`
	IsBlocking bool   `json:"is_blocking"`
}

type GroupRequest struct {
	Name        string `json:"name" validate:"required,max=30"`
	Description string `json:"description" validate:"max=200"`
}

type GroupMembersRequest struct {
	RecipientIDs []int64 `json:"recipient_ids" validate:"required,min=1,dive,gt=0"`
}

type SendAdhocRequest struct {
	RecipientIDs  []int64    `json:"recipient_ids" validate:"required,min=1,dive,gt=0"`
	Content       string     `json:"content" validate:"required,gsm"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	SentBy        string     `json:"sent_by" validate:"max=200"`
}

type SendGroupRequest struct {
	GroupID       int64      `json:"group_id" validate:"required,gt=0"`
	Content       string     `json:"content" validate:"required,gsm"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	SentBy        string     `json:"sent_by" validate:"max=200"`
}

type InboundFlagsRequest struct {
	IsArchived    *bool `json:"is_archived"`
	DealtWith     *bool `json:"dealt_with"`
	DisplayOnWall *bool `json:"display_on_wall"`
}

type SiteConfigRequest struct {
	SiteName          string `json:"site_name" validate:"required,max=255"`
	SmsCharLimit      int    `json:"sms_char_limit" validate:"required,min=1,max=1600"`
	DisableAllReplies bool   `json:"disable_all_replies"`
	OfficeEmail       string `json:"office_email" validate:"omitempty,email"`
	SlackWebhook      string `json:"slack_webhook" validate:"omitempty,url"`
	SendingCost       string `json:"sending_cost" validate:"required,numeric"`
}

type DefaultResponsesRequest struct {
	DefaultNoKeywordAutoReply string `json:"default_no_keyword_auto_reply" validate:"required,gsm"`
	DefaultNoKeywordNotLive   string `json:"default_no_keyword_not_live" validate:"required,gsm"`
	KeywordNoMatch            string `json:"keyword_no_match" validate:"required,gsm"`
	StartReply                string `json:"start_reply" validate:"gsm"`
	NameUpdateReply           string `json:"name_update_reply" validate:"required,gsm"`
	NameFailureReply          string `json:"name_failure_reply" validate:"required,gsm"`
	AutoNameRequest           string `json:"auto_name_request" validate:"required,gsm"`
}
