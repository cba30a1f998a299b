package service

import "time"

type InboundCommand struct {
	Sid        string
	From       string
	Body       string
	ReceivedAt time.Time
}

// SendSmsTask is the payload of the sms.send queue.
type SendSmsTask struct {
	QueuedSmsID int64 `json:"queued_sms_id"`
}

type NotificationChannel string

const (
	ChannelOffice NotificationChannel = "office"
	ChannelSlack  NotificationChannel = "slack"
)

// NotificationTask is the payload of the notify.office queue.
type NotificationTask struct {
	Channel NotificationChannel `json:"channel"`
	Subject string              `json:"subject,omitempty"`
	Body    string              `json:"body"`
}

type SendAdhocCommand struct {
	RecipientIDs  []int64
	Content       string
	ScheduledTime *time.Time
	SentBy        string
}

type SendGroupCommand struct {
	GroupID       int64
	Content       string
	ScheduledTime *time.Time
	SentBy        string
}

type RecipientCommand struct {
	FirstName  string
	LastName   string
	Number     string
	IsBlocking bool
}

type GroupCommand struct {
	Name        string
	Description string
}

type KeywordCommand struct {
	Keyword             string
	Description         string
	CustomResponse      string
	DeactivatedResponse string
	TooEarlyResponse    string
	ActivateTime        time.Time
	DeactivateTime      *time.Time
	Owners              []string
}

type InboundFlagsCommand struct {
	IsArchived    *bool
	DealtWith     *bool
	DisplayOnWall *bool
}

type ListInboundQuery struct {
	Keyword  string
	Archived *bool
	Limit    int
	Offset   int
}

type SiteConfigCommand struct {
	SiteName          string
	SmsCharLimit      int
	DisableAllReplies bool
	OfficeEmail       string
	SlackWebhook      string
	SendingCost       string
}

type DefaultResponsesCommand struct {
	DefaultNoKeywordAutoReply string
	DefaultNoKeywordNotLive   string
	KeywordNoMatch            string
	StartReply                string
	NameUpdateReply           string
	NameFailureReply          string
	AutoNameRequest           string
}
