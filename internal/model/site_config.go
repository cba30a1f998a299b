package model

import "github.com/shopspring/decimal"

// SingletonID is the primary key of the single SiteConfiguration and
// DefaultResponses rows.
const SingletonID int64 = 1

type SiteConfiguration struct {
	ID                int64           `gorm:"primaryKey;column:id"`
	SiteName          string          `gorm:"column:site_name;type:varchar(255)"`
	SmsCharLimit      int             `gorm:"column:sms_char_limit;not null"`
	DisableAllReplies bool            `gorm:"column:disable_all_replies;not null"`
	OfficeEmail       string          `gorm:"column:office_email;type:varchar(254)"`
	SlackWebhook      string          `gorm:"column:slack_webhook;type:varchar(200)"`
	SendingCost       decimal.Decimal `gorm:"column:sending_cost;type:decimal(10,4)"`
}

func (SiteConfiguration) TableName() string {
	return "site_configuration"
}

func DefaultSiteConfiguration() SiteConfiguration {
	return SiteConfiguration{
		ID:           SingletonID,
		SiteName:     "apostello",
		SmsCharLimit: 160,
		SendingCost:  decimal.NewFromFloat(0.04),
	}
}

// DefaultResponses holds the site wide canned replies. %name% and %keyword%
// are substituted before sending.
type DefaultResponses struct {
	ID                        int64  `gorm:"primaryKey;column:id"`
	DefaultNoKeywordAutoReply string `gorm:"column:default_no_keyword_auto_reply;type:text"`
	DefaultNoKeywordNotLive   string `gorm:"column:default_no_keyword_not_live;type:text"`
	KeywordNoMatch            string `gorm:"column:keyword_no_match;type:text"`
	StartReply                string `gorm:"column:start_reply;type:text"`
	NameUpdateReply           string `gorm:"column:name_update_reply;type:text"`
	NameFailureReply          string `gorm:"column:name_failure_reply;type:text"`
	AutoNameRequest           string `gorm:"column:auto_name_request;type:text"`
}

func DefaultDefaultResponses() DefaultResponses {
	return DefaultResponses{
		ID:                        SingletonID,
		DefaultNoKeywordAutoReply: "Thank you, %name%, your message has been received.",
		DefaultNoKeywordNotLive:   "Thank you, %name%, for your text. But \"%keyword%\" is not active..",
		KeywordNoMatch:            "Thank you, %name%, your message has not matched any of our keywords. Please correct your message and try again.",
		StartReply:                "Thanks for signing up!",
		NameUpdateReply:           "Thanks %name%!",
		NameFailureReply:          "Something went wrong, sorry, please try again with the format 'name John Smith'.",
		AutoNameRequest:           "Hi there, I'm afraid we currently don't have your number in our address book. Could you please reply in the format\n'name John Smith'",
	}
}
