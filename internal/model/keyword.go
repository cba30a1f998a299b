package model

import "time"

const MaxKeywordLength = 12

// Keyword is a trigger word matched against the start of inbound messages.
// Keyword text is always stored lower-cased.
type Keyword struct {
	ID                  int64          `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Keyword             string         `gorm:"column:keyword;type:varchar(12);uniqueIndex;not null"`
	Description         string         `gorm:"column:description;type:varchar(200)"`
	CustomResponse      string         `gorm:"column:custom_response;type:varchar(100)"`
	DeactivatedResponse string         `gorm:"column:deactivated_response;type:varchar(100)"`
	TooEarlyResponse    string         `gorm:"column:too_early_response;type:varchar(1000)"`
	ActivateTime        time.Time      `gorm:"column:activate_time;not null"`
	DeactivateTime      *time.Time     `gorm:"column:deactivate_time"`
	LastEmailSentTime   *time.Time     `gorm:"column:last_email_sent_time"`
	IsArchived          bool           `gorm:"column:is_archived;not null"`
	Owners              []KeywordOwner `gorm:"foreignKey:KeywordID"`
	CreatedAt           time.Time      `gorm:"column:created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at"`
}

type KeywordOwner struct {
	ID        int64  `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	KeywordID int64  `gorm:"column:keyword_id;not null;index:idx_keyword_owner,unique"`
	Username  string `gorm:"column:username;type:varchar(150);not null;index:idx_keyword_owner,unique"`
}

// IsLocked reports whether viewing the keyword is limited to its owners.
func (k Keyword) IsLocked() bool {
	return len(k.Owners) > 0
}
