package model

import "time"

type QueuedSmsState string

const (
	QueuedSmsStateCreated QueuedSmsState = "CREATED"
	QueuedSmsStateSending QueuedSmsState = "SENDING"
	QueuedSmsStateSent    QueuedSmsState = "SENT"
	QueuedSmsStateFailed  QueuedSmsState = "FAILED"
)

// QueuedSms is the outbox row for an outbound send. Rows are published to the
// send queue once SendAt has passed.
type QueuedSms struct {
	ID               int64          `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	RecipientID      int64          `gorm:"column:recipient_id;not null;index"`
	Recipient        Recipient      `gorm:"foreignKey:RecipientID"`
	RecipientGroupID *int64         `gorm:"column:recipient_group_id"`
	Content          string         `gorm:"column:content;type:varchar(1600);not null"`
	SentBy           string         `gorm:"column:sent_by;type:varchar(200)"`
	SendAt           time.Time      `gorm:"column:send_at;index"`
	State            QueuedSmsState `gorm:"column:state;type:varchar(16);not null"`
	Published        bool           `gorm:"column:published;not null"`
	PublishedAt      *time.Time     `gorm:"column:published_at"`
	AttemptCount     int            `gorm:"column:attempt_count;not null"`
	LastAttemptAt    *time.Time     `gorm:"column:last_attempt_at"`
	LastError        *string        `gorm:"column:last_error;type:text"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
}

func (QueuedSms) TableName() string {
	return "queued_sms"
}
