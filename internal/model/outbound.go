package model

import "time"

type SmsOutbound struct {
	ID               int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Sid              string          `gorm:"column:sid;type:varchar(34);uniqueIndex;not null"`
	Content          string          `gorm:"column:content;type:varchar(1600)"`
	TimeSent         time.Time       `gorm:"column:time_sent;index"`
	SentBy           string          `gorm:"column:sent_by;type:varchar(200)"`
	RecipientGroupID *int64          `gorm:"column:recipient_group_id"`
	RecipientGroup   *RecipientGroup `gorm:"foreignKey:RecipientGroupID"`
	RecipientID      *int64          `gorm:"column:recipient_id;index"`
	Recipient        *Recipient      `gorm:"foreignKey:RecipientID"`
}
