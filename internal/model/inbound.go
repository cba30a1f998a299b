package model

import "time"

type SmsInbound struct {
	ID             int64      `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Sid            string     `gorm:"column:sid;type:varchar(34);uniqueIndex;not null"`
	Content        string     `gorm:"column:content;type:varchar(1600)"`
	TimeReceived   *time.Time `gorm:"column:time_received;index"`
	SenderName     string     `gorm:"column:sender_name;type:varchar(200)"`
	SenderNum      string     `gorm:"column:sender_num;type:varchar(200);index"`
	MatchedKeyword string     `gorm:"column:matched_keyword;type:varchar(12);index"`
	MatchedColour  string     `gorm:"column:matched_colour;type:varchar(7)"`
	MatchedLink    string     `gorm:"column:matched_link;type:varchar(200)"`
	IsArchived     bool       `gorm:"column:is_archived;not null"`
	DealtWith      bool       `gorm:"column:dealt_with;not null"`
	DisplayOnWall  bool       `gorm:"column:display_on_wall;not null"`
}
