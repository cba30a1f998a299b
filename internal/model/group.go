package model

import "time"

type RecipientGroup struct {
	ID          int64       `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Name        string      `gorm:"column:name;type:varchar(30);uniqueIndex;not null"`
	Description string      `gorm:"column:description;type:varchar(200)"`
	IsArchived  bool        `gorm:"column:is_archived;not null"`
	Recipients  []Recipient `gorm:"many2many:recipient_group_members;"`
	CreatedAt   time.Time   `gorm:"column:created_at"`
	UpdatedAt   time.Time   `gorm:"column:updated_at"`
}
