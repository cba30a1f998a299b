package model

import "time"

const (
	MaxFirstNameLength = 16
	MaxLastNameLength  = 40

	UnknownFirstName = "Unknown"
	UnknownLastName  = "Person"
)

type Recipient struct {
	ID         int64            `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	FirstName  string           `gorm:"column:first_name;type:varchar(16);not null"`
	LastName   string           `gorm:"column:last_name;type:varchar(40);not null"`
	Number     string           `gorm:"column:number;type:varchar(20);uniqueIndex;not null"`
	IsBlocking bool             `gorm:"column:is_blocking;not null"`
	IsArchived bool             `gorm:"column:is_archived;not null"`
	Groups     []RecipientGroup `gorm:"many2many:recipient_group_members;"`
	CreatedAt  time.Time        `gorm:"column:created_at"`
	UpdatedAt  time.Time        `gorm:"column:updated_at"`
}

func (r Recipient) FullName() string {
	return r.FirstName + " " + r.LastName
}
