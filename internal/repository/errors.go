package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecipientNotFound  = errors.New("RECIPIENT_NOT_FOUND")
	ErrRecipientDuplicate = errors.New("RECIPIENT_DUPLICATE")
	ErrGroupNotFound      = errors.New("GROUP_NOT_FOUND")
	ErrGroupDuplicate     = errors.New("GROUP_DUPLICATE")
	ErrKeywordNotFound    = errors.New("KEYWORD_NOT_FOUND")
	ErrKeywordDuplicate   = errors.New("KEYWORD_DUPLICATE")
	ErrInboundNotFound    = errors.New("INBOUND_NOT_FOUND")
	ErrInboundDuplicate   = errors.New("INBOUND_DUPLICATE")
	ErrOutboundDuplicate  = errors.New("OUTBOUND_DUPLICATE")
	ErrQueuedSmsNotFound  = errors.New("QUEUED_SMS_NOT_FOUND")
	ErrNoRowsAffected     = errors.New("NO_ROWS_AFFECTED")
)

const mysqlDuplicateEntry = 1062

// IsDuplicate reports a unique constraint violation, either translated by
// gorm or raw from the MySQL driver.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// updated checks an UPDATE by primary key. MySQL reports changed rows, so an
// update that rewrites identical values affects none; the row is then looked
// up before sentinel is returned.
func updated(db *gorm.DB, result *gorm.DB, value interface{}, id int64, sentinel error) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(value).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return sentinel
	}
	return nil
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		db = db.Limit(p.Limit)
	}
	if p.Offset > 0 {
		db = db.Offset(p.Offset)
	}
	return db
}
