package repository

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"gorm.io/gorm"
)

type InboundFilter struct {
	Keyword       string
	SenderNum     string
	Archived      *bool
	DisplayOnWall *bool
	Page          Page
}

type InboundRepository interface {
	Create(ctx context.Context, sms *model.SmsInbound) error
	Update(ctx context.Context, sms *model.SmsInbound) error
	GetByID(ctx context.Context, id int64) (*model.SmsInbound, error)
	List(ctx context.Context, filter InboundFilter) ([]model.SmsInbound, error)
	UpdateSenderName(ctx context.Context, number string, name string) error
	ArchiveByKeyword(ctx context.Context, keyword string) (int64, error)
	CountByKeyword(ctx context.Context, keyword string, archived bool) (int64, error)
}

type Inbound struct {
	db *gorm.DB
}

func NewInboundRepository(db *gorm.DB) InboundRepository {
	return &Inbound{db: db}
}

func (i *Inbound) Create(ctx context.Context, sms *model.SmsInbound) error {
	err := GetTx(ctx, i.db).Create(sms).Error
	if IsDuplicate(err) {
		return ErrInboundDuplicate
	}
	return err
}

func (i *Inbound) Update(ctx context.Context, sms *model.SmsInbound) error {
	db := GetTx(ctx, i.db)
	result := db.Model(&model.SmsInbound{}).Where("id = ?", sms.ID).Updates(map[string]interface{}{
		"matched_keyword": sms.MatchedKeyword,
		"matched_colour":  sms.MatchedColour,
		"matched_link":    sms.MatchedLink,
		"is_archived":     sms.IsArchived,
		"dealt_with":      sms.DealtWith,
		"display_on_wall": sms.DisplayOnWall,
	})
	return updated(db, result, &model.SmsInbound{}, sms.ID, ErrInboundNotFound)
}

func (i *Inbound) GetByID(ctx context.Context, id int64) (*model.SmsInbound, error) {
	var sms model.SmsInbound
	if err := GetTx(ctx, i.db).Where("id = ?", id).First(&sms).Error; err != nil {
		return nil, notFound(err, ErrInboundNotFound)
	}
	return &sms, nil
}

// List returns matching messages, newest first.
func (i *Inbound) List(ctx context.Context, filter InboundFilter) ([]model.SmsInbound, error) {
	db := GetTx(ctx, i.db).Model(&model.SmsInbound{})
	if filter.Keyword != "" {
		db = db.Where("matched_keyword = ?", filter.Keyword)
	}
	if filter.SenderNum != "" {
		db = db.Where("sender_num = ?", filter.SenderNum)
	}
	if filter.Archived != nil {
		db = db.Where("is_archived = ?", *filter.Archived)
	}
	if filter.DisplayOnWall != nil {
		db = db.Where("display_on_wall = ?", *filter.DisplayOnWall)
	}

	var messages []model.SmsInbound
	err := filter.Page.apply(db).Order("time_received DESC, id DESC").Find(&messages).Error
	return messages, err
}

// UpdateSenderName relabels every message received from number.
func (i *Inbound) UpdateSenderName(ctx context.Context, number string, name string) error {
	return GetTx(ctx, i.db).Model(&model.SmsInbound{}).
		Where("sender_num = ?", number).
		Update("sender_name", name).Error
}

// ArchiveByKeyword archives every message matched to keyword and takes them
// off the wall.
func (i *Inbound) ArchiveByKeyword(ctx context.Context, keyword string) (int64, error) {
	result := GetTx(ctx, i.db).Model(&model.SmsInbound{}).
		Where("matched_keyword = ? AND is_archived = ?", keyword, false).
		Updates(map[string]interface{}{"is_archived": true, "display_on_wall": false})
	return result.RowsAffected, result.Error
}

func (i *Inbound) CountByKeyword(ctx context.Context, keyword string, archived bool) (int64, error) {
	var count int64
	err := GetTx(ctx, i.db).Model(&model.SmsInbound{}).
		Where("matched_keyword = ? AND is_archived = ?", keyword, archived).
		Count(&count).Error
	return count, err
}
