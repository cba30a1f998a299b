package repository

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"gorm.io/gorm"
)

type OutboundRepository interface {
	Create(ctx context.Context, sms *model.SmsOutbound) error
	List(ctx context.Context, page Page) ([]model.SmsOutbound, error)
	ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]model.SmsOutbound, error)
}

type Outbound struct {
	db *gorm.DB
}

func NewOutboundRepository(db *gorm.DB) OutboundRepository {
	return &Outbound{db: db}
}

func (o *Outbound) Create(ctx context.Context, sms *model.SmsOutbound) error {
	err := GetTx(ctx, o.db).Omit("Recipient", "RecipientGroup").Create(sms).Error
	if IsDuplicate(err) {
		return ErrOutboundDuplicate
	}
	return err
}

func (o *Outbound) List(ctx context.Context, page Page) ([]model.SmsOutbound, error) {
	var messages []model.SmsOutbound
	err := page.apply(GetTx(ctx, o.db).Preload("Recipient").Preload("RecipientGroup")).
		Order("time_sent DESC, id DESC").
		Find(&messages).Error
	return messages, err
}

func (o *Outbound) ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]model.SmsOutbound, error) {
	var messages []model.SmsOutbound
	err := Page{Limit: limit}.apply(GetTx(ctx, o.db)).
		Where("recipient_id = ?", recipientID).
		Order("time_sent DESC, id DESC").
		Find(&messages).Error
	return messages, err
}
