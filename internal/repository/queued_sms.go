package repository

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"gorm.io/gorm"
)

type QueuedSmsRepository interface {
	Create(ctx context.Context, sms *model.QueuedSms) error
	GetByID(ctx context.Context, id int64) (*model.QueuedSms, error)
	FindDueUnpublished(ctx context.Context, now time.Time, limit int) ([]model.QueuedSms, error)
	MarkPublished(ctx context.Context, id int64, at time.Time) error
	// MarkSending claims the row for one delivery attempt. Rows stuck in
	// SENDING since before staleThreshold may be claimed again.
	MarkSending(ctx context.Context, id int64, at time.Time, staleThreshold time.Time) error
	MarkSent(ctx context.Context, id int64) error
	MarkRetry(ctx context.Context, id int64, reason string) error
	MarkFailed(ctx context.Context, id int64, reason string) error
	DeleteSentBefore(ctx context.Context, before time.Time) (int64, error)
}

type QueuedSms struct {
	db *gorm.DB
}

func NewQueuedSmsRepository(db *gorm.DB) QueuedSmsRepository {
	return &QueuedSms{db: db}
}

func (q *QueuedSms) Create(ctx context.Context, sms *model.QueuedSms) error {
	return GetTx(ctx, q.db).Omit("Recipient").Create(sms).Error
}

func (q *QueuedSms) GetByID(ctx context.Context, id int64) (*model.QueuedSms, error) {
	var sms model.QueuedSms
	if err := GetTx(ctx, q.db).Preload("Recipient").Where("id = ?", id).First(&sms).Error; err != nil {
		return nil, notFound(err, ErrQueuedSmsNotFound)
	}
	return &sms, nil
}

func (q *QueuedSms) FindDueUnpublished(ctx context.Context, now time.Time, limit int) ([]model.QueuedSms, error) {
	var rows []model.QueuedSms
	err := GetTx(ctx, q.db).
		Where("published = ? AND state = ? AND send_at <= ?", false, model.QueuedSmsStateCreated, now).
		Order("send_at ASC, id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (q *QueuedSms) MarkPublished(ctx context.Context, id int64, at time.Time) error {
	result := GetTx(ctx, q.db).Model(&model.QueuedSms{}).
		Where("id = ? AND published = ?", id, false).
		Updates(map[string]interface{}{"published": true, "published_at": at})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (q *QueuedSms) MarkSending(ctx context.Context, id int64, at time.Time, staleThreshold time.Time) error {
	result := GetTx(ctx, q.db).Model(&model.QueuedSms{}).
		Where("id = ? AND (state = ? OR (state = ? AND last_attempt_at < ?))",
			id, model.QueuedSmsStateCreated, model.QueuedSmsStateSending, staleThreshold).
		Updates(map[string]interface{}{
			"state":           model.QueuedSmsStateSending,
			"last_attempt_at": at,
			"attempt_count":   gorm.Expr("attempt_count + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (q *QueuedSms) MarkSent(ctx context.Context, id int64) error {
	return q.setState(ctx, id, model.QueuedSmsStateSent, nil)
}

// MarkRetry releases the row so the next delivery of its task can claim it.
func (q *QueuedSms) MarkRetry(ctx context.Context, id int64, reason string) error {
	return q.setState(ctx, id, model.QueuedSmsStateCreated, &reason)
}

func (q *QueuedSms) MarkFailed(ctx context.Context, id int64, reason string) error {
	return q.setState(ctx, id, model.QueuedSmsStateFailed, &reason)
}

func (q *QueuedSms) setState(ctx context.Context, id int64, state model.QueuedSmsState, reason *string) error {
	db := GetTx(ctx, q.db)
	result := db.Model(&model.QueuedSms{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"state": state, "last_error": reason})
	return updated(db, result, &model.QueuedSms{}, id, ErrQueuedSmsNotFound)
}

func (q *QueuedSms) DeleteSentBefore(ctx context.Context, before time.Time) (int64, error) {
	result := GetTx(ctx, q.db).
		Where("published = ? AND state = ? AND updated_at < ?", true, model.QueuedSmsStateSent, before).
		Delete(&model.QueuedSms{})
	return result.RowsAffected, result.Error
}
