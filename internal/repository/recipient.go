package repository

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"gorm.io/gorm"
)

type RecipientFilter struct {
	IncludeArchived bool
	Page            Page
}

type RecipientRepository interface {
	Create(ctx context.Context, recipient *model.Recipient) error
	Update(ctx context.Context, recipient *model.Recipient) error
	UpdateBlocking(ctx context.Context, id int64, blocking bool) error
	UpdateName(ctx context.Context, id int64, firstName, lastName string) error
	Archive(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Recipient, error)
	GetByNumber(ctx context.Context, number string) (*model.Recipient, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Recipient, error)
	List(ctx context.Context, filter RecipientFilter) ([]model.Recipient, error)
}

type Recipient struct {
	db *gorm.DB
}

func NewRecipientRepository(db *gorm.DB) RecipientRepository {
	return &Recipient{db: db}
}

func (r *Recipient) Create(ctx context.Context, recipient *model.Recipient) error {
	err := GetTx(ctx, r.db).Omit("Groups").Create(recipient).Error
	if IsDuplicate(err) {
		return ErrRecipientDuplicate
	}
	return err
}

func (r *Recipient) Update(ctx context.Context, recipient *model.Recipient) error {
	db := GetTx(ctx, r.db)
	result := db.Model(&model.Recipient{}).
		Where("id = ?", recipient.ID).
		Updates(map[string]interface{}{
			"first_name":  recipient.FirstName,
			"last_name":   recipient.LastName,
			"number":      recipient.Number,
			"is_blocking": recipient.IsBlocking,
		})
	if IsDuplicate(result.Error) {
		return ErrRecipientDuplicate
	}
	return updated(db, result, &model.Recipient{}, recipient.ID, ErrRecipientNotFound)
}

func (r *Recipient) UpdateBlocking(ctx context.Context, id int64, blocking bool) error {
	return r.updateColumns(ctx, id, map[string]interface{}{"is_blocking": blocking})
}

func (r *Recipient) UpdateName(ctx context.Context, id int64, firstName, lastName string) error {
	return r.updateColumns(ctx, id, map[string]interface{}{"first_name": firstName, "last_name": lastName})
}

// Archive flags the recipient and drops all of its group memberships.
func (r *Recipient) Archive(ctx context.Context, id int64) error {
	if err := r.updateColumns(ctx, id, map[string]interface{}{"is_archived": true}); err != nil {
		return err
	}
	return GetTx(ctx, r.db).Model(&model.Recipient{ID: id}).Association("Groups").Clear()
}

func (r *Recipient) updateColumns(ctx context.Context, id int64, columns map[string]interface{}) error {
	db := GetTx(ctx, r.db)
	result := db.Model(&model.Recipient{}).Where("id = ?", id).Updates(columns)
	return updated(db, result, &model.Recipient{}, id, ErrRecipientNotFound)
}

func (r *Recipient) GetByID(ctx context.Context, id int64) (*model.Recipient, error) {
	var recipient model.Recipient
	err := GetTx(ctx, r.db).Preload("Groups").Where("id = ?", id).First(&recipient).Error
	if err != nil {
		return nil, notFound(err, ErrRecipientNotFound)
	}
	return &recipient, nil
}

func (r *Recipient) GetByNumber(ctx context.Context, number string) (*model.Recipient, error) {
	var recipient model.Recipient
	err := GetTx(ctx, r.db).Where("number = ?", number).First(&recipient).Error
	if err != nil {
		return nil, notFound(err, ErrRecipientNotFound)
	}
	return &recipient, nil
}

// ListByIDs returns the non-archived recipients among ids.
func (r *Recipient) ListByIDs(ctx context.Context, ids []int64) ([]model.Recipient, error) {
	var recipients []model.Recipient
	if len(ids) == 0 {
		return recipients, nil
	}
	err := GetTx(ctx, r.db).
		Where("id IN ? AND is_archived = ?", ids, false).
		Order("id ASC").
		Find(&recipients).Error
	return recipients, err
}

func (r *Recipient) List(ctx context.Context, filter RecipientFilter) ([]model.Recipient, error) {
	var recipients []model.Recipient
	db := GetTx(ctx, r.db).Model(&model.Recipient{})
	if !filter.IncludeArchived {
		db = db.Where("is_archived = ?", false)
	}
	err := filter.Page.apply(db).Order("last_name ASC, first_name ASC").Find(&recipients).Error
	return recipients, err
}
