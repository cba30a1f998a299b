package repository

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KeywordRepository interface {
	Create(ctx context.Context, keyword *model.Keyword) error
	Update(ctx context.Context, keyword *model.Keyword) error
	Archive(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Keyword, error)
	GetByKeyword(ctx context.Context, keyword string) (*model.Keyword, error)
	// ListActive returns non-archived keywords in ascending keyword order.
	ListActive(ctx context.Context) ([]model.Keyword, error)
	List(ctx context.Context, includeArchived bool) ([]model.Keyword, error)
}

type Keyword struct {
	db *gorm.DB
}

func NewKeywordRepository(db *gorm.DB) KeywordRepository {
	return &Keyword{db: db}
}

func (k *Keyword) Create(ctx context.Context, keyword *model.Keyword) error {
	err := GetTx(ctx, k.db).Create(keyword).Error
	if IsDuplicate(err) {
		return ErrKeywordDuplicate
	}
	return err
}

// Update writes every editable field and replaces the owner list.
func (k *Keyword) Update(ctx context.Context, keyword *model.Keyword) error {
	db := GetTx(ctx, k.db)

	result := db.Model(&model.Keyword{}).Where("id = ?", keyword.ID).Updates(map[string]interface{}{
		"keyword":              keyword.Keyword,
		"description":          keyword.Description,
		"custom_response":      keyword.CustomResponse,
		"deactivated_response": keyword.DeactivatedResponse,
		"too_early_response":   keyword.TooEarlyResponse,
		"activate_time":        keyword.ActivateTime,
		"deactivate_time":      keyword.DeactivateTime,
	})
	if IsDuplicate(result.Error) {
		return ErrKeywordDuplicate
	}
	if err := updated(db, result, &model.Keyword{}, keyword.ID, ErrKeywordNotFound); err != nil {
		return err
	}

	if err := db.Where("keyword_id = ?", keyword.ID).Delete(&model.KeywordOwner{}).Error; err != nil {
		return err
	}

	if len(keyword.Owners) == 0 {
		return nil
	}

	owners := make([]model.KeywordOwner, len(keyword.Owners))
	for i, o := range keyword.Owners {
		owners[i] = model.KeywordOwner{KeywordID: keyword.ID, Username: o.Username}
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&owners).Error
}

func (k *Keyword) Archive(ctx context.Context, id int64) error {
	db := GetTx(ctx, k.db)
	result := db.Model(&model.Keyword{}).Where("id = ?", id).Update("is_archived", true)
	return updated(db, result, &model.Keyword{}, id, ErrKeywordNotFound)
}

func (k *Keyword) GetByID(ctx context.Context, id int64) (*model.Keyword, error) {
	var keyword model.Keyword
	err := GetTx(ctx, k.db).Preload("Owners").Where("id = ?", id).First(&keyword).Error
	if err != nil {
		return nil, notFound(err, ErrKeywordNotFound)
	}
	return &keyword, nil
}

func (k *Keyword) GetByKeyword(ctx context.Context, text string) (*model.Keyword, error) {
	var keyword model.Keyword
	err := GetTx(ctx, k.db).Preload("Owners").Where("keyword = ?", text).First(&keyword).Error
	if err != nil {
		return nil, notFound(err, ErrKeywordNotFound)
	}
	return &keyword, nil
}

func (k *Keyword) ListActive(ctx context.Context) ([]model.Keyword, error) {
	var keywords []model.Keyword
	err := GetTx(ctx, k.db).Where("is_archived = ?", false).Order("keyword ASC").Find(&keywords).Error
	return keywords, err
}

func (k *Keyword) List(ctx context.Context, includeArchived bool) ([]model.Keyword, error) {
	var keywords []model.Keyword
	db := GetTx(ctx, k.db).Preload("Owners")
	if !includeArchived {
		db = db.Where("is_archived = ?", false)
	}
	err := db.Order("keyword ASC").Find(&keywords).Error
	return keywords, err
}
