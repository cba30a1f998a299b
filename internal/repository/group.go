package repository

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"gorm.io/gorm"
)

type GroupRepository interface {
	Create(ctx context.Context, group *model.RecipientGroup) error
	Update(ctx context.Context, group *model.RecipientGroup) error
	Archive(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.RecipientGroup, error)
	List(ctx context.Context, includeArchived bool) ([]model.RecipientGroup, error)
	AddMembers(ctx context.Context, groupID int64, recipientIDs []int64) error
	RemoveMembers(ctx context.Context, groupID int64, recipientIDs []int64) error
	ActiveMembers(ctx context.Context, groupID int64) ([]model.Recipient, error)
}

type Group struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &Group{db: db}
}

func (g *Group) Create(ctx context.Context, group *model.RecipientGroup) error {
	err := GetTx(ctx, g.db).Omit("Recipients").Create(group).Error
	if IsDuplicate(err) {
		return ErrGroupDuplicate
	}
	return err
}

func (g *Group) Update(ctx context.Context, group *model.RecipientGroup) error {
	db := GetTx(ctx, g.db)
	result := db.Model(&model.RecipientGroup{}).
		Where("id = ?", group.ID).
		Updates(map[string]interface{}{"name": group.Name, "description": group.Description})
	if IsDuplicate(result.Error) {
		return ErrGroupDuplicate
	}
	return updated(db, result, &model.RecipientGroup{}, group.ID, ErrGroupNotFound)
}

func (g *Group) Archive(ctx context.Context, id int64) error {
	db := GetTx(ctx, g.db)
	result := db.Model(&model.RecipientGroup{}).Where("id = ?", id).Update("is_archived", true)
	return updated(db, result, &model.RecipientGroup{}, id, ErrGroupNotFound)
}

func (g *Group) GetByID(ctx context.Context, id int64) (*model.RecipientGroup, error) {
	var group model.RecipientGroup
	err := GetTx(ctx, g.db).
		Preload("Recipients", "is_archived = ?", false).
		Where("id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	return &group, nil
}

func (g *Group) List(ctx context.Context, includeArchived bool) ([]model.RecipientGroup, error) {
	var groups []model.RecipientGroup
	db := GetTx(ctx, g.db).Model(&model.RecipientGroup{})
	if !includeArchived {
		db = db.Where("is_archived = ?", false)
	}
	err := db.Order("name ASC").Find(&groups).Error
	return groups, err
}

func (g *Group) AddMembers(ctx context.Context, groupID int64, recipientIDs []int64) error {
	return g.members(ctx, groupID, recipientIDs, func(a *gorm.Association, rs []model.Recipient) error {
		return a.Append(rs)
	})
}

func (g *Group) RemoveMembers(ctx context.Context, groupID int64, recipientIDs []int64) error {
	return g.members(ctx, groupID, recipientIDs, func(a *gorm.Association, rs []model.Recipient) error {
		return a.Delete(rs)
	})
}

func (g *Group) members(ctx context.Context, groupID int64, recipientIDs []int64, apply func(*gorm.Association, []model.Recipient) error) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	db := GetTx(ctx, g.db)

	var group model.RecipientGroup
	if err := db.Where("id = ?", groupID).First(&group).Error; err != nil {
		return notFound(err, ErrGroupNotFound)
	}

	var recipients []model.Recipient
	if err := db.Where("id IN ?", recipientIDs).Find(&recipients).Error; err != nil {
		return err
	}
	if len(recipients) != len(uniqueIDs(recipientIDs)) {
		return ErrRecipientNotFound
	}

	return apply(db.Model(&group).Omit("Recipients.*").Association("Recipients"), recipients)
}

// ActiveMembers returns the non-archived members of a group.
func (g *Group) ActiveMembers(ctx context.Context, groupID int64) ([]model.Recipient, error) {
	var recipients []model.Recipient
	err := GetTx(ctx, g.db).
		Joins("JOIN recipient_group_members m ON m.recipient_id = recipients.id").
		Where("m.recipient_group_id = ? AND recipients.is_archived = ?", groupID, false).
		Order("recipients.id ASC").
		Find(&recipients).Error
	return recipients, err
}

func uniqueIDs(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
