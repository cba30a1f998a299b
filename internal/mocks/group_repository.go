package mocks

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/stretchr/testify/mock"
)

type GroupRepository struct {
	mock.Mock
}

func (g *GroupRepository) Create(ctx context.Context, group *model.RecipientGroup) error {
	args := g.Called(ctx, group)
	return args.Error(0)
}

func (g *GroupRepository) Update(ctx context.Context, group *model.RecipientGroup) error {
	args := g.Called(ctx, group)
	return args.Error(0)
}

func (g *GroupRepository) Archive(ctx context.Context, id int64) error {
	args := g.Called(ctx, id)
	return args.Error(0)
}

func (g *GroupRepository) GetByID(ctx context.Context, id int64) (*model.RecipientGroup, error) {
	args := g.Called(ctx, id)
	group, _ := args.Get(0).(*model.RecipientGroup)
	return group, args.Error(1)
}

func (g *GroupRepository) List(ctx context.Context, includeArchived bool) ([]model.RecipientGroup, error) {
	args := g.Called(ctx, includeArchived)
	groups, _ := args.Get(0).([]model.RecipientGroup)
	return groups, args.Error(1)
}

func (g *GroupRepository) AddMembers(ctx context.Context, groupID int64, recipientIDs []int64) error {
	args := g.Called(ctx, groupID, recipientIDs)
	return args.Error(0)
}

func (g *GroupRepository) RemoveMembers(ctx context.Context, groupID int64, recipientIDs []int64) error {
	args := g.Called(ctx, groupID, recipientIDs)
	return args.Error(0)
}

func (g *GroupRepository) ActiveMembers(ctx context.Context, groupID int64) ([]model.Recipient, error) {
	args := g.Called(ctx, groupID)
	recipients, _ := args.Get(0).([]model.Recipient)
	return recipients, args.Error(1)
}
