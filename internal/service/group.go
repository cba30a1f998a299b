package service

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type GroupService interface {
	Create(ctx context.Context, cmd GroupCommand) (*GroupView, error)
	Update(ctx context.Context, id int64, cmd GroupCommand) (*GroupView, error)
	Get(ctx context.Context, id int64) (*GroupView, error)
	List(ctx context.Context, includeArchived bool) ([]GroupView, error)
	Archive(ctx context.Context, id int64) error
	AddMembers(ctx context.Context, id int64, recipientIDs []int64) (*GroupView, error)
	RemoveMembers(ctx context.Context, id int64, recipientIDs []int64) (*GroupView, error)
}

type groupService struct {
	groupRepo      repository.GroupRepository
	siteConfigRepo repository.SiteConfigRepository
	logger         *zap.Logger
}

func NewGroupService(groupRepo repository.GroupRepository, siteConfigRepo repository.SiteConfigRepository,
	logger *zap.Logger) GroupService {
	return &groupService{groupRepo: groupRepo, siteConfigRepo: siteConfigRepo, logger: logger}
}

func (s *groupService) Create(ctx context.Context, cmd GroupCommand) (*GroupView, error) {
	g := &model.RecipientGroup{Name: cmd.Name, Description: cmd.Description}
	if err := s.groupRepo.Create(ctx, g); err != nil {
		s.logger.Warn("Failed to create group", zap.String("name", cmd.Name), zap.Error(err))
		return nil, fromRepository(err)
	}

	s.logger.Info("Group created", zap.Int64("groupID", g.ID))
	return s.Get(ctx, g.ID)
}

func (s *groupService) Update(ctx context.Context, id int64, cmd GroupCommand) (*GroupView, error) {
	g := &model.RecipientGroup{ID: id, Name: cmd.Name, Description: cmd.Description}
	if err := s.groupRepo.Update(ctx, g); err != nil {
		s.logger.Warn("Failed to update group", zap.Int64("groupID", id), zap.Error(err))
		return nil, fromRepository(err)
	}
	return s.Get(ctx, id)
}

func (s *groupService) Get(ctx context.Context, id int64) (*GroupView, error) {
	g, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}

	cost, err := s.sendingCost(ctx)
	if err != nil {
		return nil, err
	}

	return &GroupView{
		RecipientGroup: *g,
		MemberCount:    len(g.Recipients),
		Cost:           CalculateCost(cost, len(g.Recipients)),
	}, nil
}

func (s *groupService) List(ctx context.Context, includeArchived bool) ([]GroupView, error) {
	groups, err := s.groupRepo.List(ctx, includeArchived)
	if err != nil {
		s.logger.Error("Failed to list groups", zap.Error(err))
		return nil, fromRepository(err)
	}

	cost, err := s.sendingCost(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		members, err := s.groupRepo.ActiveMembers(ctx, g.ID)
		if err != nil {
			return nil, fromRepository(err)
		}
		views = append(views, GroupView{
			RecipientGroup: g,
			MemberCount:    len(members),
			Cost:           CalculateCost(cost, len(members)),
		})
	}
	return views, nil
}

func (s *groupService) Archive(ctx context.Context, id int64) error {
	if err := s.groupRepo.Archive(ctx, id); err != nil {
		return fromRepository(err)
	}
	s.logger.Info("Group archived", zap.Int64("groupID", id))
	return nil
}

func (s *groupService) AddMembers(ctx context.Context, id int64, recipientIDs []int64) (*GroupView, error) {
	if err := s.groupRepo.AddMembers(ctx, id, recipientIDs); err != nil {
		s.logger.Warn("Failed to add group members", zap.Int64("groupID", id), zap.Error(err))
		return nil, fromRepository(err)
	}
	return s.Get(ctx, id)
}

func (s *groupService) RemoveMembers(ctx context.Context, id int64, recipientIDs []int64) (*GroupView, error) {
	if err := s.groupRepo.RemoveMembers(ctx, id, recipientIDs); err != nil {
		s.logger.Warn("Failed to remove group members", zap.Int64("groupID", id), zap.Error(err))
		return nil, fromRepository(err)
	}
	return s.Get(ctx, id)
}

func (s *groupService) sendingCost(ctx context.Context) (decimal.Decimal, error) {
	cfg, err := s.siteConfigRepo.GetSiteConfiguration(ctx)
	if err != nil {
		s.logger.Error("Failed to load site configuration", zap.Error(err))
		return decimal.Zero, fromRepository(err)
	}
	return cfg.SendingCost, nil
}

// CalculateCost is the price of sending one message to members recipients.
func CalculateCost(perMessage decimal.Decimal, members int) decimal.Decimal {
	return perMessage.Mul(decimal.NewFromInt(int64(members)))
}
