package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"go.uber.org/zap"
)

const recentMessagesLimit = 10

var ErrOwnNumber = errors.New("cannot add the sending number as a contact")

type RecipientService interface {
	Create(ctx context.Context, cmd RecipientCommand) (*model.Recipient, error)
	Update(ctx context.Context, id int64, cmd RecipientCommand) (*model.Recipient, error)
	Get(ctx context.Context, id int64) (*model.Recipient, error)
	List(ctx context.Context, includeArchived bool, limit, offset int) ([]model.Recipient, error)
	Archive(ctx context.Context, id int64) error
	RecentMessages(ctx context.Context, id int64) ([]model.SmsInbound, error)
}

type recipientService struct {
	recipientRepo repository.RecipientRepository
	inboundRepo   repository.InboundRepository
	ownNumber     string
	logger        *zap.Logger
}

func NewRecipientService(recipientRepo repository.RecipientRepository, inboundRepo repository.InboundRepository,
	cfg *config.Config, logger *zap.Logger) RecipientService {
	return &recipientService{
		recipientRepo: recipientRepo,
		inboundRepo:   inboundRepo,
		ownNumber:     cfg.Twilio.From,
		logger:        logger,
	}
}

func (s *recipientService) Create(ctx context.Context, cmd RecipientCommand) (*model.Recipient, error) {
	if err := s.validate(cmd); err != nil {
		return nil, err
	}

	r := &model.Recipient{
		FirstName:  strings.TrimSpace(cmd.FirstName),
		LastName:   strings.TrimSpace(cmd.LastName),
		Number:     cmd.Number,
		IsBlocking: cmd.IsBlocking,
	}

	if err := s.recipientRepo.Create(ctx, r); err != nil {
		s.logger.Warn("Failed to create recipient", zap.String("number", cmd.Number), zap.Error(err))
		return nil, fromRepository(err)
	}

	s.logger.Info("Recipient created", zap.Int64("recipientID", r.ID))
	return r, nil
}

func (s *recipientService) Update(ctx context.Context, id int64, cmd RecipientCommand) (*model.Recipient, error) {
	if err := s.validate(cmd); err != nil {
		return nil, err
	}

	r := &model.Recipient{
		ID:         id,
		FirstName:  strings.TrimSpace(cmd.FirstName),
		LastName:   strings.TrimSpace(cmd.LastName),
		Number:     cmd.Number,
		IsBlocking: cmd.IsBlocking,
	}

	if err := s.recipientRepo.Update(ctx, r); err != nil {
		s.logger.Warn("Failed to update recipient", zap.Int64("recipientID", id), zap.Error(err))
		return nil, fromRepository(err)
	}

	return s.Get(ctx, id)
}

func (s *recipientService) Get(ctx context.Context, id int64) (*model.Recipient, error) {
	r, err := s.recipientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	return r, nil
}

func (s *recipientService) List(ctx context.Context, includeArchived bool, limit, offset int) ([]model.Recipient, error) {
	recipients, err := s.recipientRepo.List(ctx, repository.RecipientFilter{
		IncludeArchived: includeArchived,
		Page:            repository.Page{Limit: limit, Offset: offset},
	})
	if err != nil {
		s.logger.Error("Failed to list recipients", zap.Error(err))
		return nil, fromRepository(err)
	}
	return recipients, nil
}

func (s *recipientService) Archive(ctx context.Context, id int64) error {
	if err := s.recipientRepo.Archive(ctx, id); err != nil {
		return fromRepository(err)
	}
	s.logger.Info("Recipient archived", zap.Int64("recipientID", id))
	return nil
}

func (s *recipientService) RecentMessages(ctx context.Context, id int64) ([]model.SmsInbound, error) {
	r, err := s.recipientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}

	messages, err := s.inboundRepo.List(ctx, repository.InboundFilter{
		SenderNum: r.Number,
		Page:      repository.Page{Limit: recentMessagesLimit},
	})
	if err != nil {
		return nil, fromRepository(err)
	}
	return messages, nil
}

func (s *recipientService) validate(cmd RecipientCommand) error {
	if s.ownNumber != "" && cmd.Number == s.ownNumber {
		return NewServiceError(constants.ErrCodeValidation, ErrOwnNumber)
	}

	if !keyword.IsGSM(cmd.FirstName) || !keyword.IsGSM(cmd.LastName) {
		return NewServiceError(constants.ErrCodeValidation,
			errors.New("names may only use characters from the GSM charset"))
	}

	return nil
}
