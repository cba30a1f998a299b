package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/Behyna/sms-services/campaign/internal/cache"
	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/reply"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"go.uber.org/zap"
)

var csvHeader = []string{"From", "Time", "Keyword", "Message"}

type KeywordService interface {
	Create(ctx context.Context, cmd KeywordCommand) (*KeywordView, error)
	Update(ctx context.Context, id int64, cmd KeywordCommand) (*KeywordView, error)
	Get(ctx context.Context, id int64) (*KeywordView, error)
	List(ctx context.Context, includeArchived bool) ([]KeywordView, error)
	Archive(ctx context.Context, id int64) error
	// Responses lists the messages matched to a keyword, newest first.
	Responses(ctx context.Context, id int64, archived bool) ([]model.SmsInbound, error)
	ArchiveResponses(ctx context.Context, id int64) (int64, error)
	ExportCSV(ctx context.Context, id int64, w io.Writer) error
}

type keywordService struct {
	keywordRepo    repository.KeywordRepository
	inboundRepo    repository.InboundRepository
	siteConfigRepo repository.SiteConfigRepository
	txManager      repository.TxManager
	cache          cache.Cache
	invalidator    cache.Invalidator
	ttl            time.Duration
	logger         *zap.Logger
}

func NewKeywordService(keywordRepo repository.KeywordRepository, inboundRepo repository.InboundRepository,
	siteConfigRepo repository.SiteConfigRepository, txManager repository.TxManager, c cache.Cache,
	invalidator cache.Invalidator, cfg *config.Config, logger *zap.Logger) KeywordService {
	return &keywordService{
		keywordRepo:    keywordRepo,
		inboundRepo:    inboundRepo,
		siteConfigRepo: siteConfigRepo,
		txManager:      txManager,
		cache:          c,
		invalidator:    invalidator,
		ttl:            cfg.Redis.TTL,
		logger:         logger,
	}
}

func (s *keywordService) Create(ctx context.Context, cmd KeywordCommand) (*KeywordView, error) {
	if err := s.validate(ctx, cmd, 0); err != nil {
		return nil, err
	}

	k := keywordFromCommand(cmd)
	if err := s.keywordRepo.Create(ctx, k); err != nil {
		s.logger.Warn("Failed to create keyword", zap.String("keyword", cmd.Keyword), zap.Error(err))
		return nil, fromRepository(err)
	}

	s.logger.Info("Keyword created", zap.Int64("keywordID", k.ID), zap.String("keyword", k.Keyword))
	return s.view(ctx, *k)
}

func (s *keywordService) Update(ctx context.Context, id int64, cmd KeywordCommand) (*KeywordView, error) {
	existing, err := s.keywordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}

	if err := s.validate(ctx, cmd, id); err != nil {
		return nil, err
	}

	k := keywordFromCommand(cmd)
	k.ID = id

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.keywordRepo.Update(ctx, k); err != nil {
			return err
		}

		// Past responses follow the keyword when it is renamed.
		if existing.Keyword != k.Keyword {
			return s.relabel(ctx, existing.Keyword, *k)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to update keyword", zap.Int64("keywordID", id), zap.Error(err))
		return nil, fromRepository(err)
	}

	s.invalidate(ctx, id)

	updated, err := s.keywordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	return s.view(ctx, *updated)
}

func (s *keywordService) relabel(ctx context.Context, from string, k model.Keyword) error {
	messages, err := s.inboundRepo.List(ctx, repository.InboundFilter{Keyword: from})
	if err != nil {
		return err
	}

	match := keyword.MatchResult{Kind: keyword.KindKeyword, Keyword: &k}
	for i := range messages {
		msg := messages[i]
		msg.MatchedKeyword = keyword.Label(match)
		msg.MatchedColour = keyword.Colour(match)
		msg.MatchedLink = keyword.LogLink(match)
		if err := s.inboundRepo.Update(ctx, &msg); err != nil {
			return err
		}
	}
	return nil
}

func (s *keywordService) Get(ctx context.Context, id int64) (*KeywordView, error) {
	k, err := s.keywordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	return s.view(ctx, *k)
}

func (s *keywordService) List(ctx context.Context, includeArchived bool) ([]KeywordView, error) {
	keywords, err := s.keywordRepo.List(ctx, includeArchived)
	if err != nil {
		s.logger.Error("Failed to list keywords", zap.Error(err))
		return nil, fromRepository(err)
	}

	views := make([]KeywordView, 0, len(keywords))
	for _, k := range keywords {
		v, err := s.view(ctx, k)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Archive retires a keyword together with every message it matched.
func (s *keywordService) Archive(ctx context.Context, id int64) error {
	k, err := s.keywordRepo.GetByID(ctx, id)
	if err != nil {
		return fromRepository(err)
	}

	var archived int64
	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.keywordRepo.Archive(ctx, id); err != nil {
			return err
		}
		archived, err = s.inboundRepo.ArchiveByKeyword(ctx, k.Keyword)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to archive keyword", zap.Int64("keywordID", id), zap.Error(err))
		return fromRepository(err)
	}

	s.invalidate(ctx, id)
	s.logger.Info("Keyword archived",
		zap.Int64("keywordID", id),
		zap.Int64("archivedMessages", archived))
	return nil
}

func (s *keywordService) Responses(ctx context.Context, id int64, archived bool) ([]model.SmsInbound, error) {
	k, err := s.keywordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}

	messages, err := readThrough(ctx, s.cache, s.logger, cache.KeywordResponsesKey(id, archived), s.ttl,
		func(ctx context.Context) ([]model.SmsInbound, error) {
			return s.inboundRepo.List(ctx, repository.InboundFilter{Keyword: k.Keyword, Archived: &archived})
		})
	if err != nil {
		s.logger.Error("Failed to list keyword responses", zap.Int64("keywordID", id), zap.Error(err))
		return nil, fromRepository(err)
	}
	return messages, nil
}

func (s *keywordService) ArchiveResponses(ctx context.Context, id int64) (int64, error) {
	k, err := s.keywordRepo.GetByID(ctx, id)
	if err != nil {
		return 0, fromRepository(err)
	}

	archived, err := s.inboundRepo.ArchiveByKeyword(ctx, k.Keyword)
	if err != nil {
		s.logger.Error("Failed to archive keyword responses", zap.Int64("keywordID", id), zap.Error(err))
		return 0, fromRepository(err)
	}

	s.invalidate(ctx, id)
	return archived, nil
}

// ExportCSV writes every non-archived response of the keyword as CSV.
func (s *keywordService) ExportCSV(ctx context.Context, id int64, w io.Writer) error {
	messages, err := s.Responses(ctx, id, false)
	if err != nil {
		return err
	}

	out := csv.NewWriter(w)
	if err := out.Write(csvHeader); err != nil {
		return err
	}

	for _, m := range messages {
		received := ""
		if m.TimeReceived != nil {
			received = m.TimeReceived.UTC().Format(time.RFC3339)
		}
		if err := out.Write([]string{m.SenderName, received, m.MatchedKeyword, m.Content}); err != nil {
			return err
		}
	}

	out.Flush()
	return out.Error()
}

func (s *keywordService) validate(ctx context.Context, cmd KeywordCommand, selfID int64) error {
	existing, err := s.keywordRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load keywords for validation", zap.Error(err))
		return fromRepository(err)
	}

	if err := keyword.Validate(cmd.Keyword, existing, selfID); err != nil {
		return NewServiceError(constants.ErrCodeInvalidKeyword, err)
	}

	if cmd.DeactivateTime != nil && !cmd.ActivateTime.IsZero() && cmd.DeactivateTime.Before(cmd.ActivateTime) {
		return NewServiceError(constants.ErrCodeValidation,
			errors.New("deactivate time must not be before activate time"))
	}

	limit := model.DefaultSiteConfiguration().SmsCharLimit
	if cfg, err := s.siteConfigRepo.GetSiteConfiguration(ctx); err == nil {
		limit = cfg.SmsCharLimit
	}

	for _, response := range []string{cmd.CustomResponse, cmd.DeactivatedResponse, cmd.TooEarlyResponse} {
		if response == "" {
			continue
		}
		if !keyword.IsGSM(response) {
			return NewServiceError(constants.ErrCodeInvalidContent,
				fmt.Errorf("%w: response uses characters outside the GSM charset", ErrInvalidContent))
		}
		if n := utf8.RuneCountInString(response); limit > 0 && n > limit {
			return NewServiceError(constants.ErrCodeInvalidContent,
				fmt.Errorf("%w: response is %d characters, the limit is %d", ErrInvalidContent, n, limit))
		}
	}

	return nil
}

func (s *keywordService) view(ctx context.Context, k model.Keyword) (*KeywordView, error) {
	matches, err := s.inboundRepo.CountByKeyword(ctx, k.Keyword, false)
	if err != nil {
		return nil, fromRepository(err)
	}

	archived, err := s.inboundRepo.CountByKeyword(ctx, k.Keyword, true)
	if err != nil {
		return nil, fromRepository(err)
	}

	return &KeywordView{
		Keyword:            k,
		IsLive:             !k.IsArchived && reply.IsLive(k, time.Now()),
		NumMatches:         matches,
		NumArchivedMatches: archived,
	}, nil
}

func (s *keywordService) invalidate(ctx context.Context, id int64) {
	if err := s.invalidator.InvalidateInbound(ctx, id); err != nil {
		s.logger.Warn("Failed to invalidate keyword caches", zap.Int64("keywordID", id), zap.Error(err))
	}
}

func keywordFromCommand(cmd KeywordCommand) *model.Keyword {
	activate := cmd.ActivateTime
	if activate.IsZero() {
		activate = time.Now()
	}

	k := &model.Keyword{
		Keyword:             cmd.Keyword,
		Description:         cmd.Description,
		CustomResponse:      cmd.CustomResponse,
		DeactivatedResponse: cmd.DeactivatedResponse,
		TooEarlyResponse:    cmd.TooEarlyResponse,
		ActivateTime:        activate,
		DeactivateTime:      cmd.DeactivateTime,
	}

	for _, owner := range cmd.Owners {
		k.Owners = append(k.Owners, model.KeywordOwner{Username: owner})
	}
	return k
}
