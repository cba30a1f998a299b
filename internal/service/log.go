package service

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/cache"
	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/reply"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"go.uber.org/zap"
)

type LogService interface {
	ListInbound(ctx context.Context, query ListInboundQuery) ([]model.SmsInbound, error)
	GetInbound(ctx context.Context, id int64) (*model.SmsInbound, error)
	UpdateFlags(ctx context.Context, id int64, cmd InboundFlagsCommand) (*model.SmsInbound, error)
	// Reimport matches the message again against the current keywords and
	// puts it back in the unhandled, unarchived state.
	Reimport(ctx context.Context, id int64) (*model.SmsInbound, error)
	ListOutbound(ctx context.Context, limit, offset int) ([]model.SmsOutbound, error)
	Wall(ctx context.Context, onlyLive bool) ([]model.SmsInbound, error)
	// KeywordWall is the wall restricted to one keyword. With onlyLive set it
	// is empty while the keyword is not live.
	KeywordWall(ctx context.Context, keywordID int64, onlyLive bool) ([]model.SmsInbound, error)
}

type logService struct {
	inboundRepo  repository.InboundRepository
	outboundRepo repository.OutboundRepository
	keywordRepo  repository.KeywordRepository
	cache        cache.Cache
	invalidator  cache.Invalidator
	tieBreak     keyword.TieBreak
	ttl          time.Duration
	logger       *zap.Logger
}

func NewLogService(inboundRepo repository.InboundRepository, outboundRepo repository.OutboundRepository,
	keywordRepo repository.KeywordRepository, c cache.Cache, invalidator cache.Invalidator, cfg *config.Config,
	logger *zap.Logger) LogService {
	return &logService{
		inboundRepo:  inboundRepo,
		outboundRepo: outboundRepo,
		keywordRepo:  keywordRepo,
		cache:        c,
		invalidator:  invalidator,
		tieBreak:     cfg.Matcher.TieBreak,
		ttl:          cfg.Redis.TTL,
		logger:       logger,
	}
}

func (s *logService) ListInbound(ctx context.Context, query ListInboundQuery) ([]model.SmsInbound, error) {
	messages, err := s.inboundRepo.List(ctx, repository.InboundFilter{
		Keyword:  query.Keyword,
		Archived: query.Archived,
		Page:     repository.Page{Limit: query.Limit, Offset: query.Offset},
	})
	if err != nil {
		s.logger.Error("Failed to list inbound messages", zap.Error(err))
		return nil, fromRepository(err)
	}
	return messages, nil
}

func (s *logService) GetInbound(ctx context.Context, id int64) (*model.SmsInbound, error) {
	sms, err := s.inboundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	return sms, nil
}

func (s *logService) UpdateFlags(ctx context.Context, id int64, cmd InboundFlagsCommand) (*model.SmsInbound, error) {
	sms, err := s.inboundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}

	if cmd.IsArchived != nil {
		sms.IsArchived = *cmd.IsArchived
	}
	if cmd.DealtWith != nil {
		sms.DealtWith = *cmd.DealtWith
	}
	if cmd.DisplayOnWall != nil {
		sms.DisplayOnWall = *cmd.DisplayOnWall
	}
	if sms.IsArchived {
		sms.DisplayOnWall = false
	}

	if err := s.inboundRepo.Update(ctx, sms); err != nil {
		s.logger.Error("Failed to update inbound message", zap.Int64("inboundID", id), zap.Error(err))
		return nil, fromRepository(err)
	}

	s.invalidate(ctx, sms.MatchedKeyword)
	return sms, nil
}

func (s *logService) Reimport(ctx context.Context, id int64) (*model.SmsInbound, error) {
	sms, err := s.inboundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}

	keywords, err := s.keywordRepo.ListActive(ctx)
	if err != nil {
		return nil, fromRepository(err)
	}

	match, err := keyword.NewMatcher(keywords, s.tieBreak).Match(sms.Content)
	if err != nil {
		match = keyword.NoMatch()
	}

	previous := sms.MatchedKeyword
	sms.MatchedKeyword = keyword.Label(match)
	sms.MatchedColour = keyword.Colour(match)
	sms.MatchedLink = keyword.LogLink(match)
	sms.IsArchived = false
	sms.DealtWith = false

	if err := s.inboundRepo.Update(ctx, sms); err != nil {
		s.logger.Error("Failed to reimport inbound message", zap.Int64("inboundID", id), zap.Error(err))
		return nil, fromRepository(err)
	}

	s.invalidate(ctx, previous)
	if previous != sms.MatchedKeyword {
		s.invalidate(ctx, sms.MatchedKeyword)
	}

	s.logger.Info("Inbound message reimported",
		zap.Int64("inboundID", id),
		zap.String("previous", previous),
		zap.String("matched", sms.MatchedKeyword))
	return sms, nil
}

func (s *logService) ListOutbound(ctx context.Context, limit, offset int) ([]model.SmsOutbound, error) {
	messages, err := s.outboundRepo.List(ctx, repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		s.logger.Error("Failed to list outbound messages", zap.Error(err))
		return nil, fromRepository(err)
	}
	return messages, nil
}

// Wall lists the messages picked for display. With onlyLive set, messages
// whose keyword is not currently live are left out.
func (s *logService) Wall(ctx context.Context, onlyLive bool) ([]model.SmsInbound, error) {
	messages, err := readThrough(ctx, s.cache, s.logger, cache.WallKey(onlyLive), s.ttl,
		func(ctx context.Context) ([]model.SmsInbound, error) {
			return s.loadWall(ctx, onlyLive)
		})
	if err != nil {
		s.logger.Error("Failed to load wall", zap.Error(err))
		return nil, fromRepository(err)
	}
	return messages, nil
}

func (s *logService) KeywordWall(ctx context.Context, keywordID int64, onlyLive bool) ([]model.SmsInbound, error) {
	k, err := s.keywordRepo.GetByID(ctx, keywordID)
	if err != nil {
		return nil, fromRepository(err)
	}

	messages, err := readThrough(ctx, s.cache, s.logger, cache.KeywordWallKey(keywordID, onlyLive), s.ttl,
		func(ctx context.Context) ([]model.SmsInbound, error) {
			if onlyLive && (k.IsArchived || !reply.IsLive(*k, time.Now())) {
				return []model.SmsInbound{}, nil
			}

			archived, onWall := false, true
			return s.inboundRepo.List(ctx, repository.InboundFilter{
				Keyword:       k.Keyword,
				Archived:      &archived,
				DisplayOnWall: &onWall,
			})
		})
	if err != nil {
		s.logger.Error("Failed to load keyword wall", zap.Int64("keywordID", keywordID), zap.Error(err))
		return nil, fromRepository(err)
	}
	return messages, nil
}

func (s *logService) loadWall(ctx context.Context, onlyLive bool) ([]model.SmsInbound, error) {
	archived, onWall := false, true
	messages, err := s.inboundRepo.List(ctx, repository.InboundFilter{Archived: &archived, DisplayOnWall: &onWall})
	if err != nil || !onlyLive {
		return messages, err
	}

	keywords, err := s.keywordRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	live := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		live[k.Keyword] = reply.IsLive(k, now)
	}

	filtered := make([]model.SmsInbound, 0, len(messages))
	for _, m := range messages {
		if live[m.MatchedKeyword] {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func (s *logService) invalidate(ctx context.Context, label string) {
	var keywordID int64
	if k, err := s.keywordRepo.GetByKeyword(ctx, label); err == nil {
		keywordID = k.ID
	} else if !errors.Is(err, repository.ErrKeywordNotFound) {
		s.logger.Warn("Failed to look up keyword for cache invalidation", zap.String("keyword", label), zap.Error(err))
	}

	if err := s.invalidator.InvalidateInbound(ctx, keywordID); err != nil {
		s.logger.Warn("Failed to invalidate inbound caches", zap.Int64("keywordID", keywordID), zap.Error(err))
	}
}
