package cache

import "context"

// Invalidator drops read models that depend on inbound messages.
type Invalidator interface {
	// InvalidateInbound clears the live walls and, when keywordID is non-zero,
	// the wall and response listings of that keyword.
	InvalidateInbound(ctx context.Context, keywordID int64) error
}

type KeyInvalidator struct {
	cache Cache
}

func NewInvalidator(cache Cache) Invalidator {
	return &KeyInvalidator{cache: cache}
}

func (i *KeyInvalidator) InvalidateInbound(ctx context.Context, keywordID int64) error {
	keys := []string{WallKey(true), WallKey(false)}
	if keywordID != 0 {
		keys = append(keys,
			KeywordWallKey(keywordID, true), KeywordWallKey(keywordID, false),
			KeywordResponsesKey(keywordID, true), KeywordResponsesKey(keywordID, false))
	}
	return i.cache.Delete(ctx, keys...)
}
