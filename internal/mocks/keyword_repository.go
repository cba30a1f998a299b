package mocks

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/stretchr/testify/mock"
)

type KeywordRepository struct {
	mock.Mock
}

func (k *KeywordRepository) Create(ctx context.Context, keyword *model.Keyword) error {
	args := k.Called(ctx, keyword)
	return args.Error(0)
}

func (k *KeywordRepository) Update(ctx context.Context, keyword *model.Keyword) error {
	args := k.Called(ctx, keyword)
	return args.Error(0)
}

func (k *KeywordRepository) Archive(ctx context.Context, id int64) error {
	args := k.Called(ctx, id)
	return args.Error(0)
}

func (k *KeywordRepository) GetByID(ctx context.Context, id int64) (*model.Keyword, error) {
	args := k.Called(ctx, id)
	keyword, _ := args.Get(0).(*model.Keyword)
	return keyword, args.Error(1)
}

func (k *KeywordRepository) GetByKeyword(ctx context.Context, text string) (*model.Keyword, error) {
	args := k.Called(ctx, text)
	keyword, _ := args.Get(0).(*model.Keyword)
	return keyword, args.Error(1)
}

func (k *KeywordRepository) ListActive(ctx context.Context) ([]model.Keyword, error) {
	args := k.Called(ctx)
	keywords, _ := args.Get(0).([]model.Keyword)
	return keywords, args.Error(1)
}

func (k *KeywordRepository) List(ctx context.Context, includeArchived bool) ([]model.Keyword, error) {
	args := k.Called(ctx, includeArchived)
	keywords, _ := args.Get(0).([]model.Keyword)
	return keywords, args.Error(1)
}
