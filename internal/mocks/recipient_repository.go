package mocks

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/model"
	"github.com/Behyna/sms-services/campaign/internal/repository"
	"github.com/stretchr/testify/mock"
)

type RecipientRepository struct {
	mock.Mock
}

func (r *RecipientRepository) Create(ctx context.Context, recipient *model.Recipient) error {
	args := r.Called(ctx, recipient)
	return args.Error(0)
}

func (r *RecipientRepository) Update(ctx context.Context, recipient *model.Recipient) error {
	args := r.Called(ctx, recipient)
	return args.Error(0)
}

func (r *RecipientRepository) UpdateBlocking(ctx context.Context, id int64, blocking bool) error {
	args := r.Called(ctx, id, blocking)
	return args.Error(0)
}

func (r *RecipientRepository) UpdateName(ctx context.Context, id int64, firstName, lastName string) error {
	args := r.Called(ctx, id, firstName, lastName)
	return args.Error(0)
}

func (r *RecipientRepository) Archive(ctx context.Context, id int64) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

func (r *RecipientRepository) GetByID(ctx context.Context, id int64) (*model.Recipient, error) {
	args := r.Called(ctx, id)
	recipient, _ := args.Get(0).(*model.Recipient)
	return recipient, args.Error(1)
}

func (r *RecipientRepository) GetByNumber(ctx context.Context, number string) (*model.Recipient, error) {
	args := r.Called(ctx, number)
	recipient, _ := args.Get(0).(*model.Recipient)
	return recipient, args.Error(1)
}

func (r *RecipientRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Recipient, error) {
	args := r.Called(ctx, ids)
	recipients, _ := args.Get(0).([]model.Recipient)
	return recipients, args.Error(1)
}

func (r *RecipientRepository) List(ctx context.Context, filter repository.RecipientFilter) ([]model.Recipient, error) {
	args := r.Called(ctx, filter)
	recipients, _ := args.Get(0).([]model.Recipient)
	return recipients, args.Error(1)
}
