package service

import (
	"errors"

	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/repository"
)

var (
	ErrInvalidContent        = errors.New("INVALID_CONTENT")
	ErrNoRecipients          = errors.New("NO_RECIPIENTS")
	ErrMessageBeingProcessed = errors.New("MESSAGE_BEING_PROCESSED")
	ErrDatabase              = errors.New("DATABASE_ERROR")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

var repositoryCodes = []struct {
	err  error
	code string
}{
	{repository.ErrRecipientNotFound, constants.ErrCodeRecipientNotFound},
	{repository.ErrRecipientDuplicate, constants.ErrCodeDuplicateRecipient},
	{repository.ErrGroupNotFound, constants.ErrCodeGroupNotFound},
	{repository.ErrGroupDuplicate, constants.ErrCodeDuplicateGroup},
	{repository.ErrKeywordNotFound, constants.ErrCodeKeywordNotFound},
	{repository.ErrKeywordDuplicate, constants.ErrCodeDuplicateKeyword},
	{repository.ErrInboundNotFound, constants.ErrCodeInboundNotFound},
}

// fromRepository maps repository sentinels onto API error codes. Anything
// unknown becomes an internal error.
func fromRepository(err error) error {
	if err == nil {
		return nil
	}
	for _, rc := range repositoryCodes {
		if errors.Is(err, rc.err) {
			return NewServiceError(rc.code, err)
		}
	}
	return NewServiceError(constants.ErrCodeInternalError, err)
}
