package validator

import (
	"regexp"

	"github.com/Behyna/sms-services/campaign/internal/keyword"
	"github.com/go-playground/validator/v10"
)

const (
	GSMTag     = "gsm"
	KeywordTag = "keyword"
)

var keywordPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

var valid = map[string]func(fl validator.FieldLevel) bool{
	GSMTag:     ValidateGSM,
	KeywordTag: ValidateKeyword,
}

// ValidateGSM accepts text that fits the GSM 03.38 alphabet.
func ValidateGSM(fl validator.FieldLevel) bool {
	return keyword.IsGSM(fl.Field().String())
}

func ValidateKeyword(fl validator.FieldLevel) bool {
	return keywordPattern.MatchString(fl.Field().String())
}
