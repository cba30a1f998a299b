package keyword

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Behyna/sms-services/campaign/internal/model"
)

var (
	ErrNotLowerCase = errors.New("keyword must be lower case")
	ErrNotSlug      = errors.New("keyword may only contain lower case letters, digits, '-' and '_'")
	ErrTooLong      = fmt.Errorf("keyword must be at most %d characters", model.MaxKeywordLength)
	ErrReserved     = errors.New("keyword clashes with a reserved word")
	ErrOverlap      = errors.New("keyword overlaps with an existing keyword")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Validate runs every keyword text rule against candidate. existing is the
// set of non-archived keywords and selfID the id of the keyword being updated
// (0 on create).
func Validate(candidate string, existing []model.Keyword, selfID int64) error {
	if err := ValidateLower(candidate); err != nil {
		return err
	}
	if len(candidate) > model.MaxKeywordLength {
		return ErrTooLong
	}
	if !IsSlug(candidate) {
		return ErrNotSlug
	}
	if err := ValidateNotReserved(candidate); err != nil {
		return err
	}
	return ValidateNoOverlap(candidate, existing, selfID)
}

func ValidateLower(candidate string) error {
	if strings.ToLower(candidate) != candidate {
		return ErrNotLowerCase
	}
	return nil
}

func IsSlug(candidate string) bool {
	return slugPattern.MatchString(candidate)
}

// ValidateNotReserved rejects keywords that a control word would always shadow.
func ValidateNotReserved(candidate string) error {
	for _, word := range ReservedWords() {
		if strings.HasPrefix(candidate, word) {
			return fmt.Errorf("%w: %q", ErrReserved, word)
		}
	}
	return nil
}

// ValidateNoOverlap rejects candidate when it and another live keyword are
// prefixes of one another.
func ValidateNoOverlap(candidate string, existing []model.Keyword, selfID int64) error {
	for _, k := range existing {
		if k.IsArchived || (selfID != 0 && k.ID == selfID) {
			continue
		}
		other := strings.ToLower(k.Keyword)
		if strings.HasPrefix(candidate, other) || strings.HasPrefix(other, candidate) {
			return fmt.Errorf("%w: %q", ErrOverlap, other)
		}
	}
	return nil
}
