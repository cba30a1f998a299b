package reply

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Behyna/sms-services/campaign/internal/model"
)

var ErrMalformedName = errors.New("expected 'name <first> <last>'")

// ParseName extracts the names from "name <first> <last...>". The last name
// is every remaining word joined by single spaces.
func ParseName(body string) (first string, last string, err error) {
	fields := strings.Fields(body)
	if len(fields) < 3 {
		return "", "", ErrMalformedName
	}

	first = fields[1]
	last = strings.Join(fields[2:], " ")

	if utf8.RuneCountInString(first) > model.MaxFirstNameLength || utf8.RuneCountInString(last) > model.MaxLastNameLength {
		return "", "", ErrMalformedName
	}

	return first, last, nil
}
