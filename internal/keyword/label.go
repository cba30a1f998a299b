package keyword

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

const (
	NoMatchLabel = "No Match"

	ColourStop    = "#FFCDD2"
	ColourName    = "#BBDEFB"
	ColourNoMatch = "#B6B6B6"
)

// Label is the text stored as the matched keyword of an inbound message.
func Label(r MatchResult) string {
	switch r.Kind {
	case KindStop, KindStart, KindInfo, KindName:
		return r.Kind.String()
	case KindKeyword:
		if r.Keyword != nil {
			return r.Keyword.Keyword
		}
	}
	return NoMatchLabel
}

func Colour(r MatchResult) string {
	switch r.Kind {
	case KindStop:
		return ColourStop
	case KindName:
		return ColourName
	case KindNoMatch:
		return ColourNoMatch
	}

	sum := md5.Sum([]byte(Label(r)))
	return "#" + hex.EncodeToString(sum[:])[:6]
}

func LogLink(r MatchResult) string {
	if r.Kind == KindKeyword && r.Keyword != nil {
		return ResponsesLink(r.Keyword.ID)
	}
	return "#"
}

func ResponsesLink(keywordID int64) string {
	return fmt.Sprintf("/keyword/responses/%d/", keywordID)
}
