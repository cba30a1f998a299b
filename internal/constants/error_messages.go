package constants

import "net/http"

const (
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeValidation         = "VALIDATION_FAILED"
	ErrCodeRecipientNotFound  = "RECIPIENT_NOT_FOUND"
	ErrCodeDuplicateRecipient = "DUPLICATE_RECIPIENT"
	ErrCodeGroupNotFound      = "GROUP_NOT_FOUND"
	ErrCodeDuplicateGroup     = "DUPLICATE_GROUP"
	ErrCodeKeywordNotFound    = "KEYWORD_NOT_FOUND"
	ErrCodeDuplicateKeyword   = "DUPLICATE_KEYWORD"
	ErrCodeInvalidKeyword     = "INVALID_KEYWORD"
	ErrCodeInboundNotFound    = "INBOUND_NOT_FOUND"
	ErrCodeInvalidContent     = "INVALID_CONTENT"
	ErrCodeNoRecipients       = "NO_RECIPIENTS"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInvalidSignature   = "INVALID_SIGNATURE"
)

var errorMessages = map[string]string{
	ErrCodeInternalError:      "Internal server error",
	ErrCodeInvalidRequestBody: "failed to parse request body",
	ErrCodeValidation:         "request validation failed",
	ErrCodeRecipientNotFound:  "recipient not found",
	ErrCodeDuplicateRecipient: "a recipient with this number already exists",
	ErrCodeGroupNotFound:      "group not found",
	ErrCodeDuplicateGroup:     "a group with this name already exists",
	ErrCodeKeywordNotFound:    "keyword not found",
	ErrCodeDuplicateKeyword:   "keyword already exists",
	ErrCodeInvalidKeyword:     "keyword is not valid",
	ErrCodeInboundNotFound:    "message not found",
	ErrCodeInvalidContent:     "message content is not valid",
	ErrCodeNoRecipients:       "no recipients to send to",
	ErrCodeForbidden:          "you do not have access to this resource",
	ErrCodeInvalidSignature:   "invalid webhook signature",
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return errorMessages[ErrCodeInternalError]
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeValidation, ErrCodeInvalidKeyword, ErrCodeInvalidContent, ErrCodeNoRecipients:
		return http.StatusBadRequest
	case ErrCodeInvalidSignature:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeRecipientNotFound, ErrCodeGroupNotFound, ErrCodeKeywordNotFound, ErrCodeInboundNotFound:
		return http.StatusNotFound
	case ErrCodeDuplicateRecipient, ErrCodeDuplicateGroup, ErrCodeDuplicateKeyword:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

const MessageErrorFormat = "The '%s' format is invalid"
