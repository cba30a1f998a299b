package validator

import (
	"fmt"
	"strings"

	"github.com/Behyna/sms-services/campaign/internal/api/contract"
	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const sep = " and "

type Error struct {
	Error       bool
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	// Validator parses the request body into data and validates it. A
	// non-empty Code in the returned response means the request was rejected
	// and the status has already been set on c.
	Validator(data any, message string, c *fiber.Ctx) contract.Response
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(metrics *metrics.Metrics) (IXValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	for key, function := range valid {
		if err := v.RegisterValidation(key, function); err != nil {
			return nil, fmt.Errorf("register %s validation: %w", key, err)
		}
	}

	return &XValidator{validator: v, metrics: metrics}, nil
}

func (x XValidator) Validator(data any, message string, c *fiber.Ctx) contract.Response {
	if err := c.BodyParser(data); err != nil {
		c.Status(constants.GetHTTPStatus(constants.ErrCodeInvalidRequestBody))
		return contract.Response{
			Code:    constants.ErrCodeInvalidRequestBody,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		}
	}

	errs := x.Validate(data)
	if len(errs) == 0 {
		return contract.Response{}
	}

	errMsgs := make([]string, 0, len(errs))
	for _, err := range errs {
		errMsgs = append(errMsgs, fmt.Sprintf(message, err.FailedField))

		if x.metrics != nil {
			x.metrics.RecordValidationError(err.FailedField, err.Tag)
		}
	}

	c.Status(constants.GetHTTPStatus(constants.ErrCodeValidation))
	return contract.Response{
		Code:    constants.ErrCodeValidation,
		Message: strings.Join(errMsgs, sep),
	}
}

func (x XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs == nil {
		return nil
	}

	fieldErrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return []Error{{Error: true, FailedField: "request", Tag: "invalid"}}
	}

	for _, err := range fieldErrs {
		validationErrors = append(validationErrors, Error{
			Error:       true,
			FailedField: err.Field(),
			Tag:         err.Tag(),
			Value:       err.Value(),
		})
	}
	return validationErrors
}
