package v1

import (
	"errors"

	"github.com/Behyna/sms-services/campaign/internal/api/contract"
	"github.com/Behyna/sms-services/campaign/internal/api/validator"
	"github.com/Behyna/sms-services/campaign/internal/config"
	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/Behyna/sms-services/campaign/pkg/smsprovider"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultSentBy = "api"

var errInvalidID = errors.New("id must be a positive integer")

type Handler struct {
	logger     *zap.Logger
	XValidator validator.IXValidator
	metrics    *metrics.Metrics
	signatures *smsprovider.SignatureValidator
	publicURL  string
	verifySig  bool

	inbound    service.InboundService
	keywords   service.KeywordService
	recipients service.RecipientService
	groups     service.GroupService
	outgoing   service.OutgoingService
	logs       service.LogService
	siteConfig service.SiteConfigService
}

func NewHandler(logger *zap.Logger, cfg *config.Config, XValidator validator.IXValidator, metrics *metrics.Metrics,
	inbound service.InboundService, keywords service.KeywordService, recipients service.RecipientService,
	groups service.GroupService, outgoing service.OutgoingService, logs service.LogService,
	siteConfig service.SiteConfigService) *Handler {
	return &Handler{
		logger:     logger,
		XValidator: XValidator,
		metrics:    metrics,
		signatures: smsprovider.NewSignatureValidator(cfg.Twilio.AuthToken),
		publicURL:  cfg.API.PublicURL,
		verifySig:  cfg.API.ValidateWebhook,
		inbound:    inbound,
		keywords:   keywords,
		recipients: recipients,
		groups:     groups,
		outgoing:   outgoing,
		logs:       logs,
		siteConfig: siteConfig,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// bind parses and validates the body into req. It reports false after
// writing the rejection response.
func (h *Handler) bind(c *fiber.Ctx, req any) (bool, error) {
	responseError := h.XValidator.Validator(req, constants.MessageErrorFormat, c)
	if responseError.Code == "" {
		return true, nil
	}

	h.logger.Warn("Request validation failed",
		zap.String("path", c.Path()),
		zap.String("message", responseError.Message))
	return false, c.JSON(responseError)
}

func idParam(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, service.NewServiceError(constants.ErrCodeValidation, errInvalidID)
	}
	return int64(id), nil
}

func archivedQuery(c *fiber.Ctx) *bool {
	if c.Query("archived") == "" {
		return nil
	}
	archived := c.QueryBool("archived")
	return &archived
}

func ok(c *fiber.Ctx, message string, result any) error {
	return c.JSON(contract.Success(message, result))
}

func created(c *fiber.Ctx, message string, result any) error {
	return c.Status(fiber.StatusCreated).JSON(contract.Success(message, result))
}
