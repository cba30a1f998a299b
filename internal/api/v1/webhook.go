package v1

import (
	"errors"
	"time"

	"github.com/Behyna/sms-services/campaign/internal/constants"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/Behyna/sms-services/campaign/pkg/smsprovider"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	signatureHeader = "X-Twilio-Signature"
	emptyTwiML      = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`
)

var errInvalidSignature = errors.New("request signature does not match")

// ReceiveSms handles the provider's inbound webhook. Once the request is
// authenticated it always answers 200 with TwiML, carrying the reply when
// one should be sent.
func (h *Handler) ReceiveSms(c *fiber.Ctx) error {
	if h.verifySig && !h.validSignature(c) {
		h.logger.Warn("Rejected inbound webhook with invalid signature", zap.String("ip", c.IP()))
		return service.NewServiceError(constants.ErrCodeInvalidSignature, errInvalidSignature)
	}

	var request InboundSmsRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse inbound webhook", zap.Error(err))
		return h.twiml(c, "")
	}

	result, err := h.inbound.HandleInbound(c.UserContext(), service.InboundCommand{
		Sid:        request.MessageSid,
		From:       request.From,
		Body:       request.Body,
		ReceivedAt: time.Now(),
	})
	if err != nil {
		h.logger.Error("Failed to handle inbound message",
			zap.String("sid", request.MessageSid),
			zap.String("from", request.From),
			zap.Error(err))
		return h.twiml(c, "")
	}

	reply := ""
	if result.Send {
		reply = result.Reply
	}
	return h.twiml(c, reply)
}

func (h *Handler) validSignature(c *fiber.Ctx) bool {
	params := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})
	return h.signatures.Valid(h.publicURL+c.OriginalURL(), params, c.Get(signatureHeader))
}

func (h *Handler) twiml(c *fiber.Ctx, reply string) error {
	body, err := smsprovider.TwiMLReply(reply)
	if err != nil {
		h.logger.Error("Failed to render TwiML reply", zap.Error(err))
		body = emptyTwiML
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextXMLCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(body)
}
