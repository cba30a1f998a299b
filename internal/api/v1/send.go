package v1

import (
	"github.com/Behyna/sms-services/campaign/internal/api/contract"
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) SendAdhoc(c *fiber.Ctx) error {
	var request SendAdhocRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	result, err := h.outgoing.SendAdhoc(c.UserContext(), service.SendAdhocCommand{
		RecipientIDs:  request.RecipientIDs,
		Content:       request.Content,
		ScheduledTime: request.ScheduledTime,
		SentBy:        sentBy(request.SentBy),
	})
	if err != nil {
		return err
	}

	h.logger.Info("Ad-hoc send accepted",
		zap.Int("queued", result.Queued),
		zap.Int("skipped", result.Skipped))
	return c.Status(fiber.StatusAccepted).JSON(sendResponse(result))
}

func (h *Handler) SendGroup(c *fiber.Ctx) error {
	var request SendGroupRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	result, err := h.outgoing.SendGroup(c.UserContext(), service.SendGroupCommand{
		GroupID:       request.GroupID,
		Content:       request.Content,
		ScheduledTime: request.ScheduledTime,
		SentBy:        sentBy(request.SentBy),
	})
	if err != nil {
		return err
	}

	h.logger.Info("Group send accepted",
		zap.Int64("groupID", request.GroupID),
		zap.Int("queued", result.Queued),
		zap.Int("skipped", result.Skipped))
	return c.Status(fiber.StatusAccepted).JSON(sendResponse(result))
}

func sendResponse(result service.SendResult) contract.Response {
	return contract.Success("messages queued", SendResponse{Queued: result.Queued, Skipped: result.Skipped})
}

func sentBy(s string) string {
	if s == "" {
		return defaultSentBy
	}
	return s
}
