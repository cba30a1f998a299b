package v1

import (
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetSiteConfig(c *fiber.Ctx) error {
	cfg, err := h.siteConfig.GetSiteConfiguration(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, "", newSiteConfigResponse(*cfg))
}

func (h *Handler) UpdateSiteConfig(c *fiber.Ctx) error {
	var request SiteConfigRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	cfg, err := h.siteConfig.UpdateSiteConfiguration(c.UserContext(), service.SiteConfigCommand{
		SiteName:          request.SiteName,
		SmsCharLimit:      request.SmsCharLimit,
		DisableAllReplies: request.DisableAllReplies,
		OfficeEmail:       request.OfficeEmail,
		SlackWebhook:      request.SlackWebhook,
		SendingCost:       request.SendingCost,
	})
	if err != nil {
		return err
	}
	return ok(c, "site configuration updated", newSiteConfigResponse(*cfg))
}

func (h *Handler) GetDefaultResponses(c *fiber.Ctx) error {
	responses, err := h.siteConfig.GetDefaultResponses(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, "", newDefaultResponsesResponse(*responses))
}

func (h *Handler) UpdateDefaultResponses(c *fiber.Ctx) error {
	var request DefaultResponsesRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	responses, err := h.siteConfig.UpdateDefaultResponses(c.UserContext(), service.DefaultResponsesCommand{
		DefaultNoKeywordAutoReply: request.DefaultNoKeywordAutoReply,
		DefaultNoKeywordNotLive:   request.DefaultNoKeywordNotLive,
		KeywordNoMatch:            request.KeywordNoMatch,
		StartReply:                request.StartReply,
		NameUpdateReply:           request.NameUpdateReply,
		NameFailureReply:          request.NameFailureReply,
		AutoNameRequest:           request.AutoNameRequest,
	})
	if err != nil {
		return err
	}
	return ok(c, "default responses updated", newDefaultResponsesResponse(*responses))
}
