package v1

import (
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListInbound(c *fiber.Ctx) error {
	messages, err := h.logs.ListInbound(c.UserContext(), service.ListInboundQuery{
		Keyword:  c.Query("keyword"),
		Archived: archivedQuery(c),
		Limit:    c.QueryInt("limit", defaultPageSize),
		Offset:   c.QueryInt("offset"),
	})
	if err != nil {
		return err
	}
	return ok(c, "", newInboundResponses(messages))
}

func (h *Handler) GetInbound(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	sms, err := h.logs.GetInbound(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, "", newInboundResponse(*sms))
}

func (h *Handler) UpdateInboundFlags(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request InboundFlagsRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	sms, err := h.logs.UpdateFlags(c.UserContext(), id, service.InboundFlagsCommand{
		IsArchived:    request.IsArchived,
		DealtWith:     request.DealtWith,
		DisplayOnWall: request.DisplayOnWall,
	})
	if err != nil {
		return err
	}
	return ok(c, "message updated", newInboundResponse(*sms))
}

func (h *Handler) ReimportInbound(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	sms, err := h.logs.Reimport(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, "message reimported", newInboundResponse(*sms))
}

func (h *Handler) ListOutbound(c *fiber.Ctx) error {
	messages, err := h.logs.ListOutbound(c.UserContext(), c.QueryInt("limit", defaultPageSize), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return ok(c, "", newOutboundResponses(messages))
}

func (h *Handler) KeywordWall(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	messages, err := h.logs.KeywordWall(c.UserContext(), id, c.QueryBool("only_live"))
	if err != nil {
		return err
	}
	return ok(c, "", newInboundResponses(messages))
}

func (h *Handler) Wall(c *fiber.Ctx) error {
	messages, err := h.logs.Wall(c.UserContext(), c.QueryBool("only_live"))
	if err != nil {
		return err
	}
	return ok(c, "", newInboundResponses(messages))
}
