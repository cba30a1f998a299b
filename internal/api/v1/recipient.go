package v1

import (
	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/gofiber/fiber/v2"
)

const defaultPageSize = 50

func (h *Handler) ListRecipients(c *fiber.Ctx) error {
	recipients, err := h.recipients.List(c.UserContext(), c.QueryBool("include_archived"),
		c.QueryInt("limit", defaultPageSize), c.QueryInt("offset"))
	if err != nil {
		return err
	}
	return ok(c, "", newRecipientResponses(recipients))
}

func (h *Handler) CreateRecipient(c *fiber.Ctx) error {
	var request RecipientRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	r, err := h.recipients.Create(c.UserContext(), recipientCommand(request))
	if err != nil {
		return err
	}
	return created(c, "recipient created", newRecipientResponse(*r))
}

func (h *Handler) GetRecipient(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	r, err := h.recipients.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, "", newRecipientResponse(*r))
}

func (h *Handler) UpdateRecipient(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request RecipientRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	r, err := h.recipients.Update(c.UserContext(), id, recipientCommand(request))
	if err != nil {
		return err
	}
	return ok(c, "recipient updated", newRecipientResponse(*r))
}

func (h *Handler) ArchiveRecipient(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.recipients.Archive(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, "recipient archived", nil)
}

func (h *Handler) RecipientMessages(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	messages, err := h.recipients.RecentMessages(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, "", newInboundResponses(messages))
}

func recipientCommand(r RecipientRequest) service.RecipientCommand {
	return service.RecipientCommand{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Number:     r.Number,
		IsBlocking: r.IsBlocking,
	}
}
