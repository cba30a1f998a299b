package v1

import (
	"context"

	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListGroups(c *fiber.Ctx) error {
	views, err := h.groups.List(c.UserContext(), c.QueryBool("include_archived"))
	if err != nil {
		return err
	}

	resp := make([]GroupResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, newGroupResponse(v))
	}
	return ok(c, "", resp)
}

func (h *Handler) CreateGroup(c *fiber.Ctx) error {
	var request GroupRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	view, err := h.groups.Create(c.UserContext(), service.GroupCommand{Name: request.Name, Description: request.Description})
	if err != nil {
		return err
	}
	return created(c, "group created", newGroupResponse(*view))
}

func (h *Handler) GetGroup(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	view, err := h.groups.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, "", newGroupResponse(*view))
}

func (h *Handler) UpdateGroup(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request GroupRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	view, err := h.groups.Update(c.UserContext(), id, service.GroupCommand{Name: request.Name, Description: request.Description})
	if err != nil {
		return err
	}
	return ok(c, "group updated", newGroupResponse(*view))
}

func (h *Handler) ArchiveGroup(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.groups.Archive(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, "group archived", nil)
}

func (h *Handler) AddGroupMembers(c *fiber.Ctx) error {
	return h.changeMembers(c, h.groups.AddMembers)
}

func (h *Handler) RemoveGroupMembers(c *fiber.Ctx) error {
	return h.changeMembers(c, h.groups.RemoveMembers)
}

func (h *Handler) changeMembers(c *fiber.Ctx,
	apply func(ctx context.Context, id int64, recipientIDs []int64) (*service.GroupView, error)) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request GroupMembersRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	view, err := apply(c.UserContext(), id, request.RecipientIDs)
	if err != nil {
		return err
	}
	return ok(c, "group members updated", newGroupResponse(*view))
}
