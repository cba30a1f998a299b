package v1

import (
	"fmt"

	"github.com/Behyna/sms-services/campaign/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) ListKeywords(c *fiber.Ctx) error {
	views, err := h.keywords.List(c.UserContext(), c.QueryBool("include_archived"))
	if err != nil {
		return err
	}

	resp := make([]KeywordResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, newKeywordResponse(v))
	}
	return ok(c, "", resp)
}

func (h *Handler) CreateKeyword(c *fiber.Ctx) error {
	var request KeywordRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	view, err := h.keywords.Create(c.UserContext(), keywordCommand(request))
	if err != nil {
		return err
	}

	h.logger.Info("Keyword created via API", zap.Int64("keywordID", view.ID))
	return created(c, "keyword created", newKeywordResponse(*view))
}

func (h *Handler) GetKeyword(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	view, err := h.keywords.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, "", newKeywordResponse(*view))
}

func (h *Handler) UpdateKeyword(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var request KeywordRequest
	if valid, err := h.bind(c, &request); !valid {
		return err
	}

	view, err := h.keywords.Update(c.UserContext(), id, keywordCommand(request))
	if err != nil {
		return err
	}
	return ok(c, "keyword updated", newKeywordResponse(*view))
}

func (h *Handler) ArchiveKeyword(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.keywords.Archive(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, "keyword archived", nil)
}

func (h *Handler) KeywordResponses(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	messages, err := h.keywords.Responses(c.UserContext(), id, c.QueryBool("archived"))
	if err != nil {
		return err
	}
	return ok(c, "", newInboundResponses(messages))
}

func (h *Handler) ArchiveKeywordResponses(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	archived, err := h.keywords.ArchiveResponses(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, "responses archived", ArchiveResponse{Archived: archived})
}

func (h *Handler) ExportKeywordResponses(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	view, err := h.keywords.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Attachment(fmt.Sprintf("%s.csv", view.Keyword.Keyword))
	return h.keywords.ExportCSV(c.UserContext(), id, c.Response().BodyWriter())
}

func keywordCommand(r KeywordRequest) service.KeywordCommand {
	return service.KeywordCommand{
		Keyword:             r.Keyword,
		Description:         r.Description,
		CustomResponse:      r.CustomResponse,
		DeactivatedResponse: r.DeactivatedResponse,
		TooEarlyResponse:    r.TooEarlyResponse,
		ActivateTime:        r.ActivateTime,
		DeactivateTime:      r.DeactivateTime,
		Owners:              r.Owners,
	}
}
