package api

import (
	v1 "github.com/Behyna/sms-services/campaign/internal/api/v1"
	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

const prefixV1 = "/api/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler, gatherer prometheus.Gatherer) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", metrics.Handler(gatherer))
	app.Post("/sms", handler.ReceiveSms)

	app.Get(prefixV1+"keywords", handler.ListKeywords)
	app.Post(prefixV1+"keywords", handler.CreateKeyword)
	app.Get(prefixV1+"keywords/:id", handler.GetKeyword)
	app.Put(prefixV1+"keywords/:id", handler.UpdateKeyword)
	app.Post(prefixV1+"keywords/:id/archive", handler.ArchiveKeyword)
	app.Get(prefixV1+"keywords/:id/responses", handler.KeywordResponses)
	app.Post(prefixV1+"keywords/:id/responses/archive", handler.ArchiveKeywordResponses)
	app.Get(prefixV1+"keywords/:id/responses/csv", handler.ExportKeywordResponses)
	app.Get(prefixV1+"keywords/:id/wall", handler.KeywordWall)

	app.Get(prefixV1+"recipients", handler.ListRecipients)
	app.Post(prefixV1+"recipients", handler.CreateRecipient)
	app.Get(prefixV1+"recipients/:id", handler.GetRecipient)
	app.Put(prefixV1+"recipients/:id", handler.UpdateRecipient)
	app.Post(prefixV1+"recipients/:id/archive", handler.ArchiveRecipient)
	app.Get(prefixV1+"recipients/:id/messages", handler.RecipientMessages)

	app.Get(prefixV1+"groups", handler.ListGroups)
	app.Post(prefixV1+"groups", handler.CreateGroup)
	app.Get(prefixV1+"groups/:id", handler.GetGroup)
	app.Put(prefixV1+"groups/:id", handler.UpdateGroup)
	app.Post(prefixV1+"groups/:id/archive", handler.ArchiveGroup)
	app.Post(prefixV1+"groups/:id/members", handler.AddGroupMembers)
	app.Delete(prefixV1+"groups/:id/members", handler.RemoveGroupMembers)

	app.Post(prefixV1+"send/adhoc", handler.SendAdhoc)
	app.Post(prefixV1+"send/group", handler.SendGroup)

	app.Get(prefixV1+"inbound", handler.ListInbound)
	app.Get(prefixV1+"inbound/:id", handler.GetInbound)
	app.Patch(prefixV1+"inbound/:id", handler.UpdateInboundFlags)
	app.Post(prefixV1+"inbound/:id/reimport", handler.ReimportInbound)
	app.Get(prefixV1+"outbound", handler.ListOutbound)
	app.Get(prefixV1+"wall", handler.Wall)

	app.Get(prefixV1+"site-config", handler.GetSiteConfig)
	app.Put(prefixV1+"site-config", handler.UpdateSiteConfig)
	app.Get(prefixV1+"default-responses", handler.GetDefaultResponses)
	app.Put(prefixV1+"default-responses", handler.UpdateDefaultResponses)
}
