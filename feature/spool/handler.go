package spool

import (
	"errors"

	"spoolq/core/logger"
	"spoolq/core/uucp"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for site queues.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the spool routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sites")
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleSummary)
	group.Get("/:name/queue", h.HandleQueue)
	group.Post("/:name/scan", h.HandleScan)
	group.Post("/:name/queue/:qid/mark", h.HandleMark)
}

// HandleList returns the summary of every configured site.
// @Summary List Sites
// @Description Returns the current summary of every configured site without scanning.
// @Tags sites
// @Produce json
// @Success 200 {array} spool.SiteSummary "Site Summaries"
// @Security ApiKeyAuth
// @Router /sites [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.Summaries())
}

// HandleSummary returns the summary of one site.
// @Summary Get Site Summary
// @Tags sites
// @Produce json
// @Param name path string true "Site name"
// @Success 200 {object} spool.SiteSummary "Site Summary"
// @Failure 404 {object} map[string]string "Unknown Site"
// @Security ApiKeyAuth
// @Router /sites/{name} [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	sum, err := h.service.Summary(c.Params("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sum)
}

// HandleQueue returns the entities of one site.
// @Summary List Site Queue
// @Description Returns every entity of the site's queue, sorted by qid.
// @Tags sites
// @Produce json
// @Param name path string true "Site name"
// @Success 200 {object} map[string]interface{} "Site and Entities"
// @Failure 404 {object} map[string]string "Unknown Site"
// @Security ApiKeyAuth
// @Router /sites/{name}/queue [get]
func (h *Handler) HandleQueue(c *fiber.Ctx) error {
	entities, err := h.service.Entities(c.Params("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"site": c.Params("name"), "entities": entities})
}

// HandleScan scans one site and returns its summary.
// @Summary Scan Site
// @Description Reconciles the site's queue against its spool directory. The first scan is a full rebuild, later scans are incremental.
// @Tags sites
// @Produce json
// @Param name path string true "Site name"
// @Success 200 {object} spool.SiteSummary "Site Summary"
// @Failure 404 {object} map[string]string "Unknown Site"
// @Failure 500 {object} map[string]string "Scan Failed"
// @Security ApiKeyAuth
// @Router /sites/{name}/scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")
	l.Info("Triggering site scan", zap.String("site", name))

	sum, err := h.service.Scan(c.UserContext(), name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sum)
}

// HandleMark flags one batch as processed.
// @Summary Mark Batch
// @Description Flags a mail or news batch as processed. The mark survives incremental scans while the batch is unchanged.
// @Tags sites
// @Produce json
// @Param name path string true "Site name"
// @Param qid path string true "Queue ID"
// @Success 200 {object} spool.EntityView "Marked Entity"
// @Failure 404 {object} map[string]string "Unknown Site or QID"
// @Failure 409 {object} map[string]string "Entity Not Markable"
// @Security ApiKeyAuth
// @Router /sites/{name}/queue/{qid}/mark [post]
func (h *Handler) HandleMark(c *fiber.Ctx) error {
	view, err := h.service.Mark(c.Params("name"), c.Params("qid"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(view)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUnknownSite), errors.Is(err, uucp.ErrUnknownQID):
		status = fiber.StatusNotFound
	case errors.Is(err, uucp.ErrNotMarkable):
		status = fiber.StatusConflict
	default:
		logger.WithRayID(h.service.logger, c).Error("Request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
