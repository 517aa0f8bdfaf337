package tasks

import (
	"collector-stats/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the tasks feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the tasks routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tasks")
	group.Get("/", h.HandleGetCatalog)
	group.Get("/requirements", h.HandleGetRequirements)
}

// HandleGetCatalog returns the task catalog.
// @Summary Get Task Catalog
// @Description Get the catalog of field tasks.
// @Tags tasks
// @Produce json
// @Success 200 {array} Task "Catalog rows"
// @Failure 502 {object} map[string]string "Upstream row store failed"
// @Router /tasks [get]
func (h *Handler) HandleGetCatalog(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	catalog, err := h.service.Catalog(c.Context())
	if err != nil {
		l.Error("Task catalog load failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(catalog)
}

// HandleGetRequirements returns the per-task quota rows.
// @Summary Get Task Requirements
// @Description Get the per-task quota requirements.
// @Tags tasks
// @Produce json
// @Success 200 {array} Requirement "Requirement rows"
// @Failure 502 {object} map[string]string "Upstream row store failed"
// @Router /tasks/requirements [get]
func (h *Handler) HandleGetRequirements(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	reqs, err := h.service.Requirements(c.Context())
	if err != nil {
		l.Error("Task requirements load failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(reqs)
}
