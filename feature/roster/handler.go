package roster

import (
	"errors"

	"collector-stats/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the roster feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the roster routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/roster")
	group.Get("/", h.HandleGetRoster)
	group.Get("/:name", h.HandleGetCollector)
}

// HandleGetRoster returns all roster entries.
// @Summary Get Roster
// @Description Get the collector roster with rig assignments.
// @Tags roster
// @Produce json
// @Success 200 {array} Entry "Roster entries"
// @Failure 502 {object} map[string]string "Upstream row store failed"
// @Router /roster [get]
func (h *Handler) HandleGetRoster(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	entries, err := h.service.Roster(c.Context())
	if err != nil {
		l.Error("Roster load failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(entries)
}

// HandleGetCollector returns one collector's profile and reconciled stats.
// @Summary Get Collector Detail
// @Description Get a collector's roster profile joined with reconciled stats.
// @Tags roster
// @Produce json
// @Param name path string true "Canonical collector name"
// @Success 200 {object} CollectorDetail "Collector detail"
// @Failure 404 {object} map[string]string "Unknown collector"
// @Failure 502 {object} map[string]string "Upstream row store failed"
// @Router /roster/{name} [get]
func (h *Handler) HandleGetCollector(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	detail, err := h.service.Collector(c.Context(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": ErrNotFound.Error(),
			})
		}
		l.Error("Collector detail failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(detail)
}
