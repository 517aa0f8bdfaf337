package worklog

import (
	"errors"

	"collector-stats/core/logger"
	"collector-stats/core/rowstore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the worklog feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the worklog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/worklogs", h.HandleAppend)
}

// HandleAppend appends one work-log row.
// @Summary Append Work Log
// @Description Append one work-log row to the authoritative store.
// @Tags worklog
// @Accept json
// @Produce json
// @Param entry body Entry true "Work log row"
// @Success 201 {object} map[string]string "Acknowledgement"
// @Failure 400 {object} map[string]string "Invalid entry"
// @Failure 422 {object} map[string]string "Store rejected the row"
// @Failure 502 {object} map[string]string "Upstream row store failed"
// @Router /worklogs [post]
func (h *Handler) HandleAppend(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var entry Entry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	message, err := h.service.Append(c.Context(), entry)
	if err != nil {
		if errors.Is(err, ErrInvalidEntry) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		var apiErr *rowstore.APIError
		if errors.As(err, &apiErr) {
			// The store understood the request and said no; not a gateway fault.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": apiErr.Message,
			})
		}
		l.Error("Work log append failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
	})
}
