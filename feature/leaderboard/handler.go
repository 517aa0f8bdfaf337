package leaderboard

import (
	"collector-stats/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the leaderboard feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the leaderboard routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/leaderboard", h.HandleGetLeaderboard)
	app.Get("/leaderboard/snapshots", h.HandleGetSnapshots)
	app.Get("/dashboard", h.HandleGetDashboard)
	app.Post("/cache/clear", h.HandleClearCache)
}

// HandleGetLeaderboard returns the ranked collector entries.
// @Summary Get Leaderboard
// @Description Get collectors ranked by reconciled hours logged.
// @Tags leaderboard
// @Produce json
// @Success 200 {array} reconcile.LeaderboardEntry "Ranked entries"
// @Failure 502 {object} map[string]string "Upstream row store failed"
// @Router /leaderboard [get]
func (h *Handler) HandleGetLeaderboard(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	entries, err := h.service.Leaderboard(c.Context())
	if err != nil {
		l.Error("Leaderboard build failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(entries)
}

// HandleGetSnapshots lists archived leaderboard snapshots.
// @Summary List Snapshots
// @Description List archived leaderboard snapshot object names, oldest first.
// @Tags leaderboard
// @Produce json
// @Success 200 {array} string "Snapshot object names"
// @Failure 500 {object} map[string]string "Archive listing failed"
// @Router /leaderboard/snapshots [get]
func (h *Handler) HandleGetSnapshots(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.Snapshots(c.Context())
	if err != nil {
		l.Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(names)
}

// HandleGetDashboard returns the aggregate totals summary.
// @Summary Get Dashboard
// @Description Get aggregate totals across all collectors.
// @Tags leaderboard
// @Produce json
// @Success 200 {object} DashboardSummary "Aggregate totals"
// @Failure 502 {object} map[string]string "Upstream row store failed"
// @Router /dashboard [get]
func (h *Handler) HandleGetDashboard(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Dashboard(c.Context())
	if err != nil {
		l.Error("Dashboard build failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}

// HandleClearCache wipes both cache tiers.
// @Summary Clear Cache
// @Description Force-refresh: wipe the memory and durable cache tiers.
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]bool "Cleared"
// @Router /cache/clear [post]
func (h *Handler) HandleClearCache(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	h.service.ClearCache(c.Context())
	l.Info("Cache cleared")

	return c.JSON(fiber.Map{"success": true})
}
