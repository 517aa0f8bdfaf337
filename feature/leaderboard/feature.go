package leaderboard

import (
	"collector-stats/core/archive"
	"collector-stats/core/cache"
	"collector-stats/core/rowstore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new leaderboard feature.
func NewFeature(client rowstore.Client, cacheSvc *cache.Service, archiver *archive.Archiver, logger *zap.Logger) *Feature {
	svc := NewService(client, cacheSvc, archiver, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the underlying service so other features can join against
// the ranked analytics.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "leaderboard"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
