package catalog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates the catalog feature. It is disabled without a service,
// which happens when the guide database is unreachable at startup.
func NewFeature(svc *Service, logger *zap.Logger, timeout time.Duration) *Feature {
	if svc == nil {
		return &Feature{}
	}
	return &Feature{handler: NewHandler(svc, logger, timeout), enabled: true}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
