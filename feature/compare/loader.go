package compare

import (
	"msforge/core/diff"
	"msforge/core/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new compare feature. db and m may be nil.
func NewFeature(snapshots Snapshots, db *gorm.DB, defaults diff.Config, m *metrics.Metrics, logger *zap.Logger) *Feature {
	svc := NewService(snapshots, db, defaults, m, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "compare"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.snapshots != nil
}

// Load migrates the report table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
