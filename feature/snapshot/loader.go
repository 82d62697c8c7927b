package snapshot

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface. It is disabled when no
// database is configured.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the snapshot feature. service may be nil.
func NewFeature(service *Service) *Feature {
	f := &Feature{service: service}
	if service != nil {
		f.handler = NewHandler(service)
	}
	return f
}

func (f *Feature) Name() string {
	return "snapshots"
}

func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
