package assets

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes the storage adapter over HTTP.
type Feature struct {
	handler *Handler
}

// NewFeature creates the assets feature.
func NewFeature(store Adapter, logger *zap.Logger, imagesPath string) *Feature {
	return &Feature{handler: NewHandler(NewService(store, logger), imagesPath)}
}

func (f *Feature) Name() string {
	return "assets"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
