package greeting

import (
	"io/fs"

	"htmx-greeter/core/router"

	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature parses the templates in fsys and creates the greeting feature.
func NewFeature(fsys fs.FS, logger *zap.Logger) (*Feature, error) {
	r, err := NewRenderer(fsys)
	if err != nil {
		return nil, err
	}
	return &Feature{handler: NewHandler(r, logger)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "greeting"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load records the feature's routes.
func (f *Feature) Load(routes *router.Table) error {
	f.handler.RegisterRoutes(routes)
	return nil
}
