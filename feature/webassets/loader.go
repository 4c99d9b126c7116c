package webassets

import (
	"htmx-greeter/core/assets"
	"htmx-greeter/core/router"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the asset feature from the root and static stores.
func NewFeature(root, static *assets.Store) (*Feature, error) {
	h, err := NewHandler(root, static)
	if err != nil {
		return nil, err
	}
	return &Feature{handler: h}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "webassets"
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
