package loader

import (
	"fmt"

	"htmx-greeter/core/router"

	"go.uber.org/zap"
)

// Feature is a self-contained module that contributes routes.
type Feature interface {
	Name() string
	IsEnabled() bool
	Load(routes *router.Table) error
}

// Manager holds the registered features.
type Manager struct {
	features []Feature
	logger   *zap.Logger
}

// NewManager creates a new feature manager.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// Register adds a feature. Features load in registration order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Features returns the registered features.
func (m *Manager) Features() []Feature {
	out := make([]Feature, len(m.features))
	copy(out, m.features)
	return out
}

// LoadAll loads every enabled feature into routes and stops at the first error.
func (m *Manager) LoadAll(routes *router.Table) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.logger.Info("Feature disabled", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(routes); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
		m.logger.Debug("Feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}
