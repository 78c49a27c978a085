package ports

import "go.trai.ch/kiln/internal/core/domain"

// ConfigLoader defines the interface for loading project settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers kiln.yaml from cwd upwards and returns the resolved settings.
	// A missing file yields defaults rooted at cwd.
	Load(cwd string) (domain.Settings, error)
}
