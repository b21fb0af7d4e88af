package driving

import (
	"github.com/custodia-labs/authdocs-cli/internal/core/domain"
)

// RegistryService provides the static Better Auth reference tables.
type RegistryService interface {
	// Providers returns all known social providers.
	Providers() []domain.Provider

	// Provider returns one provider by ID.
	// Returns domain.ErrNotFound for unknown IDs.
	Provider(id string) (*domain.Provider, error)

	// Adapters returns all known database adapters.
	Adapters() []domain.Adapter

	// Plugins returns all known plugins.
	Plugins() []domain.Plugin

	// Plugin returns one plugin by ID.
	// Returns domain.ErrNotFound for unknown IDs.
	Plugin(id string) (*domain.Plugin, error)
}
