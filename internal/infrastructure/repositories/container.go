package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/hubgraph/internal/domain/repositories"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewTransportGraphRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *TransportGraphRepository) domainRepos.GraphRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
