// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/internal/domain/repositories"
	"github.com/rios0rios0/hubgraph/resource"
)

// StubGraphRepository implements repositories.GraphRepository by handing out
// graphs over a fixed client (usually a clientdoubles.SpyClient).
type StubGraphRepository struct {
	Client  resource.Client
	OpenErr error

	// spy: settings received by Open
	OpenCallCount int
	LastSettings  *entities.Settings
}

var _ repositories.GraphRepository = (*StubGraphRepository)(nil)

// NewStubGraphRepository returns a stub opening graphs over client.
func NewStubGraphRepository(client resource.Client) *StubGraphRepository {
	return &StubGraphRepository{Client: client}
}

func (s *StubGraphRepository) Open(settings *entities.Settings) (*resource.Graph, error) {
	s.OpenCallCount++
	s.LastSettings = settings
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	return resource.NewGraph(s.Client), nil
}
