package repositories

import (
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/resource"
)

// GraphRepository opens a resource graph for the connection described by
// the settings. Every graph it returns owns a fresh connection, so nothing
// cached by one command leaks into another.
type GraphRepository interface {
	Open(settings *entities.Settings) (*resource.Graph, error)
}
