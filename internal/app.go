package internal

import (
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
)

// AppInternal holds everything the CLI entry point needs from the container.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns every subcommand controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
