package controllers

import (
	"github.com/spf13/pflag"
	"go.uber.org/dig"

	"github.com/rios0rios0/hubgraph/internal/domain/entities"
)

// FlagBinder is implemented by controllers that own subcommand flags.
type FlagBinder interface {
	AddFlags(flags *pflag.FlagSet)
}

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	for _, constructor := range []any{
		NewUserController,
		NewReposController,
		NewCollaboratorsController,
		NewCommitsController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	userController *UserController,
	reposController *ReposController,
	collaboratorsController *CollaboratorsController,
	commitsController *CommitsController,
) *[]entities.Controller {
	return &[]entities.Controller{
		userController,
		reposController,
		collaboratorsController,
		commitsController,
	}
}
