package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []any{
		NewShowUserCommand,
		NewListReposCommand,
		NewSyncCollaboratorsCommand,
		NewListCommitsCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ShowUserCommand) ShowUser { return impl }); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ListReposCommand) ListRepos { return impl }); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SyncCollaboratorsCommand) SyncCollaborators { return impl }); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ListCommitsCommand) ListCommits { return impl }); err != nil {
		return err
	}

	return nil
}
