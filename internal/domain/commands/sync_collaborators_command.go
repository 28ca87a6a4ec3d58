package commands

import (
	"context"
	"fmt"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/internal/domain/repositories"
)

// SyncCollaborators is the interface for the collaborators command.
type SyncCollaborators interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts SyncCollaboratorsOptions,
	) (*entities.CollaboratorChange, error)
}

// SyncCollaboratorsOptions names the repository and the desired collaborators.
type SyncCollaboratorsOptions struct {
	// Repo is a repository of the authenticated user.
	Repo   string
	Logins []string
	DryRun bool
}

// SyncCollaboratorsCommand makes a repository's collaborators equal a list.
type SyncCollaboratorsCommand struct {
	graphs repositories.GraphRepository
}

// NewSyncCollaboratorsCommand creates a new SyncCollaboratorsCommand.
func NewSyncCollaboratorsCommand(graphs repositories.GraphRepository) *SyncCollaboratorsCommand {
	return &SyncCollaboratorsCommand{graphs: graphs}
}

// Execute applies the change, or only reports it when DryRun is set.
func (it *SyncCollaboratorsCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts SyncCollaboratorsOptions,
) (*entities.CollaboratorChange, error) {
	graph, err := it.graphs.Open(settings)
	if err != nil {
		return nil, err
	}
	repo := graph.Repo(graph.Client().Login(), opts.Repo)

	current, err := repo.Collaborators(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read collaborators of %q: %w", opts.Repo, err)
	}
	change := &entities.CollaboratorChange{
		Repo:    opts.Repo,
		Removed: missingFrom(current, opts.Logins),
		Added:   missingFrom(opts.Logins, current),
		DryRun:  opts.DryRun,
	}

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would remove %d and add %d collaborators on %s",
			len(change.Removed), len(change.Added), opts.Repo)
		return change, nil
	}

	if err = repo.SetCollaborators(ctx, opts.Logins); err != nil {
		return nil, fmt.Errorf("failed to update collaborators of %q: %w", opts.Repo, err)
	}
	logger.Infof("Removed %d and added %d collaborators on %s", len(change.Removed), len(change.Added), opts.Repo)
	return change, nil
}

// missingFrom returns the distinct values of a that b does not contain.
func missingFrom(a, b []string) []string {
	out := []string{}
	for _, value := range a {
		if !slices.Contains(b, value) && !slices.Contains(out, value) {
			out = append(out, value)
		}
	}
	return out
}
