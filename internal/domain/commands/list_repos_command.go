package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/internal/domain/repositories"
	"github.com/rios0rios0/hubgraph/resource"
)

// ListRepos is the interface for the repos command.
type ListRepos interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ListReposOptions) ([]entities.RepoSummary, error)
}

// ListReposOptions selects whose repositories are listed.
type ListReposOptions struct {
	// Login defaults to the authenticated user.
	Login   string
	Watched bool
}

// ListReposCommand lists a user's own or watched repositories.
type ListReposCommand struct {
	graphs repositories.GraphRepository
}

// NewListReposCommand creates a new ListReposCommand.
func NewListReposCommand(graphs repositories.GraphRepository) *ListReposCommand {
	return &ListReposCommand{graphs: graphs}
}

// Execute lists the repositories. Every field comes from the listing itself;
// no repository is loaded individually.
func (it *ListReposCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ListReposOptions,
) ([]entities.RepoSummary, error) {
	graph, err := it.graphs.Open(settings)
	if err != nil {
		return nil, err
	}
	login := opts.Login
	if login == "" {
		login = graph.Client().Login()
	}
	user := graph.User(login)

	var repos []*resource.Repo
	if opts.Watched {
		repos, err = user.WatchedRepos(ctx)
	} else {
		repos, err = user.Repos(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories of %q: %w", login, err)
	}

	summaries := make([]entities.RepoSummary, 0, len(repos))
	for _, repo := range repos {
		summary, summaryErr := summarizeRepo(ctx, repo)
		if summaryErr != nil {
			return nil, fmt.Errorf("failed to read repository %q: %w", repo.Name(), summaryErr)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func summarizeRepo(ctx context.Context, repo *resource.Repo) (entities.RepoSummary, error) {
	forgeRepo, err := repo.ForgeRepository()
	if err != nil {
		return entities.RepoSummary{}, err
	}
	summary := entities.RepoSummary{Repository: forgeRepo}

	description, err := repo.Description(ctx)
	if err != nil {
		return summary, err
	}
	summary.Description = deref(description)

	watchers, err := repo.Watchers(ctx)
	if err != nil {
		return summary, err
	}
	summary.Watchers = deref(watchers)

	forks, err := repo.Forks(ctx)
	if err != nil {
		return summary, err
	}
	summary.Forks = deref(forks)

	private, err := repo.Private(ctx)
	if err != nil {
		return summary, err
	}
	summary.Private = deref(private)

	fork, err := repo.Fork(ctx)
	if err != nil {
		return summary, err
	}
	summary.Fork = deref(fork)

	return summary, nil
}
