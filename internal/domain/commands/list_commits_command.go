package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/internal/domain/repositories"
	"github.com/rios0rios0/hubgraph/resource"
)

// ListCommits is the interface for the commits command.
type ListCommits interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ListCommitsOptions) ([]entities.CommitSummary, error)
}

// ListCommitsOptions identifies the branch to walk.
type ListCommitsOptions struct {
	Owner  string
	Repo   string
	Branch string
	// Limit truncates the output; zero means every commit.
	Limit int
}

// ListCommitsCommand walks the full commit history of a branch.
type ListCommitsCommand struct {
	graphs repositories.GraphRepository
}

// NewListCommitsCommand creates a new ListCommitsCommand.
func NewListCommitsCommand(graphs repositories.GraphRepository) *ListCommitsCommand {
	return &ListCommitsCommand{graphs: graphs}
}

// Execute lists the branch's commits, newest first as the API returns them.
func (it *ListCommitsCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ListCommitsOptions,
) ([]entities.CommitSummary, error) {
	graph, err := it.graphs.Open(settings)
	if err != nil {
		return nil, err
	}
	repo := graph.Repo(opts.Owner, opts.Repo)
	branch := resource.NewBranch(repo, opts.Branch, "")

	commits, err := branch.Commits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits of %s/%s@%s: %w", opts.Owner, opts.Repo, opts.Branch, err)
	}
	if opts.Limit > 0 && len(commits) > opts.Limit {
		commits = commits[:opts.Limit]
	}

	summaries := make([]entities.CommitSummary, 0, len(commits))
	for _, commit := range commits {
		summary, summaryErr := summarizeCommit(ctx, commit)
		if summaryErr != nil {
			return nil, fmt.Errorf("failed to read commit %s: %w", commit.ID(), summaryErr)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func summarizeCommit(ctx context.Context, commit *resource.Commit) (entities.CommitSummary, error) {
	summary := entities.CommitSummary{ID: commit.ID()}

	message, err := commit.Message(ctx)
	if err != nil {
		return summary, err
	}
	summary.Message, _, _ = strings.Cut(deref(message), "\n")

	author, err := commit.Author(ctx)
	if err != nil {
		return summary, err
	}
	if author != nil {
		summary.Author = author.Name
	}

	date, err := commit.CommittedDate(ctx)
	if err != nil {
		return summary, err
	}
	if parsed, parseErr := time.Parse(time.RFC3339, deref(date)); parseErr == nil {
		summary.Date = parsed
	}
	return summary, nil
}
