// Package commanddoubles provides stub implementations of the command
// interfaces, for controller tests.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/hubgraph/internal/domain/commands"
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
)

// StubShowUserCommand is a stub implementation of commands.ShowUser.
type StubShowUserCommand struct {
	Profile    *entities.UserProfile
	ExecuteErr error

	ExecuteCallCount int
	LastSettings     *entities.Settings
	LastLogin        string
}

var _ commands.ShowUser = (*StubShowUserCommand)(nil)

func (s *StubShowUserCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	login string,
) (*entities.UserProfile, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastLogin = login
	return s.Profile, s.ExecuteErr
}

// StubListReposCommand is a stub implementation of commands.ListRepos.
type StubListReposCommand struct {
	Summaries  []entities.RepoSummary
	ExecuteErr error

	ExecuteCallCount int
	LastOpts         commands.ListReposOptions
}

var _ commands.ListRepos = (*StubListReposCommand)(nil)

func (s *StubListReposCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.ListReposOptions,
) ([]entities.RepoSummary, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Summaries, s.ExecuteErr
}

// StubSyncCollaboratorsCommand is a stub implementation of commands.SyncCollaborators.
type StubSyncCollaboratorsCommand struct {
	Change     *entities.CollaboratorChange
	ExecuteErr error

	ExecuteCallCount int
	LastOpts         commands.SyncCollaboratorsOptions
}

var _ commands.SyncCollaborators = (*StubSyncCollaboratorsCommand)(nil)

func (s *StubSyncCollaboratorsCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.SyncCollaboratorsOptions,
) (*entities.CollaboratorChange, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Change, s.ExecuteErr
}

// StubListCommitsCommand is a stub implementation of commands.ListCommits.
type StubListCommitsCommand struct {
	Summaries  []entities.CommitSummary
	ExecuteErr error

	ExecuteCallCount int
	LastOpts         commands.ListCommitsOptions
}

var _ commands.ListCommits = (*StubListCommitsCommand)(nil)

func (s *StubListCommitsCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.ListCommitsOptions,
) ([]entities.CommitSummary, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Summaries, s.ExecuteErr
}
