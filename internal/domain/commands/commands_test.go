package commands_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubgraph/internal/domain/commands"
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/resource"
	"github.com/rios0rios0/hubgraph/test/domain/entitybuilders"
	"github.com/rios0rios0/hubgraph/test/infrastructure/clientdoubles"
	"github.com/rios0rios0/hubgraph/test/infrastructure/repositorydoubles"
)

func settings() *entities.Settings {
	s, _ := entities.NewSettings("")
	return s
}

func TestShowUserCommand(t *testing.T) {
	t.Parallel()

	t.Run("should read a public profile with a single load", func(t *testing.T) {
		t.Parallel()

		// given
		body := "user:\n  login: jqr\n  name: Elijah\n  company: Acme\n  followers_count: 12\n  public_repo_count: 3\n"
		spy := clientdoubles.NewSpyClient("login").OnGet("/user/show/jqr", body)
		command := commands.NewShowUserCommand(repositorydoubles.NewStubGraphRepository(spy))

		// when
		profile, err := command.Execute(context.Background(), settings(), "jqr")

		// then
		require.NoError(t, err)
		assert.Equal(t, &entities.UserProfile{
			Login:       "jqr",
			Name:        "Elijah",
			Company:     "Acme",
			Followers:   12,
			PublicRepos: 3,
		}, profile)
		assert.Equal(t, 1, spy.CallCount())
	})

	t.Run("should include private fields for the authenticated user", func(t *testing.T) {
		t.Parallel()

		// given
		body := "user:\n  login: login\n  name: Me\n  disk_usage: 2048\n  plan:\n    name: micro\n"
		spy := clientdoubles.NewSpyClient("login").OnGet("/user/show/login", body)
		command := commands.NewShowUserCommand(repositorydoubles.NewStubGraphRepository(spy))

		// when
		profile, err := command.Execute(context.Background(), settings(), "")

		// then
		require.NoError(t, err)
		assert.True(t, profile.Authenticated)
		assert.Equal(t, 2048, profile.DiskUsage)
		assert.Equal(t, "micro", profile.Plan)
		assert.Equal(t, 1, spy.CallCount())
	})

	t.Run("should fail when the graph cannot be opened", func(t *testing.T) {
		t.Parallel()

		// given
		graphs := repositorydoubles.NewStubGraphRepository(nil)
		graphs.OpenErr = errors.New("no credentials")
		command := commands.NewShowUserCommand(graphs)

		// when
		_, err := command.Execute(context.Background(), settings(), "jqr")

		// then
		require.Error(t, err)
		assert.Equal(t, 1, graphs.OpenCallCount)
	})

	t.Run("should report API faults", func(t *testing.T) {
		t.Parallel()

		// given
		spy := clientdoubles.NewSpyClient("login").
			On(http.MethodGet, "/user/show/ghost", http.StatusNotFound, "error:\n- error: not found\n")
		command := commands.NewShowUserCommand(repositorydoubles.NewStubGraphRepository(spy))

		// when
		_, err := command.Execute(context.Background(), settings(), "ghost")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestListReposCommand(t *testing.T) {
	t.Parallel()

	t.Run("should summarize every repository from the listing alone", func(t *testing.T) {
		t.Parallel()

		// given
		body := entitybuilders.Envelope("repositories", []resource.Attributes{
			entitybuilders.NewRepoPayloadBuilder().WithName("one").WithWatchers(5).BuildAttributes(),
			entitybuilders.NewRepoPayloadBuilder().WithName("two").WithPrivate(true).BuildAttributes(),
		})
		spy := clientdoubles.NewSpyClient("login").OnGet("/repos/show/login", body)
		command := commands.NewListReposCommand(repositorydoubles.NewStubGraphRepository(spy))

		// when
		summaries, err := command.Execute(context.Background(), settings(), commands.ListReposOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "one", summaries[0].Repository.Name)
		assert.Equal(t, "login", summaries[0].Repository.Organization)
		assert.Equal(t, 5, summaries[0].Watchers)
		assert.True(t, summaries[1].Private)
		assert.Equal(t, 1, spy.CallCount())
	})

	t.Run("should list watched repositories of another user", func(t *testing.T) {
		t.Parallel()

		// given
		body := entitybuilders.Envelope("repositories", []resource.Attributes{
			entitybuilders.NewRepoPayloadBuilder().WithOwner("rails").WithName("rails").BuildAttributes(),
		})
		spy := clientdoubles.NewSpyClient("login").OnGet("/repos/watched/jqr", body)
		command := commands.NewListReposCommand(repositorydoubles.NewStubGraphRepository(spy))

		// when
		summaries, err := command.Execute(context.Background(), settings(),
			commands.ListReposOptions{Login: "jqr", Watched: true})

		// then
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "rails/rails", summaries[0].Repository.ID)
	})
}

func TestSyncCollaboratorsCommand(t *testing.T) {
	t.Parallel()

	const listPath = "/repos/show/login/silly_repo/collaborators"

	t.Run("should apply the difference", func(t *testing.T) {
		t.Parallel()

		// given
		spy := clientdoubles.NewSpyClient("login").
			OnGet(listPath, "collaborators: [a, b, c]").
			On(http.MethodPost, "/repos/collaborators/silly_repo/remove/a", http.StatusOK, "collaborators: [b, c]").
			On(http.MethodPost, "/repos/collaborators/silly_repo/add/d", http.StatusOK, "collaborators: [b, c, d]")
		command := commands.NewSyncCollaboratorsCommand(repositorydoubles.NewStubGraphRepository(spy))

		// when
		change, err := command.Execute(context.Background(), settings(), commands.SyncCollaboratorsOptions{
			Repo:   "silly_repo",
			Logins: []string{"b", "c", "d"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, change.Removed)
		assert.Equal(t, []string{"d"}, change.Added)
		assert.Equal(t, 3, spy.CallCount())
	})

	t.Run("should only report in dry-run mode", func(t *testing.T) {
		t.Parallel()

		// given
		spy := clientdoubles.NewSpyClient("login").OnGet(listPath, "collaborators: [a]")
		command := commands.NewSyncCollaboratorsCommand(repositorydoubles.NewStubGraphRepository(spy))

		// when
		change, err := command.Execute(context.Background(), settings(), commands.SyncCollaboratorsOptions{
			Repo:   "silly_repo",
			Logins: []string{"b"},
			DryRun: true,
		})

		// then
		require.NoError(t, err)
		assert.True(t, change.DryRun)
		assert.Equal(t, []string{"a"}, change.Removed)
		assert.Equal(t, []string{"b"}, change.Added)
		assert.Equal(t, []string{"GET " + listPath}, spy.Paths())
	})
}

func TestListCommitsCommand(t *testing.T) {
	t.Parallel()

	const pagePath = "/commits/list/login/silly_repo/master?page="

	t.Run("should walk every page and keep the first message line", func(t *testing.T) {
		t.Parallel()

		// given
		first := entitybuilders.Envelope("commits", []resource.Attributes{
			entitybuilders.NewCommitPayloadBuilder().WithID("c1").WithMessage("fix build\n\nlong body").BuildAttributes(),
		})
		second := entitybuilders.Envelope("commits", []resource.Attributes{
			entitybuilders.NewCommitPayloadBuilder().WithID("c2").BuildAttributes(),
		})
		spy := clientdoubles.NewSpyClient("login").
			OnGet(pagePath+"1", first).
			OnGet(pagePath+"2", second)
		command := commands.NewListCommitsCommand(repositorydoubles.NewStubGraphRepository(spy))

		// when
		summaries, err := command.Execute(context.Background(), settings(), commands.ListCommitsOptions{
			Owner: "login", Repo: "silly_repo", Branch: "master",
		})

		// then
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "c1", summaries[0].ID)
		assert.Equal(t, "fix build", summaries[0].Message)
		assert.Equal(t, "Jane Doe", summaries[0].Author)
		assert.Equal(t, 2009, summaries[0].Date.Year())
		assert.Equal(t, 3, spy.CallCount())
	})

	t.Run("should truncate to the limit", func(t *testing.T) {
		t.Parallel()

		// given
		page := entitybuilders.Envelope("commits", []resource.Attributes{
			entitybuilders.NewCommitPayloadBuilder().WithID("c1").BuildAttributes(),
			entitybuilders.NewCommitPayloadBuilder().WithID("c2").BuildAttributes(),
		})
		spy := clientdoubles.NewSpyClient("login").OnGet(pagePath+"1", page)
		command := commands.NewListCommitsCommand(repositorydoubles.NewStubGraphRepository(spy))

		// when
		summaries, err := command.Execute(context.Background(), settings(), commands.ListCommitsOptions{
			Owner: "login", Repo: "silly_repo", Branch: "master", Limit: 1,
		})

		// then
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "c1", summaries[0].ID)
	})
}
