package repositories_test

import (
	"bytes"
	"context"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubgraph/config"
	"github.com/rios0rios0/hubgraph/internal/domain/commands"
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/internal/infrastructure/repositories"
	"github.com/rios0rios0/hubgraph/test/infrastructure/serverdoubles"
)

func settingsFor(api *serverdoubles.FakeAPI) *entities.Settings {
	return &entities.Settings{Config: &config.Config{
		Login:     "login",
		Token:     "token",
		BaseURL:   api.BaseURL(),
		Verbosity: "none",
	}}
}

func commitPage(id, message string) string {
	return "commits:\n" +
		"- id: " + id + "\n" +
		"  message: " + message + "\n" +
		"  committed_date: \"2009-03-31T09:54:51-07:00\"\n" +
		"  author:\n" +
		"    name: Jane Doe\n"
}

func TestTransportGraphRepository(t *testing.T) {
	t.Parallel()

	t.Run("should open a graph authenticated with the configured pair", func(t *testing.T) {
		t.Parallel()

		// given
		api := serverdoubles.NewFakeAPI(t).HandleGet("/user/show/login", "user:\n  login: login\n  company: Acme\n")
		graphs := repositories.NewTransportGraphRepository().WithHTTPClient(api.Client())

		// when
		graph, err := graphs.Open(settingsFor(api))
		require.NoError(t, err)
		user := graph.AuthenticatedUser()
		login := user.Login()
		company, err := user.Company(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "login", login)
		assert.Equal(t, "Acme", *company)
		requests := api.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, "login", requests[0].Query.Get("login"))
		assert.Equal(t, "token", requests[0].Query.Get("token"))
	})

	t.Run("should log requests at debug verbosity while the global level is info", func(t *testing.T) {
		t.Parallel()

		// given
		require.Equal(t, logger.InfoLevel, logger.GetLevel())
		api := serverdoubles.NewFakeAPI(t).HandleGet("/user/show/login", "user:\n  login: login\n  company: Acme\n")
		settings := settingsFor(api)
		settings.Config.Verbosity = "debug"
		out := &bytes.Buffer{}
		graphs := repositories.NewTransportGraphRepository().WithHTTPClient(api.Client()).WithLogOutput(out)

		// when
		graph, err := graphs.Open(settings)
		require.NoError(t, err)
		_, err = graph.AuthenticatedUser().Company(context.Background())

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "GET "+api.BaseURL()+"/user/show/login")
		assert.Contains(t, out.String(), "200")
		assert.Contains(t, out.String(), "Acme")
		assert.NotContains(t, out.String(), "token=token")
	})

	t.Run("should stay silent at the default verbosity", func(t *testing.T) {
		t.Parallel()

		// given
		api := serverdoubles.NewFakeAPI(t).HandleGet("/user/show/login", "user:\n  login: login\n")
		settings := settingsFor(api)
		settings.Config.Verbosity = ""
		out := &bytes.Buffer{}
		graphs := repositories.NewTransportGraphRepository().WithHTTPClient(api.Client()).WithLogOutput(out)

		// when
		graph, err := graphs.Open(settings)
		require.NoError(t, err)
		_, err = graph.AuthenticatedUser().Company(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("should reject an invalid verbosity", func(t *testing.T) {
		t.Parallel()

		// given
		api := serverdoubles.NewFakeAPI(t)
		settings := settingsFor(api)
		settings.Config.Verbosity = "chatty"

		// when
		_, err := repositories.NewTransportGraphRepository().Open(settings)

		// then
		require.Error(t, err)
		assert.Empty(t, api.Requests())
	})

	t.Run("should walk a paginated branch over HTTP", func(t *testing.T) {
		t.Parallel()

		// given
		api := serverdoubles.NewFakeAPI(t).
			HandleGet("/commits/list/login/silly_repo/master?page=1", commitPage("c1", "one")).
			HandleGet("/commits/list/login/silly_repo/master?page=2", commitPage("c2", "two"))
		graphs := repositories.NewTransportGraphRepository().WithHTTPClient(api.Client())
		command := commands.NewListCommitsCommand(graphs)

		// when
		summaries, err := command.Execute(context.Background(), settingsFor(api), commands.ListCommitsOptions{
			Owner: "login", Repo: "silly_repo", Branch: "master",
		})

		// then
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "two", summaries[1].Message)
		assert.Equal(t, []string{
			"GET /commits/list/login/silly_repo/master",
			"GET /commits/list/login/silly_repo/master",
			"GET /commits/list/login/silly_repo/master",
		}, api.Paths())
	})
}
