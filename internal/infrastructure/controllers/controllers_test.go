package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubgraph/internal/domain/commands"
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/internal/infrastructure/controllers"
	"github.com/rios0rios0/hubgraph/test/domain/commanddoubles"
)

// newCommand mounts controller on a bare cobra command reading a temporary
// config file, and captures what it prints.
func newCommand(t *testing.T, controller entities.Controller) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "hubgraph.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("login: login\ntoken: token\n"), 0o600))

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().String("config", cfgFile, "")
	cmd.Flags().Bool("verbose", false, "")
	if binder, ok := controller.(controllers.FlagBinder); ok {
		binder.AddFlags(cmd.Flags())
	}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	return cmd, out
}

func TestUserController(t *testing.T) {
	t.Parallel()

	t.Run("should print the profile of the given login", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubShowUserCommand{Profile: &entities.UserProfile{
			Login:     "jqr",
			Name:      "Elijah",
			Followers: 1234,
		}}
		controller := controllers.NewUserController(stub)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"jqr"})

		// then
		assert.Equal(t, "jqr", stub.LastLogin)
		assert.Equal(t, "login", stub.LastSettings.Config.Login)
		assert.Contains(t, out.String(), "Elijah")
		assert.Contains(t, out.String(), "1,234")
		assert.NotContains(t, out.String(), "Disk usage")
	})

	t.Run("should print private fields of the authenticated user", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubShowUserCommand{Profile: &entities.UserProfile{
			Login:         "login",
			Authenticated: true,
			DiskUsage:     2,
			Plan:          "micro",
		}}
		controller := controllers.NewUserController(stub)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Empty(t, stub.LastLogin)
		assert.Contains(t, out.String(), "2.0 KiB")
		assert.Contains(t, out.String(), "micro")
	})

	t.Run("should print nothing when the command fails", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubShowUserCommand{ExecuteErr: errors.New("boom")}
		controller := controllers.NewUserController(stub)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"jqr"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Empty(t, out.String())
	})
}

func TestControllerVerbosity(t *testing.T) {
	t.Parallel()

	t.Run("should keep the configured verbosity without --verbose", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubShowUserCommand{Profile: &entities.UserProfile{Login: "jqr"}}
		controller := controllers.NewUserController(stub)
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"jqr"})

		// then
		assert.Empty(t, stub.LastSettings.Config.Verbosity)
	})

	t.Run("should raise the transport verbosity to debug with --verbose", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubShowUserCommand{Profile: &entities.UserProfile{Login: "jqr"}}
		controller := controllers.NewUserController(stub)
		cmd, _ := newCommand(t, controller)
		require.NoError(t, cmd.Flags().Set("verbose", "true"))

		// when
		controller.Execute(cmd, []string{"jqr"})

		// then
		assert.Equal(t, "debug", stub.LastSettings.Config.Verbosity)
	})
}

//nolint:paralleltest // t.Setenv cannot run in parallel tests
func TestControllerDebugEnvironment(t *testing.T) {
	t.Run("should raise the transport verbosity to debug when DEBUG is true", func(t *testing.T) {
		// given
		t.Setenv("DEBUG", "true")
		stub := &commanddoubles.StubShowUserCommand{Profile: &entities.UserProfile{Login: "jqr"}}
		controller := controllers.NewUserController(stub)
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"jqr"})

		// then
		assert.Equal(t, "debug", stub.LastSettings.Config.Verbosity)
	})
}

func TestReposController(t *testing.T) {
	t.Parallel()

	t.Run("should pass the watched flag and print a table", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubListReposCommand{Summaries: []entities.RepoSummary{{
			Repository: entities.Repository{Name: "silly_repo", SSHURL: "git@github.com:login/silly_repo.git"},
			Private:    true,
		}}}
		controller := controllers.NewReposController(stub)
		cmd, out := newCommand(t, controller)
		require.NoError(t, cmd.Flags().Set("watched", "true"))

		// when
		controller.Execute(cmd, []string{"jqr"})

		// then
		assert.Equal(t, commands.ListReposOptions{Login: "jqr", Watched: true}, stub.LastOpts)
		assert.Contains(t, out.String(), "silly_repo")
		assert.Contains(t, out.String(), "private")
	})
}

func TestCollaboratorsController(t *testing.T) {
	t.Parallel()

	t.Run("should pass the repository and logins and print the change", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCollaboratorsCommand{Change: &entities.CollaboratorChange{
			Repo:    "silly_repo",
			Removed: []string{"a"},
			Added:   []string{"d"},
			DryRun:  true,
		}}
		controller := controllers.NewCollaboratorsController(stub)
		cmd, out := newCommand(t, controller)
		require.NoError(t, cmd.Flags().Set("dry-run", "true"))

		// when
		controller.Execute(cmd, []string{"silly_repo", "b", "d"})

		// then
		assert.Equal(t, commands.SyncCollaboratorsOptions{
			Repo:   "silly_repo",
			Logins: []string{"b", "d"},
			DryRun: true,
		}, stub.LastOpts)
		assert.Equal(t, "[DRY RUN] - a\n[DRY RUN] + d\n", out.String())
	})

	t.Run("should say when nothing changes", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSyncCollaboratorsCommand{Change: &entities.CollaboratorChange{Repo: "silly_repo"}}
		controller := controllers.NewCollaboratorsController(stub)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"silly_repo"})

		// then
		assert.Empty(t, stub.LastOpts.Logins)
		assert.Contains(t, out.String(), "already up to date")
	})
}

func TestCommitsController(t *testing.T) {
	t.Parallel()

	t.Run("should pass the branch and limit and print short ids", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubListCommitsCommand{Summaries: []entities.CommitSummary{{
			ID:      "5071bf9fbfb81778c456d62e111440fdc776f76c",
			Author:  "Jane Doe",
			Message: "initial commit",
			Date:    time.Now().Add(-2 * time.Hour),
		}}}
		controller := controllers.NewCommitsController(stub)
		cmd, out := newCommand(t, controller)
		require.NoError(t, cmd.Flags().Set("limit", "5"))

		// when
		controller.Execute(cmd, []string{"login", "silly_repo", "master"})

		// then
		assert.Equal(t, commands.ListCommitsOptions{
			Owner: "login", Repo: "silly_repo", Branch: "master", Limit: 5,
		}, stub.LastOpts)
		assert.Contains(t, out.String(), "5071bf9")
		assert.NotContains(t, out.String(), "5071bf9f")
		assert.Contains(t, out.String(), "2 hours ago")
		assert.Contains(t, out.String(), "1 commits")
	})
}
