package resource_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubgraph/resource"
	"github.com/rios0rios0/hubgraph/test/domain/entitybuilders"
	"github.com/rios0rios0/hubgraph/test/infrastructure/clientdoubles"
)

const commitsPath = "/commits/list/login/silly_repo/master?page="

func commitPage(ids ...string) string {
	records := make([]resource.Attributes, 0, len(ids))
	for _, id := range ids {
		records = append(records, entitybuilders.NewCommitPayloadBuilder().WithID(id).BuildAttributes())
	}
	return entitybuilders.Envelope("commits", records)
}

func commitIDs(commits []*resource.Commit) []string {
	ids := make([]string, 0, len(commits))
	for _, c := range commits {
		ids = append(ids, c.ID())
	}
	return ids
}

func TestBranchCommits(t *testing.T) {
	t.Parallel()

	t.Run("should concatenate pages until one fails", func(t *testing.T) {
		t.Parallel()

		// given
		spy := clientdoubles.NewSpyClient("login").
			OnGet(commitsPath+"1", commitPage("c1", "c2")).
			OnGet(commitsPath+"2", commitPage("c3")).
			On(http.MethodGet, commitsPath+"3", http.StatusNotFound, "error:\n- error: not found\n")
		branch := resource.NewBranch(sillyRepo(spy), "master", "c1")

		// when
		commits, err := branch.Commits(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"c1", "c2", "c3"}, commitIDs(commits))
		assert.Equal(t, []string{
			"GET " + commitsPath + "1",
			"GET " + commitsPath + "2",
			"GET " + commitsPath + "3",
		}, spy.Paths())
	})

	t.Run("should keep the walked list", func(t *testing.T) {
		t.Parallel()

		// given
		spy := clientdoubles.NewSpyClient("login").OnGet(commitsPath+"1", commitPage("c1"))
		branch := resource.NewBranch(sillyRepo(spy), "master", "c1")
		ctx := context.Background()

		// when
		first, err := branch.Commits(ctx)
		require.NoError(t, err)
		second, err := branch.Commits(ctx)
		require.NoError(t, err)

		// then
		assert.Equal(t, first, second)
		assert.Equal(t, 2, spy.CallCount())
	})

	t.Run("should stop on an empty page", func(t *testing.T) {
		t.Parallel()

		// given
		spy := clientdoubles.NewSpyClient("login").
			OnGet(commitsPath+"1", commitPage("c1")).
			OnGet(commitsPath+"2", "commits: []")
		branch := resource.NewBranch(sillyRepo(spy), "master", "c1")

		// when
		commits, err := branch.Commits(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"c1"}, commitIDs(commits))
		assert.Equal(t, 2, spy.CallCount())
	})

	t.Run("should return an empty list when the first page fails", func(t *testing.T) {
		t.Parallel()

		// given
		spy := clientdoubles.NewSpyClient("login")
		branch := resource.NewBranch(sillyRepo(spy), "master", "c1")

		// when
		commits, err := branch.Commits(context.Background())

		// then
		require.NoError(t, err)
		assert.NotNil(t, commits)
		assert.Empty(t, commits)
	})

	t.Run("should seed commits with the listed records", func(t *testing.T) {
		t.Parallel()

		// given
		spy := clientdoubles.NewSpyClient("login").OnGet(commitsPath+"1", commitPage("c1"))
		branch := resource.NewBranch(sillyRepo(spy), "master", "c1")
		ctx := context.Background()

		// when
		commits, err := branch.Commits(ctx)
		require.NoError(t, err)
		message, err := commits[0].Message(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, "initial commit", *message)
		assert.Same(t, branch.Repo(), commits[0].Repo())
		assert.Equal(t, 2, spy.CallCount())
	})
}
