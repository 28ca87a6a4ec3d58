package resource

import (
	"context"
	"fmt"
)

// Branch is a named head within a repository.
type Branch struct {
	name string
	head string
	repo *Repo

	commits []*Commit
}

// NewBranch builds a branch of repo pointing at the head commit id.
func NewBranch(repo *Repo, name, head string) *Branch {
	return &Branch{name: name, head: head, repo: repo}
}

func (b *Branch) Name() string { return b.name }

func (b *Branch) String() string { return b.name }

// HeadID returns the id of the commit the branch points at.
func (b *Branch) HeadID() string { return b.head }

// Head returns the head commit, not yet fetched.
func (b *Branch) Head() *Commit { return b.repo.Commit(b.head) }

func (b *Branch) Repo() *Repo { return b.repo }

// Commits walks the commit listing page by page, starting at page 1, until a
// page comes back unsuccessful or empty. The full list is kept once walked.
func (b *Branch) Commits(ctx context.Context) ([]*Commit, error) {
	if b.commits != nil {
		return b.commits, nil
	}
	if b.repo.ownerLogin == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoOwner, b.repo.Name())
	}

	commits := []*Commit{}
	for page := 1; ; page++ {
		path := fmt.Sprintf("/commits/list/%s/%s/%s?page=%d",
			segment(b.repo.ownerLogin), segment(b.repo.Name()), segment(b.name), page)

		resp, err := b.repo.client.Get(ctx, path)
		if err != nil {
			return nil, err
		}
		if !resp.Success() {
			break
		}

		payload, err := resp.Envelope("commits")
		if err != nil {
			return nil, fmt.Errorf("failed to list commits of %s: %w", b.name, err)
		}
		records, err := toAttributeList(payload)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			break
		}
		for _, attrs := range records {
			commits = append(commits, NewCommit(b.repo, attrs))
		}
	}

	b.commits = commits
	return b.commits, nil
}
