package resource

import (
	"context"
	"fmt"
)

// Commit is a commit of a repository, identified by id.
type Commit struct {
	entity

	repo *Repo
}

// NewCommit builds a commit of repo from seed attributes; "id" becomes the identity.
func NewCommit(repo *Repo, attrs Attributes) *Commit {
	c := &Commit{entity: newEntity(repo.client, KindCommit, attrs), repo: repo}
	c.loader = c
	return c
}

func (c *Commit) ID() string { return c.Identity() }

func (c *Commit) String() string { return c.ID() }

func (c *Commit) Repo() *Repo { return c.repo }

// Load fetches the full commit record.
func (c *Commit) Load(ctx context.Context) error {
	if c.repo.ownerLogin == "" {
		return fmt.Errorf("%w: %s", ErrNoOwner, c.repo.Name())
	}
	path := "/commits/show/" + segment(c.repo.ownerLogin) + "/" + segment(c.repo.Name()) + "/" + segment(c.ID())
	return c.refresh(ctx, path, "commit")
}

// Reload discards every cached attribute and loads again.
func (c *Commit) Reload(ctx context.Context) error {
	c.clear()
	return c.Load(ctx)
}

func (c *Commit) Message(ctx context.Context) (*string, error) { return c.stringAttr(ctx, "message") }
func (c *Commit) Tree(ctx context.Context) (*string, error)    { return c.stringAttr(ctx, "tree") }
func (c *Commit) URL(ctx context.Context) (*string, error)     { return c.stringAttr(ctx, "url") }

func (c *Commit) AuthoredDate(ctx context.Context) (*string, error) {
	return c.stringAttr(ctx, "authored_date")
}

func (c *Commit) CommittedDate(ctx context.Context) (*string, error) {
	return c.stringAttr(ctx, "committed_date")
}

// Added lists the files the commit added.
func (c *Commit) Added(ctx context.Context) ([]string, error) { return c.stringsAttr(ctx, "added") }

// Removed lists the files the commit removed.
func (c *Commit) Removed(ctx context.Context) ([]string, error) {
	return c.stringsAttr(ctx, "removed")
}

// Parents wraps each parent record as a Commit of the same repository. The
// parents themselves are not fetched.
func (c *Commit) Parents(ctx context.Context) ([]*Commit, error) {
	v, err := c.Attribute(ctx, "parents")
	if err != nil || v.Raw() == nil {
		return nil, err
	}
	items, ok := v.Raw().([]any)
	if !ok {
		return nil, fmt.Errorf("%w: parents is %T", ErrAttributeType, v.Raw())
	}

	parents := make([]*Commit, 0, len(items))
	for _, item := range items {
		if id, isID := item.(string); isID {
			parents = append(parents, c.repo.Commit(id))
			continue
		}
		attrs, attrErr := toAttributes(item)
		if attrErr != nil {
			return nil, attrErr
		}
		parents = append(parents, NewCommit(c.repo, attrs))
	}
	return parents, nil
}

// Author returns nil when the record has no author.
func (c *Commit) Author(ctx context.Context) (*Person, error) { return c.person(ctx, "author") }

// Committer returns nil when the record has no committer.
func (c *Commit) Committer(ctx context.Context) (*Person, error) {
	return c.person(ctx, "committer")
}

func (c *Commit) person(ctx context.Context, name string) (*Person, error) {
	v, err := c.Attribute(ctx, name)
	if err != nil || v.Raw() == nil {
		return nil, err
	}
	attrs, err := toAttributes(v.Raw())
	if err != nil {
		return nil, err
	}
	return NewPerson(c.client, attrs), nil
}

// Modifications returns the per-file diffs held in the cache. It never
// fetches: a commit that was not loaded with its "modified" list has none.
func (c *Commit) Modifications() []Modification {
	raw, ok := c.cached("modified")
	if !ok {
		return nil
	}
	records, err := toAttributeList(raw)
	if err != nil {
		return nil
	}
	modifications := make([]Modification, 0, len(records))
	for _, attrs := range records {
		modifications = append(modifications, Modification{
			Filename: scalarString(attrs["filename"]),
			Diff:     scalarString(attrs["diff"]),
		})
	}
	return modifications
}
