package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/hubgraph/resource"
)

// RepoPayloadBuilder helps create repository records with a fluent interface.
type RepoPayloadBuilder struct {
	*testkit.BaseBuilder
	name        string
	owner       string
	description string
	homepage    string
	watchers    int
	forks       int
	private     bool
}

// NewRepoPayloadBuilder creates a new repository record builder with sensible defaults.
func NewRepoPayloadBuilder() *RepoPayloadBuilder {
	return &RepoPayloadBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "silly_repo",
		owner:       "login",
		description: "Some silly repository.",
		homepage:    "http://somewhere.com",
		watchers:    1,
		forks:       2,
		private:     false,
	}
}

// WithName sets the repository name.
func (b *RepoPayloadBuilder) WithName(name string) *RepoPayloadBuilder {
	b.name = name
	return b
}

// WithOwner sets the owner login.
func (b *RepoPayloadBuilder) WithOwner(owner string) *RepoPayloadBuilder {
	b.owner = owner
	return b
}

// WithDescription sets the description.
func (b *RepoPayloadBuilder) WithDescription(description string) *RepoPayloadBuilder {
	b.description = description
	return b
}

// WithWatchers sets the watcher count.
func (b *RepoPayloadBuilder) WithWatchers(watchers int) *RepoPayloadBuilder {
	b.watchers = watchers
	return b
}

// WithPrivate sets the private flag.
func (b *RepoPayloadBuilder) WithPrivate(private bool) *RepoPayloadBuilder {
	b.private = private
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *RepoPayloadBuilder) Build() interface{} {
	return b.BuildAttributes()
}

// BuildAttributes creates the record with a concrete return type.
func (b *RepoPayloadBuilder) BuildAttributes() resource.Attributes {
	return resource.Attributes{
		"name":          b.name,
		"owner":         b.owner,
		"description":   b.description,
		"homepage":      b.homepage,
		"url":           "http://github.com/" + b.owner + "/" + b.name,
		"watchers":      b.watchers,
		"forks":         b.forks,
		"open_issues":   3,
		"fork":          false,
		"private":       b.private,
		"has_wiki":      true,
		"has_issues":    true,
		"has_downloads": false,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepoPayloadBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "silly_repo"
	b.owner = "login"
	b.description = "Some silly repository."
	b.homepage = "http://somewhere.com"
	b.watchers = 1
	b.forks = 2
	b.private = false
	return b
}

// Clone creates a deep copy of the RepoPayloadBuilder.
func (b *RepoPayloadBuilder) Clone() testkit.Builder {
	return &RepoPayloadBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		owner:       b.owner,
		description: b.description,
		homepage:    b.homepage,
		watchers:    b.watchers,
		forks:       b.forks,
		private:     b.private,
	}
}
