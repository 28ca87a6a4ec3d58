package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/hubgraph/resource"
)

// CommitPayloadBuilder helps create commit records with a fluent interface.
type CommitPayloadBuilder struct {
	*testkit.BaseBuilder
	id       string
	message  string
	parents  []string
	author   resource.Attributes
	modified []resource.Attributes
}

// NewCommitPayloadBuilder creates a new commit record builder with sensible defaults.
func NewCommitPayloadBuilder() *CommitPayloadBuilder {
	return &CommitPayloadBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "5071bf9fbfb81778c456d62e111440fdc776f76c",
		message:     "initial commit",
		author:      resource.Attributes{"name": "Jane Doe", "email": "jane@example.com", "login": "jane"},
	}
}

// WithID sets the commit id.
func (b *CommitPayloadBuilder) WithID(id string) *CommitPayloadBuilder {
	b.id = id
	return b
}

// WithMessage sets the commit message.
func (b *CommitPayloadBuilder) WithMessage(message string) *CommitPayloadBuilder {
	b.message = message
	return b
}

// WithParents sets the parent commit ids.
func (b *CommitPayloadBuilder) WithParents(ids ...string) *CommitPayloadBuilder {
	b.parents = ids
	return b
}

// WithAuthor sets the author record.
func (b *CommitPayloadBuilder) WithAuthor(author resource.Attributes) *CommitPayloadBuilder {
	b.author = author
	return b
}

// WithModification appends a modified file with its diff.
func (b *CommitPayloadBuilder) WithModification(filename, diff string) *CommitPayloadBuilder {
	b.modified = append(b.modified, resource.Attributes{"filename": filename, "diff": diff})
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *CommitPayloadBuilder) Build() interface{} {
	return b.BuildAttributes()
}

// BuildAttributes creates the record with a concrete return type.
func (b *CommitPayloadBuilder) BuildAttributes() resource.Attributes {
	parents := make([]any, 0, len(b.parents))
	for _, id := range b.parents {
		parents = append(parents, map[string]any{"id": id})
	}
	attrs := resource.Attributes{
		"id":             b.id,
		"message":        b.message,
		"tree":           "a1b2c3",
		"committed_date": "2009-03-31T09:54:51-07:00",
		"authored_date":  "2009-03-31T09:54:51-07:00",
		"parents":        parents,
		"author":         map[string]any(b.author),
		"committer":      map[string]any(b.author),
	}
	if len(b.modified) > 0 {
		modified := make([]any, 0, len(b.modified))
		for _, m := range b.modified {
			modified = append(modified, map[string]any(m))
		}
		attrs["modified"] = modified
	}
	return attrs
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommitPayloadBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "5071bf9fbfb81778c456d62e111440fdc776f76c"
	b.message = "initial commit"
	b.parents = nil
	b.author = resource.Attributes{"name": "Jane Doe", "email": "jane@example.com", "login": "jane"}
	b.modified = nil
	return b
}

// Clone creates a deep copy of the CommitPayloadBuilder.
func (b *CommitPayloadBuilder) Clone() testkit.Builder {
	author := make(resource.Attributes, len(b.author))
	for k, v := range b.author {
		author[k] = v
	}
	return &CommitPayloadBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		message:     b.message,
		parents:     append([]string(nil), b.parents...),
		author:      author,
		modified:    append([]resource.Attributes(nil), b.modified...),
	}
}
