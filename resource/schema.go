package resource

import "slices"

// Kind enumerates the lazily loaded resource kinds.
type Kind string

const (
	KindUser              Kind = "user"
	KindAuthenticatedUser Kind = "authenticated_user"
	KindRepo              Kind = "repo"
	KindCommit            Kind = "commit"
)

// Schema lists the identity field of a kind and the attributes that are
// fetched on first read.
type Schema struct {
	Kind     Kind
	Identity string
	Loadable []string
}

var userAttributes = []string{ //nolint:gochecknoglobals // schema table
	"followers_count", "created_at", "company", "gravatar_id", "public_repo_count",
	"location", "email", "public_gist_count", "blog", "name", "following_count",
}

var schemas = map[Kind]Schema{ //nolint:gochecknoglobals // schema table
	KindUser: {
		Kind:     KindUser,
		Identity: "login",
		Loadable: userAttributes,
	},
	KindAuthenticatedUser: {
		Kind:     KindAuthenticatedUser,
		Identity: "login",
		Loadable: append(slices.Clone(userAttributes),
			"owned_private_repo_count", "total_private_repo_count", "private_gist_count",
			"plan", "collaborators", "disk_usage",
		),
	},
	KindRepo: {
		Kind:     KindRepo,
		Identity: "name",
		Loadable: []string{
			"owner", "open_issues", "description", "fork", "forks", "private", "url",
			"homepage", "watchers", "has_wiki", "has_downloads", "has_issues",
		},
	},
	KindCommit: {
		Kind:     KindCommit,
		Identity: "id",
		Loadable: []string{
			"message", "tree", "url", "authored_date", "committed_date", "parents",
			"author", "committer", "added", "removed", "modified",
		},
	},
}

// SchemaFor returns the schema of kind. Unknown kinds yield an empty schema.
func SchemaFor(kind Kind) Schema {
	return schemas[kind]
}

// IsLoadable reports whether name is fetched lazily for this kind.
func (s Schema) IsLoadable(name string) bool {
	return name != s.Identity && slices.Contains(s.Loadable, name)
}
