package resource

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
	"golang.org/x/mod/semver"
)

const (
	providerName  = "github"
	defaultBranch = "master"
	remoteHost    = "github.com"
)

// Repo is a repository identified by name within its owner's account.
type Repo struct {
	entity

	// ownerLogin is kept outside the cache so paths survive a Reload.
	ownerLogin string
	owner      *User

	collaborators     []string
	haveCollaborators bool
	tags              map[string]string
	branches          []*Branch
}

// NewRepo builds a repository from seed attributes. "name" becomes the
// identity; "owner" (a login, or a record carrying one) is remembered for
// building request paths.
func NewRepo(client Client, attrs Attributes) *Repo {
	r := &Repo{entity: newEntity(client, KindRepo, attrs)}
	r.loader = r
	r.ownerLogin = ownerLoginOf(r.attrs["owner"])
	return r
}

func ownerLoginOf(raw any) string {
	if fields, ok := raw.(map[string]any); ok {
		return scalarString(fields["login"])
	}
	return scalarString(raw)
}

func (r *Repo) Name() string { return r.Identity() }

func (r *Repo) String() string { return r.Name() }

// OwnerLogin returns the owner's login without any network access.
func (r *Repo) OwnerLogin() string { return r.ownerLogin }

func (r *Repo) basePath() (string, error) {
	if r.ownerLogin == "" {
		return "", fmt.Errorf("%w: %s", ErrNoOwner, r.Name())
	}
	return "/repos/show/" + segment(r.ownerLogin) + "/" + segment(r.Name()), nil
}

// Load fetches the full repository record.
func (r *Repo) Load(ctx context.Context) error {
	path, err := r.basePath()
	if err != nil {
		return err
	}
	if err = r.refresh(ctx, path, "repository"); err != nil {
		return err
	}
	if r.ownerLogin == "" {
		r.ownerLogin = ownerLoginOf(r.attrs["owner"])
	}
	return nil
}

// Reload discards every cached attribute and loads again.
func (r *Repo) Reload(ctx context.Context) error {
	r.clear()
	return r.Load(ctx)
}

// Owner returns the owning user, resolved from the stored login.
func (r *Repo) Owner() (*User, error) {
	if r.owner == nil {
		if r.ownerLogin == "" {
			return nil, fmt.Errorf("%w: %s", ErrNoOwner, r.Name())
		}
		r.owner = NewUser(r.client, Attributes{"login": r.ownerLogin})
	}
	return r.owner, nil
}

func (r *Repo) Description(ctx context.Context) (*string, error) {
	return r.stringAttr(ctx, "description")
}

func (r *Repo) Homepage(ctx context.Context) (*string, error) { return r.stringAttr(ctx, "homepage") }
func (r *Repo) URL(ctx context.Context) (*string, error)      { return r.stringAttr(ctx, "url") }
func (r *Repo) OpenIssues(ctx context.Context) (*int, error)  { return r.intAttr(ctx, "open_issues") }
func (r *Repo) Forks(ctx context.Context) (*int, error)       { return r.intAttr(ctx, "forks") }
func (r *Repo) Watchers(ctx context.Context) (*int, error)    { return r.intAttr(ctx, "watchers") }
func (r *Repo) Fork(ctx context.Context) (*bool, error)       { return r.boolAttr(ctx, "fork") }
func (r *Repo) Private(ctx context.Context) (*bool, error)    { return r.boolAttr(ctx, "private") }
func (r *Repo) HasWiki(ctx context.Context) (*bool, error)    { return r.boolAttr(ctx, "has_wiki") }
func (r *Repo) HasIssues(ctx context.Context) (*bool, error)  { return r.boolAttr(ctx, "has_issues") }

func (r *Repo) HasDownloads(ctx context.Context) (*bool, error) {
	return r.boolAttr(ctx, "has_downloads")
}

// Collaborators returns the logins with push access. The list is fetched once
// and dropped whenever SetCollaborators runs.
func (r *Repo) Collaborators(ctx context.Context) ([]string, error) {
	if r.haveCollaborators {
		return r.collaborators, nil
	}

	path, err := r.basePath()
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Get(ctx, path+"/collaborators")
	if err != nil {
		return nil, err
	}
	if err = resp.Err(); err != nil {
		return nil, fmt.Errorf("failed to list collaborators of %s: %w", r.Name(), err)
	}
	if resp.ParseErr != nil {
		return nil, resp.ParseErr
	}

	// A missing or null collection means nobody has been added yet.
	collaborators, err := toStrings(resp.Document["collaborators"])
	if err != nil {
		return nil, err
	}
	if collaborators == nil {
		collaborators = []string{}
	}

	r.collaborators = collaborators
	r.haveCollaborators = true
	return r.collaborators, nil
}

// SetCollaborators makes the collaborator list equal desired: it removes every
// current login not in desired, then adds every desired login not yet present.
func (r *Repo) SetCollaborators(ctx context.Context, desired []string) error {
	current, err := r.Collaborators(ctx)
	if err != nil {
		return err
	}
	defer r.forgetCollaborators()

	wanted := dedupe(desired)
	present := dedupe(current)
	removals := difference(present, wanted)
	additions := difference(wanted, present)

	r.client.Debugf("removals: %s", strings.Join(removals, ", "))
	r.client.Debugf("additions: %s", strings.Join(additions, ", "))

	for _, login := range removals {
		if err = r.postCollaborator(ctx, "remove", login); err != nil {
			return err
		}
	}
	for _, login := range additions {
		if err = r.postCollaborator(ctx, "add", login); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) postCollaborator(ctx context.Context, action, login string) error {
	path := "/repos/collaborators/" + segment(r.Name()) + "/" + action + "/" + segment(login)
	resp, err := r.client.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("failed to %s collaborator %q: %w", action, login, err)
	}
	if err = resp.Err(); err != nil {
		return fmt.Errorf("failed to %s collaborator %q: %w", action, login, err)
	}
	return nil
}

func (r *Repo) forgetCollaborators() {
	r.collaborators = nil
	r.haveCollaborators = false
}

// Tags returns tag name -> commit id. The mapping is fetched once.
func (r *Repo) Tags(ctx context.Context) (map[string]string, error) {
	if r.tags == nil {
		path, err := r.basePath()
		if err != nil {
			return nil, err
		}
		payload, err := fetchEnvelope(ctx, r.client, path+"/tags", "tags")
		if err != nil {
			return nil, err
		}
		tags, err := toStringMap(payload)
		if err != nil {
			return nil, err
		}
		r.tags = tags
	}
	return r.tags, nil
}

// TagNames returns the tag names, newest version first.
func (r *Repo) TagNames(ctx context.Context) ([]string, error) {
	tags, err := r.Tags(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sortTagsNewestFirst(names)
	return names, nil
}

// Branches returns the repository's branches, sorted by name. The list is
// fetched once.
func (r *Repo) Branches(ctx context.Context) ([]*Branch, error) {
	if r.branches == nil {
		path, err := r.basePath()
		if err != nil {
			return nil, err
		}
		payload, err := fetchEnvelope(ctx, r.client, path+"/branches", "branches")
		if err != nil {
			return nil, err
		}
		heads, err := toStringMap(payload)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(heads))
		for name := range heads {
			names = append(names, name)
		}
		sort.Strings(names)

		branches := make([]*Branch, 0, len(names))
		for _, name := range names {
			branches = append(branches, NewBranch(r, name, heads[name]))
		}
		r.branches = branches
	}
	return r.branches, nil
}

// Branch looks a branch up by name among Branches.
func (r *Repo) Branch(ctx context.Context, name string) (*Branch, error) {
	branches, err := r.Branches(ctx)
	if err != nil {
		return nil, err
	}
	for _, branch := range branches {
		if branch.Name() == name {
			return branch, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrBranchNotFound, r.Name(), name)
}

// Network returns the repositories in this repository's fork network.
func (r *Repo) Network(ctx context.Context) ([]*Repo, error) {
	path, err := r.basePath()
	if err != nil {
		return nil, err
	}
	payload, err := fetchEnvelope(ctx, r.client, path+"/network", "network")
	if err != nil {
		return nil, err
	}
	records, err := toAttributeList(payload)
	if err != nil {
		return nil, err
	}
	repos := make([]*Repo, 0, len(records))
	for _, attrs := range records {
		repos = append(repos, NewRepo(r.client, attrs))
	}
	return repos, nil
}

// Languages returns language name -> bytes of code.
func (r *Repo) Languages(ctx context.Context) (map[string]int, error) {
	path, err := r.basePath()
	if err != nil {
		return nil, err
	}
	payload, err := fetchEnvelope(ctx, r.client, path+"/languages", "languages")
	if err != nil {
		return nil, err
	}
	fields, err := toAttributes(payload)
	if err != nil {
		return nil, err
	}
	languages := make(map[string]int, len(fields))
	for name, raw := range fields {
		languages[name], _ = presentValue(raw).AsInt()
	}
	return languages, nil
}

// Commit returns a commit of this repository by id, without fetching it.
func (r *Repo) Commit(id string) *Commit {
	return NewCommit(r, Attributes{"id": id})
}

// InitialPushCommand returns the shell commands that push a fresh local
// project to this repository.
func (r *Repo) InitialPushCommand() (string, error) {
	if r.ownerLogin == "" {
		return "", fmt.Errorf("%w: %s", ErrNoOwner, r.Name())
	}
	return fmt.Sprintf("git remote add origin %s &&\n", r.sshURL()) +
		"git push origin " + defaultBranch + " &&\n" +
		"git config --add branch." + defaultBranch + ".remote origin &&\n" +
		"git config --add branch." + defaultBranch + ".merge refs/heads/" + defaultBranch, nil
}

// ForgeRepository describes the repository in gitforge's provider-neutral form.
func (r *Repo) ForgeRepository() (gitforgeEntities.Repository, error) {
	if r.ownerLogin == "" {
		return gitforgeEntities.Repository{}, fmt.Errorf("%w: %s", ErrNoOwner, r.Name())
	}
	return gitforgeEntities.Repository{
		ID:            r.ownerLogin + "/" + r.Name(),
		Name:          r.Name(),
		Organization:  r.ownerLogin,
		DefaultBranch: "refs/heads/" + defaultBranch,
		RemoteURL:     fmt.Sprintf("https://%s/%s/%s.git", remoteHost, r.ownerLogin, r.Name()),
		SSHURL:        r.sshURL(),
		ProviderName:  providerName,
	}, nil
}

func (r *Repo) sshURL() string {
	return fmt.Sprintf("git@%s:%s/%s.git", remoteHost, r.ownerLogin, r.Name())
}

// dedupe keeps the first occurrence of every value, preserving order.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if !slices.Contains(out, value) {
			out = append(out, value)
		}
	}
	return out
}

// difference returns the values of a missing from b, in a's order.
func difference(a, b []string) []string {
	var out []string
	for _, value := range a {
		if !slices.Contains(b, value) {
			out = append(out, value)
		}
	}
	return out
}

// sortTagsNewestFirst orders tag names by semantic version, highest first.
// Pairs that are not both versions compare as plain strings.
func sortTagsNewestFirst(tags []string) {
	sort.Slice(tags, func(i, j int) bool {
		left, right := asSemver(tags[i]), asSemver(tags[j])
		if semver.IsValid(left) && semver.IsValid(right) {
			return semver.Compare(left, right) > 0
		}
		return tags[i] > tags[j]
	})
}

// asSemver prefixes "v" so that tags like 1.2.0 parse.
func asSemver(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
