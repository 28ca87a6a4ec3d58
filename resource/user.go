package resource

import (
	"context"
)

// User is a person's account, identified by login.
type User struct {
	entity

	repos     []*Repo
	watched   []*Repo
	followers []*User
	following []*User
}

// NewUser builds a user from seed attributes. The "login" attribute becomes
// the identity; anything else seeds the cache.
func NewUser(client Client, attrs Attributes) *User {
	return newUser(client, KindUser, attrs)
}

func newUser(client Client, kind Kind, attrs Attributes) *User {
	u := &User{entity: newEntity(client, kind, attrs)}
	u.loader = u
	return u
}

func (u *User) Login() string { return u.Identity() }

func (u *User) String() string { return u.Login() }

// Load fetches the full user record.
func (u *User) Load(ctx context.Context) error {
	return u.refresh(ctx, "/user/show/"+segment(u.Login()), "user")
}

// Reload discards every cached attribute and loads again.
func (u *User) Reload(ctx context.Context) error {
	u.clear()
	return u.Load(ctx)
}

func (u *User) Name(ctx context.Context) (*string, error)     { return u.stringAttr(ctx, "name") }
func (u *User) Company(ctx context.Context) (*string, error)  { return u.stringAttr(ctx, "company") }
func (u *User) Email(ctx context.Context) (*string, error)    { return u.stringAttr(ctx, "email") }
func (u *User) Location(ctx context.Context) (*string, error) { return u.stringAttr(ctx, "location") }
func (u *User) Blog(ctx context.Context) (*string, error)     { return u.stringAttr(ctx, "blog") }
func (u *User) CreatedAt(ctx context.Context) (*string, error) {
	return u.stringAttr(ctx, "created_at")
}

func (u *User) GravatarID(ctx context.Context) (*string, error) {
	return u.stringAttr(ctx, "gravatar_id")
}

func (u *User) FollowersCount(ctx context.Context) (*int, error) {
	return u.intAttr(ctx, "followers_count")
}

func (u *User) FollowingCount(ctx context.Context) (*int, error) {
	return u.intAttr(ctx, "following_count")
}

func (u *User) PublicRepoCount(ctx context.Context) (*int, error) {
	return u.intAttr(ctx, "public_repo_count")
}

func (u *User) PublicGistCount(ctx context.Context) (*int, error) {
	return u.intAttr(ctx, "public_gist_count")
}

// Repos returns the user's repositories. The list is fetched once.
func (u *User) Repos(ctx context.Context) ([]*Repo, error) {
	if u.repos == nil {
		repos, err := u.fetchRepos(ctx, "/repos/show/"+segment(u.Login()))
		if err != nil {
			return nil, err
		}
		u.repos = repos
	}
	return u.repos, nil
}

// WatchedRepos returns the public repositories the user watches. The list is fetched once.
func (u *User) WatchedRepos(ctx context.Context) ([]*Repo, error) {
	if u.watched == nil {
		repos, err := u.fetchRepos(ctx, "/repos/watched/"+segment(u.Login()))
		if err != nil {
			return nil, err
		}
		u.watched = repos
	}
	return u.watched, nil
}

// Followers returns the users following this user. The list is fetched once.
func (u *User) Followers(ctx context.Context) ([]*User, error) {
	if u.followers == nil {
		users, err := u.fetchLogins(ctx, "/user/show/"+segment(u.Login())+"/followers")
		if err != nil {
			return nil, err
		}
		u.followers = users
	}
	return u.followers, nil
}

// Following returns the users this user follows. The list is fetched once.
func (u *User) Following(ctx context.Context) ([]*User, error) {
	if u.following == nil {
		users, err := u.fetchLogins(ctx, "/user/show/"+segment(u.Login())+"/following")
		if err != nil {
			return nil, err
		}
		u.following = users
	}
	return u.following, nil
}

func (u *User) fetchRepos(ctx context.Context, path string) ([]*Repo, error) {
	payload, err := fetchEnvelope(ctx, u.client, path, "repositories")
	if err != nil {
		return nil, err
	}
	records, err := toAttributeList(payload)
	if err != nil {
		return nil, err
	}
	repos := make([]*Repo, 0, len(records))
	for _, attrs := range records {
		repos = append(repos, NewRepo(u.client, attrs))
	}
	return repos, nil
}

func (u *User) fetchLogins(ctx context.Context, path string) ([]*User, error) {
	payload, err := fetchEnvelope(ctx, u.client, path, "users")
	if err != nil {
		return nil, err
	}
	logins, err := toStrings(payload)
	if err != nil {
		return nil, err
	}
	users := make([]*User, 0, len(logins))
	for _, login := range logins {
		users = append(users, NewUser(u.client, Attributes{"login": login}))
	}
	return users, nil
}
