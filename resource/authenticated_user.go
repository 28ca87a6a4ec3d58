package resource

import (
	"context"
	"fmt"
	"net/url"
)

// AuthenticatedUser is the user the client is logged in as. It exposes the
// privileged attributes of the account and can create repositories.
type AuthenticatedUser struct {
	*User
}

// NewAuthenticatedUser builds the authenticated user from seed attributes.
func NewAuthenticatedUser(client Client, attrs Attributes) *AuthenticatedUser {
	return &AuthenticatedUser{User: newUser(client, KindAuthenticatedUser, attrs)}
}

// Plan describes the account's subscription.
type Plan struct {
	Name          string
	Space         int
	Collaborators int
	PrivateRepos  int
}

// RepoOptions are the fields accepted when creating a repository.
type RepoOptions struct {
	Name        string
	Description string
	Homepage    string
	// Public defaults to the server's choice when nil.
	Public *bool
}

func (o RepoOptions) params() url.Values {
	params := url.Values{"name": {o.Name}}
	if o.Description != "" {
		params.Set("description", o.Description)
	}
	if o.Homepage != "" {
		params.Set("homepage", o.Homepage)
	}
	if o.Public != nil {
		if *o.Public {
			params.Set("public", "1")
		} else {
			params.Set("public", "0")
		}
	}
	return params
}

func (u *AuthenticatedUser) OwnedPrivateRepoCount(ctx context.Context) (*int, error) {
	return u.intAttr(ctx, "owned_private_repo_count")
}

func (u *AuthenticatedUser) TotalPrivateRepoCount(ctx context.Context) (*int, error) {
	return u.intAttr(ctx, "total_private_repo_count")
}

func (u *AuthenticatedUser) PrivateGistCount(ctx context.Context) (*int, error) {
	return u.intAttr(ctx, "private_gist_count")
}

// Collaborators is the number of collaborators across the account's private repositories.
func (u *AuthenticatedUser) Collaborators(ctx context.Context) (*int, error) {
	return u.intAttr(ctx, "collaborators")
}

func (u *AuthenticatedUser) DiskUsage(ctx context.Context) (*int, error) {
	return u.intAttr(ctx, "disk_usage")
}

// Plan returns nil when the record carries no plan.
func (u *AuthenticatedUser) Plan(ctx context.Context) (*Plan, error) {
	v, err := u.Attribute(ctx, "plan")
	if err != nil || v.Raw() == nil {
		return nil, err
	}
	fields, ok := v.AsMap()
	if !ok {
		return nil, fmt.Errorf("%w: plan is %T", ErrAttributeType, v.Raw())
	}
	plan := &Plan{Name: scalarString(fields["name"])}
	plan.Space, _ = presentValue(fields["space"]).AsInt()
	plan.Collaborators, _ = presentValue(fields["collaborators"]).AsInt()
	plan.PrivateRepos, _ = presentValue(fields["private_repos"]).AsInt()
	return plan, nil
}

// CreateRepo creates a repository owned by this user and returns it, seeded
// with the record the server answered with.
func (u *AuthenticatedUser) CreateRepo(ctx context.Context, opts RepoOptions) (*Repo, error) {
	if opts.Name == "" {
		return nil, ErrRepoNameRequired
	}

	resp, err := u.client.Post(ctx, "/repos/create", opts.params())
	if err != nil {
		return nil, fmt.Errorf("failed to create repository %q: %w", opts.Name, err)
	}
	payload, err := resp.Envelope("repository")
	if err != nil {
		return nil, fmt.Errorf("failed to create repository %q: %w", opts.Name, err)
	}
	attrs, err := toAttributes(payload)
	if err != nil {
		return nil, err
	}
	if _, ok := attrs["owner"]; !ok {
		attrs["owner"] = u.Login()
	}
	return NewRepo(u.client, attrs), nil
}
