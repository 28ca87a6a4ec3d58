package resource

import (
	"context"
)

// Graph is the entry point to the resource graph for one connection.
type Graph struct {
	client        Client
	authenticated *AuthenticatedUser
}

// NewGraph returns a graph whose entities all share client.
func NewGraph(client Client) *Graph {
	return &Graph{client: client}
}

func (g *Graph) Client() Client { return g.client }

// AuthenticatedUser returns the user the client is logged in as.
func (g *Graph) AuthenticatedUser() *AuthenticatedUser {
	if g.authenticated == nil {
		g.authenticated = NewAuthenticatedUser(g.client, Attributes{"login": g.client.Login()})
	}
	return g.authenticated
}

// User returns the user with login. The authenticated login yields the
// authenticated user, so its privileged attributes stay reachable.
func (g *Graph) User(login string) *User {
	if login == g.client.Login() {
		return g.AuthenticatedUser().User
	}
	return NewUser(g.client, Attributes{"login": login})
}

// Repo returns owner's repository name without fetching it.
func (g *Graph) Repo(owner, name string) *Repo {
	return NewRepo(g.client, Attributes{"name": name, "owner": owner})
}

// UserSearch finds users matching query. Each result is seeded with the
// record returned by the search.
func (g *Graph) UserSearch(ctx context.Context, query string) ([]*User, error) {
	payload, err := fetchEnvelope(ctx, g.client, "/user/search/"+segment(query), "users")
	if err != nil {
		return nil, err
	}
	records, err := toAttributeList(payload)
	if err != nil {
		return nil, err
	}
	users := make([]*User, 0, len(records))
	for _, attrs := range records {
		users = append(users, NewUser(g.client, attrs))
	}
	return users, nil
}
