package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/internal/domain/repositories"
	"github.com/rios0rios0/hubgraph/resource"
)

// ShowUser is the interface for the user command.
type ShowUser interface {
	Execute(ctx context.Context, settings *entities.Settings, login string) (*entities.UserProfile, error)
}

// ShowUserCommand reads a user's profile. An empty login means the
// authenticated user, whose privileged attributes are included.
type ShowUserCommand struct {
	graphs repositories.GraphRepository
}

// NewShowUserCommand creates a new ShowUserCommand.
func NewShowUserCommand(graphs repositories.GraphRepository) *ShowUserCommand {
	return &ShowUserCommand{graphs: graphs}
}

// Execute loads the profile of login.
func (it *ShowUserCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	login string,
) (*entities.UserProfile, error) {
	graph, err := it.graphs.Open(settings)
	if err != nil {
		return nil, err
	}
	if login == "" {
		login = graph.Client().Login()
	}

	user := graph.User(login)
	logger.Debugf("Reading profile of %s", user)

	profile := &entities.UserProfile{Login: user.Login()}
	if err = readUserFields(ctx, user, profile); err != nil {
		return nil, fmt.Errorf("failed to read user %q: %w", login, err)
	}

	if user.Kind() == resource.KindAuthenticatedUser {
		profile.Authenticated = true
		if err = readPrivateFields(ctx, graph.AuthenticatedUser(), profile); err != nil {
			return nil, fmt.Errorf("failed to read user %q: %w", login, err)
		}
	}
	return profile, nil
}

func readUserFields(ctx context.Context, user *resource.User, profile *entities.UserProfile) error {
	texts := []struct {
		get  func(context.Context) (*string, error)
		dest *string
	}{
		{user.Name, &profile.Name},
		{user.Company, &profile.Company},
		{user.Location, &profile.Location},
		{user.Email, &profile.Email},
		{user.Blog, &profile.Blog},
	}
	for _, field := range texts {
		value, err := field.get(ctx)
		if err != nil {
			return err
		}
		*field.dest = deref(value)
	}

	counts := []struct {
		get  func(context.Context) (*int, error)
		dest *int
	}{
		{user.FollowersCount, &profile.Followers},
		{user.FollowingCount, &profile.Following},
		{user.PublicRepoCount, &profile.PublicRepos},
	}
	for _, field := range counts {
		value, err := field.get(ctx)
		if err != nil {
			return err
		}
		*field.dest = deref(value)
	}
	return nil
}

func readPrivateFields(ctx context.Context, user *resource.AuthenticatedUser, profile *entities.UserProfile) error {
	disk, err := user.DiskUsage(ctx)
	if err != nil {
		return err
	}
	profile.DiskUsage = deref(disk)

	plan, err := user.Plan(ctx)
	if err != nil {
		return err
	}
	if plan != nil {
		profile.Plan = plan.Name
	}
	return nil
}

// deref returns the zero value for absent attributes.
func deref[T any](value *T) T {
	var zero T
	if value == nil {
		return zero
	}
	return *value
}
