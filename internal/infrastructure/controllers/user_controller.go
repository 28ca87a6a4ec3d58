package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubgraph/internal/domain/commands"
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
)

// UserController handles the "user" subcommand.
type UserController struct {
	command commands.ShowUser
}

// NewUserController creates a new UserController.
func NewUserController(command commands.ShowUser) *UserController {
	return &UserController{command: command}
}

// GetBind returns the Cobra command metadata for the user controller.
func (it *UserController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "user [login]",
		Short: "Show a user's profile",
		Long: `Show the public profile of a user.

Without a login, shows the authenticated user, including
disk usage and plan.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// Execute prints the profile.
func (it *UserController) Execute(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	login := ""
	if len(args) > 0 {
		login = args[0]
	}

	profile, err := it.command.Execute(context.Background(), settings, login)
	if err != nil {
		logger.Errorf("User lookup failed: %v", err)
		return
	}
	renderProfile(cmd.OutOrStdout(), profile)
}
