package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/hubgraph/internal/domain/commands"
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
)

// ReposController handles the "repos" subcommand.
type ReposController struct {
	command commands.ListRepos
}

// NewReposController creates a new ReposController.
func NewReposController(command commands.ListRepos) *ReposController {
	return &ReposController{command: command}
}

// GetBind returns the Cobra command metadata for the repos controller.
func (it *ReposController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "repos [login]",
		Short: "List a user's repositories",
		Long: `List the repositories owned by a user, or the ones the
user watches with --watched. Defaults to the authenticated user.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// AddFlags adds the repos-specific flags.
func (it *ReposController) AddFlags(flags *pflag.FlagSet) {
	flags.Bool("watched", false, "List watched repositories instead of owned ones")
}

// Execute prints the repositories as a table.
func (it *ReposController) Execute(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	opts := commands.ListReposOptions{}
	if len(args) > 0 {
		opts.Login = args[0]
	}
	opts.Watched, _ = cmd.Flags().GetBool("watched")

	summaries, err := it.command.Execute(context.Background(), settings, opts)
	if err != nil {
		logger.Errorf("Listing repositories failed: %v", err)
		return
	}
	renderRepos(cmd.OutOrStdout(), summaries)
}
