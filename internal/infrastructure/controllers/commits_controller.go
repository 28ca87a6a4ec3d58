package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/hubgraph/internal/domain/commands"
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
)

// CommitsController handles the "commits" subcommand.
type CommitsController struct {
	command commands.ListCommits
}

// NewCommitsController creates a new CommitsController.
func NewCommitsController(command commands.ListCommits) *CommitsController {
	return &CommitsController{command: command}
}

// GetBind returns the Cobra command metadata for the commits controller.
func (it *CommitsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "commits <owner> <repo> <branch>",
		Short: "List the commits of a branch",
		Long: `Walk every page of a branch's history and list its commits,
newest first.`,
		Args: cobra.ExactArgs(3), //nolint:mnd // owner, repo, branch
	}
}

// AddFlags adds the commits-specific flags.
func (it *CommitsController) AddFlags(flags *pflag.FlagSet) {
	flags.IntP("limit", "n", 0, "Show at most this many commits (0 shows all)")
}

// Execute prints the commits as a table.
func (it *CommitsController) Execute(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	limit, _ := cmd.Flags().GetInt("limit")
	summaries, err := it.command.Execute(context.Background(), settings, commands.ListCommitsOptions{
		Owner:  args[0],
		Repo:   args[1],
		Branch: args[2],
		Limit:  limit,
	})
	if err != nil {
		logger.Errorf("Listing commits failed: %v", err)
		return
	}
	renderCommits(cmd.OutOrStdout(), summaries)
}
