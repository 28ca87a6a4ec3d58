package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/hubgraph/internal/domain/commands"
	"github.com/rios0rios0/hubgraph/internal/domain/entities"
)

// CollaboratorsController handles the "collaborators" subcommand.
type CollaboratorsController struct {
	command commands.SyncCollaborators
}

// NewCollaboratorsController creates a new CollaboratorsController.
func NewCollaboratorsController(command commands.SyncCollaborators) *CollaboratorsController {
	return &CollaboratorsController{command: command}
}

// GetBind returns the Cobra command metadata for the collaborators controller.
func (it *CollaboratorsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "collaborators <repo> [logins...]",
		Short: "Set the collaborators of a repository",
		Long: `Make the collaborators of one of your repositories exactly
the given logins. Collaborators not listed are removed, listed
logins not yet collaborating are added. With no logins, every
collaborator is removed.`,
		Args: cobra.MinimumNArgs(1),
	}
}

// AddFlags adds the collaborators-specific flags.
func (it *CollaboratorsController) AddFlags(flags *pflag.FlagSet) {
	flags.Bool("dry-run", false, "Show what would change without changing it")
}

// Execute applies the change and prints it.
func (it *CollaboratorsController) Execute(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	change, err := it.command.Execute(context.Background(), settings, commands.SyncCollaboratorsOptions{
		Repo:   args[0],
		Logins: args[1:],
		DryRun: dryRun,
	})
	if err != nil {
		logger.Errorf("Collaborator sync failed: %v", err)
		return
	}
	renderChange(cmd.OutOrStdout(), change)
}
