package controllers

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/transport"
)

// loadSettings reads the file named by --config, or the first one found in
// the default locations. Without any file, credentials come from git config.
// --verbose or DEBUG=true raise the transport verbosity to debug.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, reading credentials from git config")
		} else {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
	}

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, err
	}
	if debugRequested(cmd) {
		settings.Config.Verbosity = transport.VerbosityDebug.String()
	}
	return settings, nil
}

func debugRequested(cmd *cobra.Command) bool {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return true
	}
	return os.Getenv("DEBUG") == "true"
}
