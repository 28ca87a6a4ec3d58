package entities

import (
	"fmt"

	"github.com/rios0rios0/hubgraph/config"
)

// Settings is the resolved configuration a command runs with.
type Settings struct {
	// ConfigPath is empty when no file was found and defaults are in use.
	ConfigPath string
	Config     *config.Config
}

// NewSettings loads the configuration at path, or falls back to the defaults
// (git config credentials) when path is empty.
func NewSettings(path string) (*Settings, error) {
	if path == "" {
		return &Settings{Config: config.Default()}, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &Settings{ConfigPath: path, Config: cfg}, nil
}

// FindConfigFile returns the first configuration file in the standard locations.
func FindConfigFile() (string, error) {
	return config.FindConfigFile()
}
