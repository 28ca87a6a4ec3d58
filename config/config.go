package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/hubgraph/credentials"
	"github.com/rios0rios0/hubgraph/transport"
)

// Config is the top-level configuration for hubgraph.
type Config struct {
	Login      string      `yaml:"login"`
	Token      string      `yaml:"token"`       // Inline, ${ENV_VAR}, or file path
	BaseURL    string      `yaml:"base_url"`    // Defaults to transport.DefaultBaseURL
	Verbosity  string      `yaml:"verbosity"`   // none, warning, info, debug
	GitSection string      `yaml:"git_section"` // Read when login is empty
	Retry      RetryConfig `yaml:"retry"`
}

// RetryConfig overrides the rate-limit backoff.
type RetryConfig struct {
	Base        float64       `yaml:"base"`
	Unit        time.Duration `yaml:"unit"`
	MaxAttempts int           `yaml:"max_attempts"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment variables
// and resolving token file paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Token = resolveToken(cfg.Token)

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".hubgraph.yaml",
		".hubgraph.yml",
		"hubgraph.yaml",
		"hubgraph.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Default is used when no configuration file exists: credentials come from
// the git configuration and everything else keeps its default.
func Default() *Config {
	return &Config{GitSection: credentials.DefaultSection}
}

// CredentialProvider returns the static pair when a login is configured and
// the git configuration section otherwise.
func (c *Config) CredentialProvider() transport.CredentialProvider {
	if c.Login != "" {
		return credentials.Static(c.Login, c.Token)
	}
	return credentials.NewGitConfig(c.GitSection)
}

// TransportConfig converts the file settings into a transport.Config.
func (c *Config) TransportConfig() (transport.Config, error) {
	verbosity, err := transport.ParseVerbosity(c.Verbosity)
	if err != nil {
		return transport.Config{}, fmt.Errorf("failed to read verbosity: %w", err)
	}

	tc := transport.Config{
		BaseURL:     c.BaseURL,
		Credentials: c.CredentialProvider(),
		Verbosity:   verbosity,
	}
	if c.Retry != (RetryConfig{}) {
		policy := transport.DefaultRetryPolicy()
		if c.Retry.Base > 0 {
			policy.Base = c.Retry.Base
		}
		if c.Retry.Unit > 0 {
			policy.Unit = c.Retry.Unit
		}
		policy.MaxAttempts = c.Retry.MaxAttempts
		tc.Retry = &policy
	}
	return tc, nil
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks the values that cannot be defaulted.
func validate(cfg *Config) error {
	if cfg.Login == "" && cfg.Token != "" {
		return errors.New("token is set but login is empty (set both, or neither to use git config)")
	}
	if cfg.Login == "" && cfg.GitSection == "" {
		cfg.GitSection = credentials.DefaultSection
	}
	if _, err := transport.ParseVerbosity(cfg.Verbosity); err != nil {
		return fmt.Errorf("verbosity: %w", err)
	}
	if cfg.Retry.Base < 0 || cfg.Retry.Unit < 0 || cfg.Retry.MaxAttempts < 0 {
		return errors.New("retry values must not be negative")
	}
	return nil
}
