// Package credentials resolves the login/token pair a transport authenticates
// with. Static pairs come straight from configuration; otherwise they are read
// from a git configuration section holding "user" and "token" options.
package credentials

import (
	"errors"
	"fmt"
	"io"

	gitcfg "github.com/go-git/go-git/v5/config"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubgraph/transport"
)

// DefaultSection is the git configuration section read when none is given.
const DefaultSection = "github"

// ErrSectionIncomplete is returned when the section lacks a user option.
var ErrSectionIncomplete = errors.New("git config section has no user")

// Static returns a provider for a fixed pair.
func Static(login, token string) transport.CredentialProvider {
	return transport.Credentials{Login: login, Token: token}
}

// GitConfig reads credentials from "<section>.user" and "<section>.token".
type GitConfig struct {
	Section string
	Scope   gitcfg.Scope
	// RepoPath, when set, reads the configuration of that repository instead
	// of the scope-wide files.
	RepoPath string

	load func(p *GitConfig) (*gitcfg.Config, error)
}

// NewGitConfig reads section (DefaultSection when empty) from the user's
// global git configuration.
func NewGitConfig(section string) *GitConfig {
	if section == "" {
		section = DefaultSection
	}
	return &GitConfig{Section: section, Scope: gitcfg.GlobalScope, load: loadScoped}
}

// FromReader builds a provider over an already read git configuration file.
func FromReader(r io.Reader, section string) (*GitConfig, error) {
	cfg, err := gitcfg.ReadConfig(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse git config: %w", err)
	}
	provider := NewGitConfig(section)
	provider.load = func(*GitConfig) (*gitcfg.Config, error) { return cfg, nil }
	return provider, nil
}

// Credentials implements transport.CredentialProvider.
func (p *GitConfig) Credentials() (transport.Credentials, error) {
	cfg, err := p.load(p)
	if err != nil {
		return transport.Credentials{}, err
	}

	section := cfg.Raw.Section(p.Section)
	creds := transport.Credentials{
		Login: section.Option("user"),
		Token: section.Option("token"),
	}
	if creds.Login == "" {
		return transport.Credentials{}, fmt.Errorf("%w: %s.user", ErrSectionIncomplete, p.Section)
	}
	if creds.Token == "" {
		logger.Warnf("git config %s.token is empty, requests will not be authenticated", p.Section)
	}
	return creds, nil
}

func loadScoped(p *GitConfig) (*gitcfg.Config, error) {
	if p.RepoPath != "" {
		cfg, err := openRepoConfig(p.RepoPath, p.Scope)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	cfg, err := gitcfg.LoadConfig(p.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load git config: %w", err)
	}
	return cfg, nil
}
