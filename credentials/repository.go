package credentials

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
)

// openRepoConfig merges the repository's own configuration over the given scope.
func openRepoConfig(path string, scope gitcfg.Scope) (*gitcfg.Config, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %q: %w", path, err)
	}
	cfg, err := repo.ConfigScoped(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration of %q: %w", path, err)
	}
	return cfg, nil
}
