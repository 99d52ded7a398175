package gitutil

import (
	"fmt"

	"github.com/go-git/go-git/v5"

	"github.com/sevigo/repograph/internal/core"
)

// Detect resolves the repository reference from a local checkout's "origin"
// remote, so commands can be run from inside a working copy without naming
// the repository explicitly.
func Detect(path string) (core.RepoRef, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return core.RepoRef{}, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return core.RepoRef{}, fmt.Errorf("no origin remote at %s: %w", path, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return core.RepoRef{}, fmt.Errorf("origin remote at %s has no URL", path)
	}

	ref, err := ParseRepoURL(urls[0])
	if err != nil {
		return core.RepoRef{}, fmt.Errorf("failed to resolve origin remote: %w", err)
	}
	return ref, nil
}
