// Package gitutil resolves repository references from URLs and local
// checkouts.
package gitutil

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sevigo/repograph/internal/core"
)

var (
	githubURLRegex = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?$`)
	azureURLRegex  = regexp.MustCompile(`dev\.azure\.com[:/]([^/]+)/[^/]+/_git/([^/]+?)(?:\.git)?$`)
	// SSH remotes for Azure DevOps: git@ssh.dev.azure.com:v3/{org}/{project}/{repo}
	azureSSHRegex = regexp.MustCompile(`ssh\.dev\.azure\.com[:/]v3/([^/]+)/[^/]+/([^/]+?)(?:\.git)?$`)
	// Bare owner/repo shorthand defaults to GitHub.
	shorthandRegex = regexp.MustCompile(`^([\w.-]+)/([\w.-]+)$`)
)

// ParseRepoURL extracts the repository reference from a hosting URL or an
// owner/repo shorthand.
// Supported forms:
//
//	https://github.com/{owner}/{repo}
//	git@github.com:{owner}/{repo}.git
//	https://dev.azure.com/{org}/{project}/_git/{repo}
//	{owner}/{repo}
func ParseRepoURL(rawURL string) (core.RepoRef, error) {
	url := strings.TrimSuffix(strings.TrimSpace(rawURL), "/")

	if m := githubURLRegex.FindStringSubmatch(url); len(m) == 3 {
		return core.RepoRef{Owner: m[1], Repo: m[2], Provider: core.ProviderGitHub}, nil
	}
	if m := azureURLRegex.FindStringSubmatch(url); len(m) == 3 {
		return core.RepoRef{Owner: m[1], Repo: m[2], Provider: core.ProviderAzure}, nil
	}
	if m := azureSSHRegex.FindStringSubmatch(url); len(m) == 3 {
		return core.RepoRef{Owner: m[1], Repo: m[2], Provider: core.ProviderAzure}, nil
	}
	if !strings.Contains(url, "://") && !strings.Contains(url, "@") {
		if m := shorthandRegex.FindStringSubmatch(url); len(m) == 3 {
			return core.RepoRef{Owner: m[1], Repo: m[2], Provider: core.ProviderGitHub}, nil
		}
	}

	return core.RepoRef{}, fmt.Errorf("unrecognized repository URL format: %s", rawURL)
}
