// Package github provides a thin client over the GitHub API for validating
// a repository before a generation run is paid for.
package github

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"
)

// RepoInfo is the subset of repository metadata the front-ends display.
type RepoInfo struct {
	FullName      string
	Description   string
	DefaultBranch string
	Language      string
	Stars         int
	Private       bool
}

// Client defines the GitHub operations the application needs.
//
//go:generate mockgen -destination=../../mocks/mock_github_client.go -package=mocks . Client
type Client interface {
	GetRepository(ctx context.Context, owner, repo string) (*RepoInfo, error)
	RepoExists(ctx context.Context, owner, repo string) (bool, error)
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewClient wraps the official go-github client. An empty token yields an
// unauthenticated client, which is sufficient for public repositories.
func NewClient(ctx context.Context, token string, logger *slog.Logger) Client {
	httpClient := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	return &gitHubClient{client: github.NewClient(httpClient), logger: logger}
}

// GetRepository fetches the repository metadata.
func (g *gitHubClient) GetRepository(ctx context.Context, owner, repo string) (*RepoInfo, error) {
	r, _, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		g.logger.Error("failed to get repository", "owner", owner, "repo", repo, "error", err)
		return nil, err
	}
	return &RepoInfo{
		FullName:      r.GetFullName(),
		Description:   r.GetDescription(),
		DefaultBranch: r.GetDefaultBranch(),
		Language:      r.GetLanguage(),
		Stars:         r.GetStargazersCount(),
		Private:       r.GetPrivate(),
	}, nil
}

// RepoExists reports whether the repository is visible with the configured
// credentials. A 404 means "no" rather than an error so callers can fail
// fast with a precise message before starting a generation.
func (g *gitHubClient) RepoExists(ctx context.Context, owner, repo string) (bool, error) {
	_, resp, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		g.logger.Error("failed to check repository", "owner", owner, "repo", repo, "error", err)
		return false, err
	}
	return true, nil
}
