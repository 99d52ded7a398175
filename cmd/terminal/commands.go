package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/repograph/internal/app"
	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/gitutil"
	"github.com/sevigo/repograph/internal/session"
	"github.com/sevigo/repograph/internal/util"
	"github.com/sevigo/repograph/internal/wire"
)

func initializeAppCmd(repoArg string) tea.Cmd {
	return func() tea.Msg {
		appInstance, _, err := wire.InitializeApp(context.Background())
		if err != nil {
			return appInitializedMsg{err: err}
		}

		repo, err := resolveRepo(repoArg)
		if err != nil {
			return appInitializedMsg{err: err}
		}

		return appInitializedMsg{app: appInstance, repo: repo}
	}
}

func resolveRepo(repoArg string) (core.RepoRef, error) {
	if repoArg != "" {
		ref, err := gitutil.ParseRepoURL(repoArg)
		if err != nil {
			return core.RepoRef{}, fmt.Errorf("invalid repository %q: %w", repoArg, err)
		}
		return ref, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return core.RepoRef{}, err
	}
	ref, err := gitutil.Detect(cwd)
	if err != nil {
		return core.RepoRef{}, fmt.Errorf("could not detect a repository here: %w", err)
	}
	return ref, nil
}

func fetchRepoInfoCmd(appInstance *app.App, repo core.RepoRef) tea.Cmd {
	return func() tea.Msg {
		if repo.Provider != core.ProviderGitHub {
			return repoInfoMsg{}
		}
		info, err := appInstance.GitHub.GetRepository(context.Background(), repo.Owner, repo.Repo)
		if err != nil {
			return repoInfoMsg{}
		}
		return repoInfoMsg{info: info}
	}
}

// waitForUpdate delivers the next streamed snapshot. The model re-issues
// it after handling each sessionUpdateMsg, draining the channel one
// message per Update cycle.
func waitForUpdate(updates <-chan session.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return nil
		}
		return sessionUpdateMsg(snap)
	}
}

func initialLoadCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := sess.InitialLoad(context.Background())
		return runFinishedMsg{err: err}
	}
}

func modifyCmd(sess *session.Session, instructions string) tea.Cmd {
	return func() tea.Msg {
		err := sess.Modify(context.Background(), instructions)
		return runFinishedMsg{err: err}
	}
}

func regenerateCmd(sess *session.Session, instructions string) tea.Cmd {
	return func() tea.Msg {
		err := sess.Regenerate(context.Background(), instructions)
		return runFinishedMsg{err: err}
	}
}

func submitAPIKeyCmd(sess *session.Session, key string) tea.Cmd {
	return func() tea.Msg {
		err := sess.SubmitAPIKey(context.Background(), key)
		return runFinishedMsg{err: err}
	}
}

func exportPNGCmd(sess *session.Session, repo core.RepoRef) tea.Cmd {
	return func() tea.Msg {
		path := util.ExportFileName(repo.FullName())
		err := sess.ExportPNG(context.Background(), path)
		return exportDoneMsg{path: path, err: err}
	}
}
