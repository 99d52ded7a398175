package main

import (
	"github.com/sevigo/repograph/internal/app"
	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/github"
	"github.com/sevigo/repograph/internal/session"
)

// Indicates that the core application services have been initialized and
// the target repository has been resolved.
type appInitializedMsg struct {
	app  *app.App
	repo core.RepoRef
	err  error
}

// Carries repository metadata for the status line. A nil info means the
// lookup failed or the provider has no metadata API; the UI just omits it.
type repoInfoMsg struct {
	info *github.RepoInfo
}

// Carries one streamed snapshot from the running session.
type sessionUpdateMsg session.Snapshot

// Indicates that a session operation (initial load, modify, regenerate)
// has returned. The snapshot carries the terminal state; err only reports
// failures that never produced one.
type runFinishedMsg struct{ err error }

// Indicates that a PNG export has finished.
type exportDoneMsg struct {
	path string
	err  error
}

// A generic error message for reporting failures from commands.
type errorMsg struct{ err error }

func (e errorMsg) Error() string {
	return e.err.Error()
}
