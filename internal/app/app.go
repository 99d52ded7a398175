// Package app initializes and orchestrates the main components of the
// repograph application. It wires together the configuration, backend
// client, credential store, and local history database.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/repograph/internal/api"
	"github.com/sevigo/repograph/internal/config"
	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/db"
	"github.com/sevigo/repograph/internal/export"
	"github.com/sevigo/repograph/internal/github"
	"github.com/sevigo/repograph/internal/preview"
	"github.com/sevigo/repograph/internal/session"
	"github.com/sevigo/repograph/internal/storage"
	"github.com/sevigo/repograph/internal/store"
)

// App holds the main application components.
type App struct {
	Cfg      *config.Config
	Backend  *api.Client
	Creds    *store.Credentials
	History  storage.Store
	DB       *db.DB
	Exporter *export.Renderer
	GitHub   github.Client
	Logger   *slog.Logger
}

// NewApp assembles the application from its constructed components.
func NewApp(
	cfg *config.Config,
	backend *api.Client,
	creds *store.Credentials,
	history storage.Store,
	dbConn *db.DB,
	exporter *export.Renderer,
	ghClient github.Client,
	logger *slog.Logger,
) *App {
	return &App{
		Cfg:      cfg,
		Backend:  backend,
		Creds:    creds,
		History:  history,
		DB:       dbConn,
		Exporter: exporter,
		GitHub:   ghClient,
		Logger:   logger,
	}
}

// NewSession creates a generation session for the repository.
func (a *App) NewSession(repo core.RepoRef) *session.Session {
	return session.New(repo, a.Backend, a.Creds, a.History, a.Exporter, a.Logger)
}

// NewPreviewServer creates a local preview server on the configured port.
func (a *App) NewPreviewServer() *preview.Server {
	return preview.NewServer(a.Cfg.PreviewPort, a.Cfg.MermaidTheme, a.Logger)
}

// ValidateRepo checks that the repository exists on GitHub before any
// generation work starts. Azure DevOps repositories are not validated;
// the backend reports access errors for those.
func (a *App) ValidateRepo(ctx context.Context, repo core.RepoRef) (bool, error) {
	if repo.Provider != core.ProviderGitHub {
		return true, nil
	}
	return a.GitHub.RepoExists(ctx, repo.Owner, repo.Repo)
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.Logger.Debug("closing database connection")
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}
