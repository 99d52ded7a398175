package wire

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/sevigo/repograph/internal/api"
	"github.com/sevigo/repograph/internal/config"
	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/db"
	"github.com/sevigo/repograph/internal/export"
	"github.com/sevigo/repograph/internal/github"
	"github.com/sevigo/repograph/internal/logger"
	"github.com/sevigo/repograph/internal/storage"
	"github.com/sevigo/repograph/internal/store"
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) io.Writer {
	switch cfg.Logging.Output {
	case "stdout":
		return os.Stdout
	case "file":
		f, _ := os.OpenFile("repograph.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		return f
	default:
		return os.Stderr
	}
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}

func provideBackend(cfg *config.Config, slogLogger *slog.Logger) *api.Client {
	return api.NewClient(cfg.APIBaseURL, slogLogger)
}

func provideCredentials() (*store.Credentials, error) {
	local, err := store.NewLocal()
	if err != nil {
		return nil, err
	}
	return store.NewCredentials(local), nil
}

func provideDatabasePath(cfg *config.Config) (string, error) {
	if cfg.DatabasePath != "" {
		return cfg.DatabasePath, nil
	}
	return db.DefaultPath()
}

func provideHistory(dbConn *db.DB) storage.Store {
	return storage.NewStore(dbConn.DB)
}

func provideExporter(cfg *config.Config, slogLogger *slog.Logger) *export.Renderer {
	return export.NewRenderer(cfg.MermaidTheme, slogLogger)
}

// provideGitHubClient authenticates with the stored PAT when one exists;
// otherwise the client runs unauthenticated with public-repo access only.
func provideGitHubClient(ctx context.Context, creds *store.Credentials, slogLogger *slog.Logger) (github.Client, error) {
	token, err := creds.PAT(core.ProviderGitHub)
	if err != nil {
		return nil, err
	}
	return github.NewClient(ctx, token, slogLogger), nil
}
