//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/repograph/internal/app"
	"github.com/sevigo/repograph/internal/config"
	"github.com/sevigo/repograph/internal/db"
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		config.LoadConfig,
		db.NewDatabase,
		provideDatabasePath,
		provideHistory,
		provideBackend,
		provideCredentials,
		provideExporter,
		provideGitHubClient,
		provideLoggerConfig,
		provideLogWriter,
		provideSlogLogger,
	)
	return &app.App{}, nil, nil
}
