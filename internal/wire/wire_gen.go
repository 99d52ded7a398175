// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/repograph/internal/app"
	"github.com/sevigo/repograph/internal/config"
	"github.com/sevigo/repograph/internal/db"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	loggerConfig := provideLoggerConfig(cfg)
	logWriter := provideLogWriter(cfg)
	slogLogger := provideSlogLogger(loggerConfig, logWriter)

	// Credential store
	creds, err := provideCredentials()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	// Database
	dbPath, err := provideDatabasePath(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve database path: %w", err)
	}
	dbConn, dbCleanup, err := db.NewDatabase(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// History store
	history := provideHistory(dbConn)

	// Backend client
	backend := provideBackend(cfg, slogLogger)

	// PNG exporter
	exporter := provideExporter(cfg, slogLogger)

	// GitHub client
	ghClient, err := provideGitHubClient(ctx, creds, slogLogger)
	if err != nil {
		dbCleanup()
		return nil, nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	// App
	application := app.NewApp(cfg, backend, creds, history, dbConn, exporter, ghClient, slogLogger)

	cleanup := func() {
		dbCleanup()
	}

	return application, cleanup, nil
}
