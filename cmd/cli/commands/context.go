package commands

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-manager/internal/config"
	"github.com/jakechorley/volunteer-manager/pkg/clients/sheetsclient"
	"github.com/jakechorley/volunteer-manager/pkg/core/model"
	"github.com/jakechorley/volunteer-manager/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Env    string
	Cfg    *config.Config
	Store  db.SnapshotStore
	Model  *model.Model
	Logger *zap.Logger
	Ctx    context.Context
	Out    io.Writer

	// closeStore releases the store's connections, if it holds any
	closeStore   func()
	sheetsClient *sheetsclient.Client
}

// SheetsClient returns the Google Sheets client, authenticating on first use.
// Only the sheets backend and the import and publish commands need it.
func (app *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if app.sheetsClient != nil {
		return app.sheetsClient, nil
	}

	app.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	app.sheetsClient = client
	return client, nil
}

// Close releases the store and flushes the logger
func (app *AppContext) Close() {
	if app.closeStore != nil {
		app.closeStore()
	}
	if app.Logger != nil {
		_ = app.Logger.Sync()
	}
}
