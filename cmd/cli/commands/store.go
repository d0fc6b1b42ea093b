package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-manager/internal/config"
	"github.com/jakechorley/volunteer-manager/pkg/core/services"
	"github.com/jakechorley/volunteer-manager/pkg/db"
	"github.com/jakechorley/volunteer-manager/pkg/jsonfile"
	"github.com/jakechorley/volunteer-manager/pkg/postgres"
	"github.com/jakechorley/volunteer-manager/pkg/sheetssql"
	"github.com/jakechorley/volunteer-manager/pkg/sqlite"
)

// OpenStore connects to the configured storage backend and loads the model from it
func (app *AppContext) OpenStore() error {
	backend := app.Cfg.Storage.Backend
	app.Logger.Info("Opening store", zap.String("backend", backend))

	switch backend {
	case config.BackendFile:
		app.Store = jsonfile.NewStore(app.Cfg.UserPrefs().DataPath)

	case config.BackendSQLite:
		store, err := sqlite.NewStore(app.Ctx, app.Cfg.Storage.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite store: %w", err)
		}
		app.Store = store
		app.closeStore = func() { _ = store.Close() }

	case config.BackendPostgres:
		store, err := postgres.NewDB(app.Ctx, app.Cfg.Storage.DatabaseURL, app.Logger)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		app.Store = store
		app.closeStore = store.Close

	case config.BackendSheets:
		store, err := app.openSheetsStore()
		if err != nil {
			return err
		}
		app.Store = store

	default:
		return fmt.Errorf("unknown storage backend %q", backend)
	}

	m, err := services.LoadModel(app.Ctx, app.Store, app.Cfg.UserPrefs(), app.Logger)
	if err != nil {
		return err
	}
	app.Model = m

	return nil
}

func (app *AppContext) openSheetsStore() (*db.DB, error) {
	client, err := app.SheetsClient()
	if err != nil {
		return nil, err
	}

	schema, err := db.Schema()
	if err != nil {
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}
	app.Logger.Debug("Database schema created", zap.Int("tables", len(schema.Tables)))

	app.Logger.Info("Connecting to database", zap.String("spreadsheet_id", app.Cfg.Storage.SpreadsheetID))
	ssqlDB, err := sheetssql.NewDB(client, app.Cfg.Storage.SpreadsheetID, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return db.NewDB(ssqlDB), nil
}
