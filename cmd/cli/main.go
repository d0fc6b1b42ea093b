package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-manager/cmd/cli/commands"
	"github.com/jakechorley/volunteer-manager/internal/config"
	"github.com/jakechorley/volunteer-manager/pkg/utils/logging"
)

var env string

func main() {
	app := &commands.AppContext{
		Ctx: context.Background(),
		Out: os.Stdout,
	}

	rootCmd := &cobra.Command{
		Use:          "volunteers-cli",
		Short:        "Volunteer Manager CLI - Manage volunteers and events",
		Long:         `A CLI tool for keeping a list of volunteers and the events they help run.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	_ = rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.RunCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))
	rootCmd.AddCommand(commands.VolunteersCmd(app))
	rootCmd.AddCommand(commands.EventsCmd(app))
	rootCmd.AddCommand(commands.ImportVolunteersCmd(app))
	rootCmd.AddCommand(commands.PublishEventsCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and store, then loads the lists
func initApp(app *commands.AppContext) error {
	var err error
	app.Env = env

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))

	app.Cfg, err = config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully", zap.String("backend", app.Cfg.Storage.Backend))

	return app.OpenStore()
}
