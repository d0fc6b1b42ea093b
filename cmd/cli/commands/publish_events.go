package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/volunteer-manager/pkg/core/services"
)

// PublishEventsCmd creates the publish-events command
func PublishEventsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publish-events",
		Short: "Publish the event list to the configured sheet tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.SheetsClient()
			if err != nil {
				return err
			}

			count, err := services.PublishEvents(app.Ctx, app.Model, client, app.Cfg, time.Now(), app.Logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "\n✓ Published %d events to %q\n\n", count, app.Cfg.Sheets.PublishTab)
			return nil
		},
	}
}
