package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/volunteer-manager/pkg/core/services"
)

// ImportVolunteersCmd creates the import-volunteers command
func ImportVolunteersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import-volunteers",
		Short: "Add the volunteers on the configured roster sheet",
		Long: `Read the roster tab configured under sheets.rosterSheetID and sheets.rosterTab
and add every valid volunteer not already in the list. Invalid rows are reported and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.SheetsClient()
			if err != nil {
				return err
			}

			result, err := services.ImportVolunteers(app.Ctx, app.Store, app.Model, client, app.Cfg, app.Logger)
			if err != nil && !errors.Is(err, services.ErrSave) {
				return err
			}

			printImportResult(app, result)
			return err
		},
	}
}

func printImportResult(app *AppContext, result *services.ImportResult) {
	fmt.Fprintf(app.Out, "\n✓ Roster imported: %d added, %d already present, %d invalid\n\n",
		len(result.Added), len(result.Duplicates), len(result.Invalid))

	for _, name := range result.Added {
		fmt.Fprintf(app.Out, "  + %s\n", name)
	}

	if len(result.Invalid) > 0 {
		fmt.Fprintln(app.Out, "\nInvalid rows:")
		for _, row := range result.Invalid {
			fmt.Fprintf(app.Out, "  ✗ row %d (%s): %s\n", row.Row, row.Name, row.Message)
		}
	}
	fmt.Fprintln(app.Out)
}
