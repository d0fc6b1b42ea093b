package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	corecmd "github.com/jakechorley/volunteer-manager/pkg/core/commands"
	"github.com/jakechorley/volunteer-manager/pkg/core/services"
)

// RunCmd creates the run command, which executes one line of command text
func RunCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command text...>",
		Short: "Execute one command, e.g. run vcreate n:Alice p:98765432 e:alice@example.com a:123 Street",
		Long: `Execute one command against the stored volunteer and event lists.
Changes are saved before the command returns. Use "run help" to list the commands.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := execute(app, strings.Join(args, " "))
			return err
		},
	}
}

// execute runs text and prints the feedback, returning the command error if there was one.
// A failed save still prints the feedback since the change was made in memory.
func execute(app *AppContext, text string) (corecmd.Result, error) {
	result, err := services.ExecuteCommand(app.Ctx, app.Store, app.Model, app.Logger, text)
	if err != nil && !errors.Is(err, services.ErrSave) {
		return result, err
	}

	fmt.Fprintln(app.Out, result.Feedback)
	return result, err
}
