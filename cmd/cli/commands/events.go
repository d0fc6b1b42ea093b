package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	corecmd "github.com/jakechorley/volunteer-manager/pkg/core/commands"
	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

// EventsCmd creates the events command
func EventsCmd(app *AppContext) *cobra.Command {
	var asCommands bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List all stored events with their next occurrence",
		Long: `List all stored events. Recurring events show when they next happen;
events with no future occurrence are shown faded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printEvents(app.Out, app.Model.Events(), time.Now(), asCommands)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCommands, "as-commands", false, "Print each event as the ecreate command that recreates it")

	return cmd
}

func printEvents(out io.Writer, events []model.Event, now time.Time, asCommands bool) {
	if asCommands {
		for _, e := range events {
			fmt.Fprintln(out, corecmd.EventCreateText(e))
		}
		return
	}

	fmt.Fprintf(out, "\nFound %d events:\n\n", len(events))
	if len(events) == 0 {
		return
	}

	t := newTable("#", "Name", "Date and time", "Next", "Location", "Roles", "Budget")
	for i, e := range events {
		next, upcoming := e.NextOccurrence(now)
		nextCell := "-"
		if upcoming {
			nextCell = next.Format(model.DateAndTimeLayout)
		}

		budgetCell := ""
		if budget, ok := e.Budget(); ok {
			budgetCell = budget.String()
		}

		t.add(!upcoming,
			strconv.Itoa(i+1),
			e.Name().String(),
			e.DateAndTime().String(),
			nextCell,
			e.Location().String(),
			joinStrings(e.Roles()),
			budgetCell,
		)
	}
	t.write(out)
}
