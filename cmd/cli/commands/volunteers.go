package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	corecmd "github.com/jakechorley/volunteer-manager/pkg/core/commands"
	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

// VolunteersCmd creates the volunteers command
func VolunteersCmd(app *AppContext) *cobra.Command {
	var asCommands bool

	cmd := &cobra.Command{
		Use:   "volunteers",
		Short: "List all stored volunteers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printVolunteers(app.Out, app.Model.Volunteers(), asCommands)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCommands, "as-commands", false, "Print each volunteer as the vcreate command that recreates it")

	return cmd
}

func printVolunteers(out io.Writer, volunteers []model.Volunteer, asCommands bool) {
	if asCommands {
		for _, v := range volunteers {
			fmt.Fprintln(out, corecmd.VolunteerCreateText(v))
		}
		return
	}

	fmt.Fprintf(out, "\nFound %d volunteers:\n\n", len(volunteers))
	if len(volunteers) == 0 {
		return
	}

	t := newTable("#", "Name", "Phone", "Email", "Address", "Skills")
	for i, v := range volunteers {
		t.add(false,
			strconv.Itoa(i+1),
			v.Name().String(),
			v.Phone().String(),
			v.Email().String(),
			v.Address().String(),
			joinStrings(v.Skills()),
		)
	}
	t.write(out)
}

func joinStrings[T interface{ String() string }](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
