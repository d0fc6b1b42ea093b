package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (load once, run multiple commands)",
		Long: `Start an interactive session where every line is run as a command against the loaded lists.
The session will keep running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(app, os.Stdin)
		},
	}
}

// runSession reads command lines from in until exit, quit or end of input.
// Command errors are printed and the session carries on.
func runSession(app *AppContext, in io.Reader) error {
	fmt.Fprintln(app.Out, "\n🚀 Starting interactive session...")
	fmt.Fprintf(app.Out, "%d volunteers and %d events loaded\n", len(app.Model.Volunteers()), len(app.Model.Events()))
	fmt.Fprintln(app.Out, "Type 'help' for available commands, 'exit' or 'quit' to leave")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(app.Out, "> ")

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "quit" {
			fmt.Fprintln(app.Out, "👋 Goodbye!")
			return nil
		}

		result, err := execute(app, line)
		if err != nil {
			fmt.Fprintf(app.Out, "❌ %v\n\n", err)
			continue
		}
		if result.Exit {
			return nil
		}
		fmt.Fprintln(app.Out)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}
