package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type choice int

const (
	choiceInvalid choice = iota
	choiceLoad
	choiceReport
	choiceExit
)

func parseChoice(s string) choice {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "load":
		return choiceLoad
	case "2", "report", "generate", "generate reports":
		return choiceReport
	case "3", "exit", "quit":
		return choiceExit
	default:
		return choiceInvalid
	}
}

type ShellCmd struct {
	app *App
}

func NewShellCmd(app *App) *cobra.Command {
	sc := &ShellCmd{app: app}
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu (default when no command is given)",
		Args:  cobra.NoArgs,
		RunE:  sc.Run,
	}
}

func (sc *ShellCmd) Run(cmd *cobra.Command, _ []string) error {
	return sc.app.RunShell(cmd.Context())
}

// RunShell serves the interactive menu until exit or end of input.
// Failed operations are reported and the menu is shown again.
func (a *App) RunShell(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	scanner := bufio.NewScanner(a.In)

	readLine := func(prompt string) (string, bool) {
		fmt.Fprint(a.Out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(a.Out)
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(a.Out, "Select an option:")
		fmt.Fprintln(a.Out, "[1] Load the file")
		fmt.Fprintln(a.Out, "[2] Generate Reports")
		fmt.Fprintln(a.Out, "[3] Exit")
		line, ok := readLine("Enter Choice: ")
		if !ok {
			return scanner.Err()
		}

		var err error
		switch parseChoice(line) {
		case choiceLoad:
			path, ok := readLine("Enter CSV filename: ")
			if !ok {
				return scanner.Err()
			}
			err = a.LoadFiles(ctx, []string{path}, a.AppendLoads)
		case choiceReport:
			err = a.GenerateReports(ctx)
		case choiceExit:
			return nil
		default:
			fmt.Fprintln(a.Out, "Invalid choice. Please try again.")
		}

		if err != nil {
			logger.Error().Err(err).Msg("operation failed")
			fmt.Fprintf(a.Out, "Error: %v\n", err)
		}
		fmt.Fprintln(a.Out)
	}
}
