package commands

import (
	"github.com/spf13/cobra"
)

type LoadCmd struct {
	app *App
}

func NewLoadCmd(app *App) *cobra.Command {
	lc := &LoadCmd{app: app}
	return &cobra.Command{
		Use:   "load FILE...",
		Short: "Load and validate project CSV files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  lc.run,
	}
}

func (lc *LoadCmd) run(cmd *cobra.Command, args []string) error {
	return lc.app.LoadFiles(cmd.Context(), args, lc.app.AppendLoads)
}
