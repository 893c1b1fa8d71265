package commands

import (
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	inputs []string
	app    *App
}

func NewReportCmd(app *App) *cobra.Command {
	rc := &ReportCmd{app: app}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Load project files and generate both reports",
		RunE:  rc.run,
	}

	cmd.Flags().StringSliceVarP(&rc.inputs, "input", "i", nil, "Project CSV file(s) to load before reporting")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := rc.app.LoadFiles(ctx, rc.inputs, rc.app.AppendLoads); err != nil {
		return err
	}
	return rc.app.GenerateReports(ctx)
}
