package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/de-tools/flood-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/flood-atlas/pkg/services/ingest"
	"github.com/de-tools/flood-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

// App bundles the services shared by all commands of one process.
// It is populated by the root command before any subcommand runs.
type App struct {
	Loader      ingest.Loader
	Reports     report.Controller
	Console     *export.Reporter
	Files       *export.FileWriter
	AppendLoads bool

	In  io.Reader
	Out io.Writer
}

// LoadFiles loads paths in order. Unless appending, the first file replaces
// the store and the following ones are added to it.
func (a *App) LoadFiles(ctx context.Context, paths []string, appendAll bool) error {
	for i, path := range paths {
		mode := ingest.ModeAppend
		if i == 0 && !appendAll {
			mode = ingest.ModeReplace
		}

		res, err := a.Loader.Load(ctx, path, mode)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.Out, "Processing dataset... (%d rows loaded, %d filtered for 2021-2023)\n",
			res.TotalRows, res.AcceptedRows)
		if res.ErrorCount > 0 {
			fmt.Fprintf(a.Out, "%d parse/validation errors encountered.\n", res.ErrorCount)
		}
	}
	return nil
}

// GenerateReports builds both reports, writes the CSV files and prints the
// tables. With an empty store it only prints a notice.
func (a *App) GenerateReports(ctx context.Context) error {
	reports, err := a.Reports.Generate(ctx)
	if errors.Is(err, report.ErrNoData) {
		fmt.Fprintln(a.Out, "No data loaded. Please choose [1] Load the file first.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("generate reports: %w", err)
	}

	fmt.Fprintln(a.Out, "Generating reports...")

	paths, err := a.Files.Write(reports)
	if err != nil {
		return fmt.Errorf("export reports: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Strs("files", paths).Msg("reports exported")

	return a.Console.Handle(reports)
}
