package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/flood-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/flood-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/flood-atlas/pkg/services/config"
	"github.com/de-tools/flood-atlas/pkg/services/ingest"
	"github.com/de-tools/flood-atlas/pkg/services/report"
	"github.com/de-tools/flood-atlas/pkg/store/project"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLI represents the command-line interface
type CLI struct {
	app     *commands.App
	store   project.Store
	viper   *viper.Viper
	cfgPath string
	errOut  io.Writer
	rootCmd *cobra.Command
}

// Options contain the I/O streams of the CLI
type Options struct {
	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance with an empty record store
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{
		app:    &commands.App{In: opts.Input, Out: opts.Output},
		store:  project.NewStore(),
		viper:  config.New(),
		errOut: opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, mainly for tests
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	shell := commands.NewShellCmd(cli.app)

	cmd := &cobra.Command{
		Use:               "flood-atlas",
		Short:             "Flood mitigation project efficiency and contractor reports",
		Args:              cobra.NoArgs,
		PersistentPreRunE: cli.setup,
		RunE:              shell.RunE,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	cmd.SetOut(cli.app.Out)
	cmd.SetErr(cli.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.cfgPath, "config", "c", "", "Path to a YAML config file")
	flags.String("output-dir", ".", "Directory the report CSV files are written to")
	flags.Int("limit", 15, "Maximum number of ranked contractors, 0 for all")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.BoolVar(&cli.app.AppendLoads, "append", false, "Append loaded files to the current records instead of replacing them")

	_ = cli.viper.BindPFlag(config.KeyOutputDir, flags.Lookup("output-dir"))
	_ = cli.viper.BindPFlag(config.KeyContractorLimit, flags.Lookup("limit"))
	_ = cli.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	cmd.AddCommand(shell)
	cmd.AddCommand(commands.NewLoadCmd(cli.app))
	cmd.AddCommand(commands.NewReportCmd(cli.app))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cli.viper, cli.cfgPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.errOut}).
		Level(level).
		With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	cli.app.Loader = ingest.NewLoader(cli.store)
	cli.app.Reports = report.NewController(cli.store, cfg.ContractorLimit)
	cli.app.Console = export.NewReporter(cli.app.Out)
	cli.app.Files = export.NewFileWriter(cfg.OutputDir)

	logger.Debug().
		Str("output_dir", cfg.OutputDir).
		Int("contractor_limit", cfg.ContractorLimit).
		Msg("configuration loaded")

	return nil
}
