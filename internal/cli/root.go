package cli

import (
	"io"
	"os"
	"time"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/config"
	"github.com/alexanderramin/horizon/internal/service"
	"github.com/spf13/cobra"
)

// App holds the configuration and services used by CLI commands. Services
// left nil are built lazily from Config on first use.
type App struct {
	Config    *config.Config
	Portfolio service.PortfolioService
	Import    app.ImportSnapshotUseCase
	Observer  service.UseCaseObserver

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now is the clock used for relative dates. Nil means time.Now.
	Now func() time.Time
	// LogOut receives use-case logs. Nil means stderr.
	LogOut io.Writer
}

type globalOptions struct {
	configPath  string
	source      sourceValue
	dataPath    string
	dbPath      string
	topN        int
	view        viewModeValue
	logUseCases bool
}

// NewRootCmd creates the top-level "horizon" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "horizon",
		Short: "Portfolio dashboard for value streams, products and horizons",
		Long: `horizon summarizes a product portfolio: value streams, product horizons,
estimated benefit, cloud costs and risk exposure.

Run without a subcommand in a terminal to open the interactive dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.configure(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.interactive() {
				return runTUI(app)
			}
			return runOverview(cmd, app, false)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default ~/.horizon/config.toml)")
	pf.Var(&opts.source, "source", "snapshot source: fixture, file or sqlite")
	pf.StringVar(&opts.dataPath, "data", "", "snapshot file for the file source (.json, .yaml)")
	pf.StringVar(&opts.dbPath, "db", "", "snapshot store for the sqlite source and import")
	pf.IntVar(&opts.topN, "top", 0, "number of top products to rank")
	pf.Var(&opts.view, "view", "overview layout: executive or detailed")
	pf.BoolVar(&opts.logUseCases, "log-use-cases", false, "log each use case to stderr")

	root.AddCommand(
		newOverviewCmd(app),
		newHorizonsCmd(app),
		newTreeCmd(app),
		newValidateCmd(app),
		newStreamCmd(app),
		newProductCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newMetricsCmd(app),
		newPickCmd(app),
		newTUICmd(app),
	)

	return root
}

// configure resolves the configuration once, applies flags that were set on
// the command line and validates the result.
func (a *App) configure(cmd *cobra.Command, opts *globalOptions) error {
	if a.Config == nil {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		a.Config = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		a.Config.Source = config.Source(opts.source)
	}
	if flags.Changed("data") {
		a.Config.DataPath = opts.dataPath
		if !flags.Changed("source") {
			a.Config.Source = config.SourceFile
		}
	}
	if flags.Changed("db") {
		a.Config.DBPath = opts.dbPath
	}
	if flags.Changed("top") {
		a.Config.TopN = opts.topN
	}
	if flags.Changed("view") {
		a.Config.View = config.ViewMode(opts.view)
	}
	if flags.Changed("log-use-cases") {
		a.Config.LogUseCases = opts.logUseCases
	}

	if err := a.Config.Validate(); err != nil {
		return err
	}

	if a.Observer == nil && a.Config.LogUseCases {
		out := a.LogOut
		if out == nil {
			out = os.Stderr
		}
		a.Observer = service.NewLogUseCaseObserver(out)
	}
	return nil
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
