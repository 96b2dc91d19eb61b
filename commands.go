package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"catalog-dashboard/api"
	"catalog-dashboard/config"
	"catalog-dashboard/models"
	"catalog-dashboard/services"
	"catalog-dashboard/storage"
	"catalog-dashboard/utils"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg    *config.Config
	logger *utils.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var dataPath string

	root := &cobra.Command{
		Use:   "catalog-dashboard",
		Short: "Analytics dashboard over a video catalog export",
		Long: `catalog-dashboard loads a catalog CSV once, derives normalised columns
and answers filter selections with summary counters and chart tables,
either as a terminal report or over a JSON HTTP API.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.cfg = config.Load()
			if cmd.Flags().Changed("data") {
				a.cfg.DataPath = dataPath
			}
			// logs go to stderr so report output stays clean on stdout
			a.logger = utils.NewLoggerTo(cmd.ErrOrStderr()).SetDebug(a.cfg.Debug)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&dataPath, "data", "", "path to the catalog CSV (default: $DATA_PATH)")

	root.AddCommand(newReportCmd(a))
	root.AddCommand(newOptionsCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}

// openSource picks the configured catalog backend.
func (a *app) openSource(ctx context.Context) (storage.TitleSource, string, error) {
	switch a.cfg.DataSource {
	case "", "csv":
		return storage.NewCSVReader(a.cfg.DataPath, a.logger), a.cfg.DataPath, nil
	case "postgres":
		src, err := storage.NewPostgresReader(ctx, a.cfg.DSN(), a.cfg.PostgresTable, a.cfg.MaxRetries, a.logger)
		if err != nil {
			return nil, "", err
		}
		return src, "postgres table " + a.cfg.PostgresTable, nil
	default:
		return nil, "", fmt.Errorf("unknown DATA_SOURCE %q (want csv or postgres)", a.cfg.DataSource)
	}
}

// loadDashboard runs load -> enrich once and wraps the result.
func (a *app) loadDashboard(ctx context.Context) (*services.DashboardService, error) {
	src, where, err := a.openSource(ctx)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	raw, found, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("dataset not found at %s", where)
	}

	ds := services.NewEnricher(a.logger).Enrich(raw)
	agg := services.NewAggregator(a.logger, services.SampleConfig{
		Size:    a.cfg.SampleSize,
		Seed:    a.cfg.SampleSeed,
		MinYear: a.cfg.SampleMinYear,
	})
	return services.NewDashboardService(ds, agg, a.logger), nil
}

type reportFlags struct {
	types     []string
	yearMin   int
	yearMax   int
	countries []string
	ratings   []string
	genres    []string
	title     string
	format    string
}

func newReportCmd(a *app) *cobra.Command {
	f := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard for a filter selection",
		Long: `Print the summary counters and all chart tables for the titles matching
the given filters. Unset filters select everything.`,
		Example: `  catalog-dashboard report --type Movie --year-min 2015
  catalog-dashboard report --country India --genre Dramas --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.format != "text" && f.format != "json" {
				return fmt.Errorf("unknown format %q (want text or json)", f.format)
			}

			svc, err := a.loadDashboard(cmd.Context())
			if err != nil {
				return err
			}

			criteria := f.criteria(cmd, svc.DefaultCriteria())
			d := svc.Render(criteria)

			p := services.NewReportPrinter(cmd.OutOrStdout())
			if f.format == "json" {
				return p.PrintJSON(d)
			}
			p.Print(d)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&f.types, "type", nil, "title types to include (default: all)")
	cmd.Flags().IntVar(&f.yearMin, "year-min", 0, "earliest release year (default: dataset minimum)")
	cmd.Flags().IntVar(&f.yearMax, "year-max", 0, "latest release year (default: dataset maximum)")
	cmd.Flags().StringSliceVar(&f.countries, "country", nil, "primary countries to include")
	cmd.Flags().StringSliceVar(&f.ratings, "rating", nil, "ratings to include")
	cmd.Flags().StringSliceVar(&f.genres, "genre", nil, "main genres to include")
	cmd.Flags().StringVar(&f.title, "title", "", "case-insensitive title substring")
	cmd.Flags().StringVarP(&f.format, "format", "f", "text", "output format (text|json)")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// criteria overlays the flags that were set on the defaults.
func (f *reportFlags) criteria(cmd *cobra.Command, def models.Criteria) models.Criteria {
	flags := cmd.Flags()
	if flags.Changed("type") {
		def.Types = f.types
	}
	if flags.Changed("year-min") {
		def.YearRange.Min = f.yearMin
	}
	if flags.Changed("year-max") {
		def.YearRange.Max = f.yearMax
	}
	def.Countries = f.countries
	def.Ratings = f.ratings
	def.Genres = f.genres
	def.TitleContains = f.title
	return def
}

func newOptionsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the values available for each filter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.loadDashboard(cmd.Context())
			if err != nil {
				return err
			}
			p := services.NewReportPrinter(cmd.OutOrStdout())
			if format == "json" {
				return p.PrintJSON(svc.Options())
			}
			p.PrintOptions(svc.Options())
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text|json)")
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as a JSON HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTPAddr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, err := a.loadDashboard(ctx)
			if err != nil {
				return err
			}
			a.logger.Info("=== Catalog dashboard ready: %d titles ===", svc.Len())

			return api.Serve(ctx, a.cfg.HTTPAddr, api.NewRouter(svc, a.logger), a.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: $HTTP_ADDR)")
	return cmd
}
