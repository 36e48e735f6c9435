package cli

import (
	"fmt"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newMetricsCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Export portfolio gauges in Prometheus text format",
		Long: `metrics computes the portfolio overview and writes it as Prometheus
gauges. With --out, or [metrics] textfile in the config, the file is
written atomically for the node_exporter textfile collector; otherwise the
exposition is printed to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.portfolio(cmd.Context())
			if err != nil {
				return err
			}
			o, err := svc.Overview(cmd.Context(), app.overviewRequest(false))
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics.NewPortfolioGauges(reg).Observe(o)

			path := out
			if path == "" {
				path = app.Config.Metrics.Textfile
			}
			if path == "" {
				return metrics.Write(cmd.OutOrStdout(), reg)
			}
			if err := metrics.WriteTextfile(path, reg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote metrics to %s\n", formatter.StyleGreen.Render("✔"), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "textfile path (default [metrics] textfile)")
	return cmd
}
