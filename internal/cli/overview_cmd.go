package cli

import (
	"fmt"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOverviewCmd(app *App) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show portfolio key metrics, horizons and value streams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOverview(cmd, app, check)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "append reconciliation of stored totals")
	return cmd
}

func runOverview(cmd *cobra.Command, app *App, check bool) error {
	svc, err := app.portfolio(cmd.Context())
	if err != nil {
		return err
	}
	o, err := svc.Overview(cmd.Context(), app.overviewRequest(check))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverview(o, app.Config.View))
	return nil
}

func newHorizonsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "horizons",
		Short: "Show how products are distributed across horizons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.portfolio(cmd.Context())
			if err != nil {
				return err
			}
			o, err := svc.Overview(cmd.Context(), app.overviewRequest(false))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Horizon Distribution"))
			fmt.Fprint(out, formatter.FormatHorizons(o.Horizons))
			fmt.Fprintf(out, "\n%s\n", formatter.Dim(fmt.Sprintf("%d products across %d value streams", o.ProductCount, o.ValueStreamCount)))
			return nil
		},
	}
}

func newTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show value streams and their products as a tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.portfolio(cmd.Context())
			if err != nil {
				return err
			}
			o, err := svc.Overview(cmd.Context(), app.overviewRequest(false))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPortfolioTree(o.ValueStreams))
			return nil
		},
	}
}

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check stored value stream totals and references against their products",
		Long: `validate compares every value stream's stored benefit and cloud cost
totals with the sum of its products, and checks product and manager
references. It exits non-zero when anything disagrees.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.portfolio(cmd.Context())
			if err != nil {
				return err
			}
			o, err := svc.Overview(cmd.Context(), app.overviewRequest(true))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDiscrepancies(o.Discrepancies))
			if n := len(o.Discrepancies); n > 0 {
				return fmt.Errorf("portfolio has %d discrepancies", n)
			}
			return nil
		},
	}
}
