package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStreamCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stream [id]",
		Short: "List value streams, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.portfolio(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				o, err := svc.Overview(cmd.Context(), app.overviewRequest(false))
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatStreamList(o.ValueStreams))
				return nil
			}

			vs, err := svc.ValueStream(cmd.Context(), args[0], app.overviewRequest(false).TopN)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatValueStreamDetail(vs))
			fmt.Fprintf(out, "\n%s\n", formatter.Header("Top Products by Benefit"))
			fmt.Fprint(out, formatter.FormatTopProducts(vs.TopProducts))
			return nil
		},
	}
}

func formatStreamList(streams []app.ValueStreamSummary) string {
	if len(streams) == 0 {
		return formatter.Dim("No value streams") + "\n"
	}
	rows := make([][]string, 0, len(streams))
	for _, vs := range streams {
		rows = append(rows, []string{
			vs.ID,
			vs.Name,
			formatter.ManagerName(vs.Manager),
			fmt.Sprintf("%d", vs.ProductCount),
			formatter.Millions(vs.TotalBenefit),
			formatter.PerMonth(vs.MonthlyCloudCost),
			formatter.ROI(vs.ROI),
			fmt.Sprintf("%d", vs.AtRiskCount),
		})
	}
	return formatter.RenderAlignedTable(
		[]string{"ID", "Name", "PM", "Products", "Benefit", "Cloud", "ROI", "At Risk"},
		rows,
		[]formatter.Align{
			formatter.AlignLeft, formatter.AlignLeft, formatter.AlignLeft, formatter.AlignRight,
			formatter.AlignRight, formatter.AlignRight, formatter.AlignRight, formatter.AlignRight,
		},
	)
}

func newProductCmd(app *App) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "product <id>",
		Short: "Show a product's metrics, roadmap, risks and stakeholders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.portfolio(cmd.Context())
			if err != nil {
				return err
			}
			d, err := svc.Product(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if section == "" {
				fmt.Fprint(out, formatter.FormatProductDetail(d, app.now()))
				return nil
			}
			s, err := parseSection(section)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.ProductHeader(d))
			fmt.Fprintf(out, "\n%s\n", formatter.Header(s.String()))
			fmt.Fprint(out, formatter.FormatSection(d, s, app.now()))
			return nil
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "only show one section: roadmap, risks, stakeholders or raci")
	return cmd
}

func parseSection(s string) (formatter.ProductSection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "roadmap", "milestones":
		return formatter.SectionMilestones, nil
	case "risks":
		return formatter.SectionRisks, nil
	case "stakeholders":
		return formatter.SectionStakeholders, nil
	case "raci":
		return formatter.SectionRACI, nil
	default:
		return 0, fmt.Errorf("unknown section %q (expected roadmap, risks, stakeholders or raci)", s)
	}
}
