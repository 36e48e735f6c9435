package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/config"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/portfolio"
	"github.com/charmbracelet/lipgloss"
)

const (
	metricCardWidth = 32
	horizonBarWidth = 20
)

// MetricCard renders one labelled key figure with a caption underneath.
func MetricCard(label, value, caption string) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(metricCardWidth)
	return card.Render(Dim(label) + "\n" + StyleBold.Render(value) + "\n" + Dim(caption))
}

// KeyMetrics renders the four portfolio figures side by side.
func KeyMetrics(o *app.PortfolioOverview) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		MetricCard("Total Products", fmt.Sprintf("%d", o.ProductCount),
			fmt.Sprintf("Across %d value streams", o.ValueStreamCount)),
		MetricCard("Total Benefit", Millions(o.TotalBenefit), "Estimated annual benefit"),
		MetricCard("Cloud Costs", Thousands(o.MonthlyCloudCost), "Monthly cloud spend"),
		MetricCard("ROI", ROI(o.ROI), "Annual benefit to cost ratio"),
	)
}

// FormatHorizons renders one bar row per share: name, bar and
// "{count} products ({pct}%)".
func FormatHorizons(shares []portfolio.HorizonShare) string {
	if len(shares) == 0 {
		return Dim("No products") + "\n"
	}
	nameWidth := 0
	for _, s := range shares {
		if w := len(s.Horizon); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for _, s := range shares {
		name := HorizonBadge(s.Horizon) + strings.Repeat(" ", nameWidth-len(s.Horizon))
		fmt.Fprintf(&b, "%s  %s  %s (%s)\n",
			name,
			RenderBar(s.Pct, horizonBarWidth, HorizonStyle(s.Horizon)),
			Plural(s.Count, "product"),
			Percent(s.Pct),
		)
	}
	return b.String()
}

// FormatTopProducts renders a ranked benefit list.
func FormatTopProducts(products []domain.Product) string {
	if len(products) == 0 {
		return Dim("No products") + "\n"
	}
	rows := make([][]string, 0, len(products))
	for i, p := range products {
		rows = append(rows, []string{
			fmt.Sprintf("%d.", i+1),
			p.Name,
			HorizonBadge(p.Horizon),
			Millions(p.EstimatedBenefit),
		})
	}
	return RenderAlignedTable([]string{"#", "Product", "Horizon", "Benefit"}, rows,
		[]Align{AlignRight, AlignLeft, AlignLeft, AlignRight})
}

// FormatOverview renders the whole portfolio dashboard. The executive mode
// shows compact stream cards; detailed mode expands every stream.
func FormatOverview(o *app.PortfolioOverview, mode config.ViewMode) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("PORTFOLIO OVERVIEW"))
	if o.Source != "" {
		b.WriteString("  " + Dim("source: "+o.Source))
	}
	b.WriteString("\n\n")

	b.WriteString(KeyMetrics(o))
	b.WriteString("\n")
	if o.AtRiskCount > 0 {
		b.WriteString(StyleRed.Render("▲ "+Plural(o.AtRiskCount, "product")+" at risk") + "\n")
	} else {
		b.WriteString(StyleGreen.Render("✔ No products at risk") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Header("Horizon Distribution") + "\n")
	b.WriteString(FormatHorizons(o.Horizons))
	b.WriteString("\n")

	b.WriteString(Header("Top Products by Benefit") + "\n")
	b.WriteString(FormatTopProducts(o.TopProducts))
	b.WriteString("\n")

	b.WriteString(Header("Value Streams") + "\n")
	if len(o.ValueStreams) == 0 {
		b.WriteString(Dim("No value streams") + "\n")
	}
	if mode == config.ViewDetailed {
		for i := range o.ValueStreams {
			b.WriteString(FormatValueStreamDetail(&o.ValueStreams[i]))
			b.WriteString("\n")
		}
	} else {
		cards := make([]string, 0, len(o.ValueStreams))
		for i := range o.ValueStreams {
			cards = append(cards, FormatValueStreamCard(&o.ValueStreams[i]))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n")
	}

	if o.Reconciled {
		b.WriteString("\n")
		b.WriteString(FormatDiscrepancies(o.Discrepancies))
	}
	return b.String()
}

// FormatDiscrepancies lists reconciliation findings, or a confirmation line
// when the stored totals agree with their products.
func FormatDiscrepancies(ds []portfolio.Discrepancy) string {
	var b strings.Builder
	b.WriteString(Header("Reconciliation") + "\n")
	if len(ds) == 0 {
		b.WriteString(StyleGreen.Render("✔ Stored totals match their products") + "\n")
		return b.String()
	}
	for _, d := range ds {
		fmt.Fprintf(&b, "%s %s  %s\n",
			StyleRed.Render("✖"),
			StyleYellow.Render(string(d.Kind)),
			d.Message,
		)
	}
	noun := "discrepancies"
	if len(ds) == 1 {
		noun = "discrepancy"
	}
	fmt.Fprintf(&b, "\n%s\n", Dim(fmt.Sprintf("%d %s", len(ds), noun)))
	return b.String()
}

// FormatPortfolioTree renders streams and their products as a tree, with
// benefit badges and an at-risk marker.
func FormatPortfolioTree(streams []app.ValueStreamSummary) string {
	var items []TreeItem
	for _, vs := range streams {
		items = append(items, TreeItem{
			Title: StyleBold.Render(vs.Name) + " " + Dim(ManagerName(vs.Manager)),
			Badge: StyleBlue.Render(Millions(vs.TotalBenefit)),
		})
		for i, ps := range vs.Products {
			badge := Dim(Millions(ps.Product.EstimatedBenefit))
			if ps.AtRisk {
				badge += " " + StyleRed.Render("▲")
			}
			items = append(items, TreeItem{
				Title:  ps.Product.Name,
				Level:  1,
				IsLast: i == len(vs.Products)-1,
				Marker: HorizonCode(ps.Product.Horizon),
				Badge:  badge,
			})
		}
	}
	if len(items) == 0 {
		return Dim("No value streams") + "\n"
	}
	return RenderTree(items)
}
